package jsondom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Kind is an enum for any JSON-types
type Kind uint8

// Kinds to compare nodes of a document with. The zero value signals invalid.
const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Invalid"
	}
}

// Node is one node of a tree building a JSON document.
// Depending on its kind it holds a different value:
//
//	Kind     ValueType
//	Invalid  nil
//	Null     nil
//	Bool     bool
//	Number   decimal.Decimal
//	String   string
//	Array    []*Node
//	Object   *btree.BTreeG[member]
//
// Every node except a root keeps a non-owning reference to its container.
// The reference is only read by context queries like Path; none of the tree
// algorithms traverse it.
type Node struct {
	kind   Kind
	value  interface{}
	parent *Node
}

// member is one key/value entry of an Object, ordered by key comparison.
type member struct {
	key  string
	node *Node
}

func memberLess(a, b member) bool {
	return a.key < b.key
}

// Type returns the Kind of a node.
func (n *Node) Type() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// Parent returns the containing node, or nil for a root or standalone node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Bool returns the value of a Bool node and false for any other kind.
func (n *Node) Bool() bool {
	if n.Type() != Bool {
		return false
	}
	return n.value.(bool)
}

// Number returns the value of a Number node and decimal.Zero for any other
// kind.
func (n *Node) Number() decimal.Decimal {
	if n.Type() != Number {
		return decimal.Zero
	}
	return n.value.(decimal.Decimal)
}

// Str returns the character data of a String node and "" for any other kind.
func (n *Node) Str() string {
	if n.Type() != String {
		return ""
	}
	return n.value.(string)
}

// Len gives the length of an array or the number of entries in an object.
func (n *Node) Len() int {
	switch n.Type() {
	case Array:
		return len(n.value.([]*Node))
	case Object:
		return n.value.(*btree.BTreeG[member]).Len()
	case Invalid:
		return 0
	default:
		return 1
	}
}

// At returns the i-th element of the Array n, nil if i is out of range or n
// is not an array.
func (n *Node) At(i int) *Node {
	if n.Type() != Array {
		return nil
	}
	cc := n.value.([]*Node)
	if i < 0 || i >= len(cc) {
		return nil
	}
	return cc[i]
}

// Get returns the value stored in the Object n under key.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Type() != Object {
		return nil, false
	}
	it, ok := n.value.(*btree.BTreeG[member]).Get(member{key: key})
	if !ok {
		return nil, false
	}
	return it.node, true
}

// Keys returns the keys of the Object n in iteration (key) order. It is nil
// for any other kind and non-nil with length 0 for an empty object.
func (n *Node) Keys() []string {
	if n.Type() != Object {
		return nil
	}
	m := n.value.(*btree.BTreeG[member])
	ss := make([]string, 0, m.Len())
	m.Ascend(func(it member) bool {
		ss = append(ss, it.key)
		return true
	})
	return ss
}

// Lookup descends the tree along a dot separated path like "servlet.1.name".
// Array elements are addressed by their decimal index. The path "" returns n
// itself. Lookup panics wrapping ErrNotArrayOrObject if the path descends
// into a standalone value.
func (n *Node) Lookup(path string) (*Node, bool) {
	if path == "" {
		return n, true
	}
	head, rest := path, ""
	if i := strings.IndexByte(path, '.'); i >= 0 {
		head, rest = path[:i], path[i+1:]
	}
	switch n.Type() {
	case Object:
		c, ok := n.Get(head)
		if !ok {
			return nil, false
		}
		return c.Lookup(rest)
	case Array:
		i, err := strconv.Atoi(head)
		if err != nil {
			return nil, false
		}
		c := n.At(i)
		if c == nil {
			return nil, false
		}
		return c.Lookup(rest)
	default:
		panic(errors.Wrapf(ErrNotArrayOrObject, "Lookup on %s", n.Type()))
	}
}

// Path returns the dot separated route from the root down to n. It is ""
// for a root node.
func (n *Node) Path() string {
	var labels []string
	for o, p := n, n.Parent(); p != nil; o, p = p, p.parent {
		labels = append(labels, p.label(o))
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, ".")
}

// label finds the key or index under which the direct child o is stored.
func (n *Node) label(o *Node) string {
	switch n.kind {
	case Object:
		key := ""
		n.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			if it.node == o {
				key = it.key
				return false
			}
			return true
		})
		return key
	case Array:
		for i, c := range n.value.([]*Node) {
			if c == o {
				return strconv.Itoa(i)
			}
		}
	}
	return ""
}

// Value creates the Go representation of a node.
// Like encoding/json the possible underlying types of the first return
// parameter are:
//
//	Object    map[string]interface{}
//	Array     []interface{}
//	String    string
//	Number    decimal.Decimal
//	Bool      bool
//	Null      nil (with the error being nil too)
func (n *Node) Value() (interface{}, error) {
	switch n.Type() {
	case Null:
		return nil, nil
	case Bool:
		return n.value.(bool), nil
	case Number:
		return n.value.(decimal.Decimal), nil
	case String:
		return n.value.(string), nil
	case Array:
		s := make([]interface{}, 0, n.Len())
		for _, c := range n.value.([]*Node) {
			v, err := c.Value()
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	case Object:
		m := make(map[string]interface{}, n.Len())
		var err error
		n.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			var v interface{}
			v, err = it.node.Value()
			if err != nil {
				return false
			}
			m[it.key] = v
			return true
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("value of %s node", n.Type())
	}
}

// Total returns the number of nodes held by n, including n itself.
func (n *Node) Total() int {
	switch n.Type() {
	case Array:
		i := 1
		for _, c := range n.value.([]*Node) {
			i += c.Total()
		}
		return i
	case Object:
		i := 1
		n.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			i += it.node.Total()
			return true
		})
		return i
	case Invalid:
		return 0
	default:
		return 1
	}
}

// Equal compares the nodes and all their children. Numbers compare by
// numeric value, objects by key set and per-key equality.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.value.(bool) == b.value.(bool)
	case Number:
		return a.value.(decimal.Decimal).Equal(b.value.(decimal.Decimal))
	case String:
		return a.value.(string) == b.value.(string)
	case Array:
		an, bn := a.value.([]*Node), b.value.([]*Node)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(an[i], bn[i]) {
				return false
			}
		}
		return true
	case Object:
		if a.Len() != b.Len() {
			return false
		}
		eq := true
		a.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			m, ok := b.Get(it.key)
			if !ok || !Equal(it.node, m) {
				eq = false
				return false
			}
			return true
		})
		return eq
	default:
		return false
	}
}

// Destroy releases n and every node it owns. Containers destroy their
// children first, then the payload and parent link are cleared and the node
// is marked Invalid, so stale references cannot reach destroyed children
// through it. Destroy on a nil node is a no-op. Each node must be destroyed
// at most once, by its owner.
func (n *Node) Destroy() {
	if n == nil {
		return
	}
	switch n.kind {
	case Array:
		for _, c := range n.value.([]*Node) {
			c.parent = nil
			c.Destroy()
		}
	case Object:
		m := n.value.(*btree.BTreeG[member])
		m.Ascend(func(it member) bool {
			it.node.parent = nil
			return true
		})
		for m.Len() > 0 {
			it, _ := m.DeleteMin()
			it.node.Destroy()
		}
	}
	n.kind = Invalid
	n.value = nil
	n.parent = nil
}

// adopt repoints the children's container reference after a node has been
// copied by value.
func (n *Node) adopt() {
	switch n.kind {
	case Array:
		for _, c := range n.value.([]*Node) {
			c.parent = n
		}
	case Object:
		n.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			it.node.parent = n
			return true
		})
	}
}
