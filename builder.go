package jsondom

import (
	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// btreeDegree is the branching factor of the ordered map backing objects.
const btreeDegree = 4

// NewNull creates a standalone null node owned by the caller.
func NewNull() *Node {
	return &Node{kind: Null}
}

// NewBool creates a standalone boolean node owned by the caller.
func NewBool(v bool) *Node {
	return &Node{kind: Bool, value: v}
}

// NewNumber creates a standalone number node owned by the caller.
func NewNumber(v decimal.Decimal) *Node {
	return &Node{kind: Number, value: v}
}

// NewNumberString creates a standalone number node from its text form, such
// as "3.125e-4".
func NewNumberString(s string) (*Node, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "number %q", s)
	}
	return NewNumber(d), nil
}

// NewString creates a standalone string node owned by the caller.
func NewString(v string) *Node {
	return &Node{kind: String, value: v}
}

// NewArray creates a standalone empty array node owned by the caller.
func NewArray() *Node {
	return &Node{kind: Array, value: []*Node(nil)}
}

// NewObject creates a standalone empty object node owned by the caller.
func NewObject() *Node {
	return &Node{kind: Object, value: btree.NewG(btreeDegree, memberLess)}
}

// Put inserts child into the Object n under key, transferring ownership to
// n. An existing entry under the same key is destroyed before the new value
// becomes visible. Put returns child and panics wrapping ErrNotArrayOrObject
// if n is not an object.
func (n *Node) Put(key string, child *Node) *Node {
	if n.Type() != Object {
		panic(errors.Wrapf(ErrNotArrayOrObject, "Put on %s", n.Type()))
	}
	child.parent = n
	old, ok := n.value.(*btree.BTreeG[member]).ReplaceOrInsert(member{key: key, node: child})
	if ok {
		old.node.parent = nil
		old.node.Destroy()
	}
	return child
}

func (n *Node) PutNull(key string) *Node {
	return n.Put(key, NewNull())
}

func (n *Node) PutBool(key string, v bool) *Node {
	return n.Put(key, NewBool(v))
}

func (n *Node) PutNumber(key string, v decimal.Decimal) *Node {
	return n.Put(key, NewNumber(v))
}

func (n *Node) PutString(key, v string) *Node {
	return n.Put(key, NewString(v))
}

func (n *Node) PutArray(key string) *Node {
	return n.Put(key, NewArray())
}

func (n *Node) PutObject(key string) *Node {
	return n.Put(key, NewObject())
}

// Append adds child at the end of the Array n, transferring ownership to n.
// The new element's index is the array's length before the call. Append
// returns child and panics wrapping ErrNotArrayOrObject if n is not an
// array.
func (n *Node) Append(child *Node) *Node {
	if n.Type() != Array {
		panic(errors.Wrapf(ErrNotArrayOrObject, "Append on %s", n.Type()))
	}
	child.parent = n
	n.value = append(n.value.([]*Node), child)
	return child
}

func (n *Node) AppendNull() *Node {
	return n.Append(NewNull())
}

func (n *Node) AppendBool(v bool) *Node {
	return n.Append(NewBool(v))
}

func (n *Node) AppendNumber(v decimal.Decimal) *Node {
	return n.Append(NewNumber(v))
}

func (n *Node) AppendString(v string) *Node {
	return n.Append(NewString(v))
}

func (n *Node) AppendArray() *Node {
	return n.Append(NewArray())
}

func (n *Node) AppendObject() *Node {
	return n.Append(NewObject())
}

// Delete removes the entry stored under key from the Object n and destroys
// its value. It reports whether an entry existed and panics wrapping
// ErrNotArrayOrObject if n is not an object.
func (n *Node) Delete(key string) bool {
	if n.Type() != Object {
		panic(errors.Wrapf(ErrNotArrayOrObject, "Delete on %s", n.Type()))
	}
	old, ok := n.value.(*btree.BTreeG[member]).Delete(member{key: key})
	if !ok {
		return false
	}
	old.node.parent = nil
	old.node.Destroy()
	return true
}
