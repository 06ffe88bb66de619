package jsondom

import (
	"strings"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// String renders n as compact JSON: object entries as `"key": value` in key
// order and elements joined by ", ". String payloads are written verbatim
// without re-escaping; see the package comment. The empty string is returned
// for nil and destroyed nodes.
func (n *Node) String() string {
	if n.Type() == Invalid {
		return ""
	}
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if n.value.(bool) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(n.value.(decimal.Decimal).String())
	case String:
		b.WriteByte('"')
		b.WriteString(n.value.(string))
		b.WriteByte('"')
	case Array:
		b.WriteByte('[')
		for i, c := range n.value.([]*Node) {
			if i > 0 {
				b.WriteString(", ")
			}
			c.render(b)
		}
		b.WriteByte(']')
	case Object:
		b.WriteByte('{')
		first := true
		n.value.(*btree.BTreeG[member]).Ascend(func(it member) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteByte('"')
			b.WriteString(it.key)
			b.WriteString(`": `)
			it.node.render(b)
			return true
		})
		b.WriteByte('}')
	}
}

// MarshalJSON implements the json.Marshaler interface for Node. The output
// shares String's no-escape caveat.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Type() == Invalid {
		return nil, errors.New("marshal of invalid node")
	}
	return []byte(n.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node. The
// previous contents of n are discarded without being destroyed.
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := Parse(string(data))
	if err != nil {
		return err
	}
	*n = *m
	n.adopt()
	return nil
}
