package jsondom

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads one JSON element from text and returns the root of the
// document tree, owned by the caller. On failure the returned error is a
// *ParseError carrying the position where parsing stopped; no tree is
// returned then. Input following the first element is left unread.
//
// Recursion depth follows the nesting depth of the input and is not bounded;
// pathologically deep input can exhaust the stack.
func Parse(text string) (*Node, error) {
	src := newCursor(text)
	n, perr := parseElement(src)
	if perr != nil {
		perr.Row, perr.Col = src.row, src.col
		return nil, perr
	}
	return n, nil
}

// parseElement dispatches on the current non-space character. One function
// per grammar production below; each either returns a node or an error with
// kind and snippet set, never both.
func parseElement(src *cursor) (*Node, *ParseError) {
	c := src.curSkipSpace()
	switch {
	case c == '{':
		src.next()
		return parseObject(src)
	case c == '[':
		src.next()
		return parseArray(src)
	case c == '"':
		src.next()
		s, perr := parseString(src)
		if perr != nil {
			return nil, perr
		}
		return NewString(s), nil
	case isLetter(c):
		word := make([]rune, 0, 8)
		for isLetter(c) {
			word = append(word, c)
			c = src.next()
		}
		switch string(word) {
		case "null":
			return NewNull(), nil
		case "true":
			return NewBool(true), nil
		case "false":
			return NewBool(false), nil
		}
		return nil, newError(UnrecognizedEntity, string(word))
	case isDigit(c):
		return parseNumber(src, false)
	case c == '-':
		if isDigit(src.next()) {
			return parseNumber(src, true)
		}
		return nil, newError(UnknownSymbol, "-")
	case c == eof:
		return nil, newError(UnknownSymbol, "")
	default:
		return nil, newError(UnknownSymbol, string(c))
	}
}

// startsValue reports whether c can begin an element.
func startsValue(c rune) bool {
	return c == '{' || c == '[' || c == '"' || c == '-' || isLetter(c) || isDigit(c)
}

// parseValue parses an element in a position where the grammar demands one,
// inside an object or array.
func parseValue(src *cursor) (*Node, *ParseError) {
	if !startsValue(src.curSkipSpace()) {
		return nil, newError(ExpectedElement, "")
	}
	return parseElement(src)
}

// parseObject reads "name: value" pairs up to the closing brace. The opening
// brace is already consumed. A name is a quoted string or a bare identifier.
// A pair whose name is already taken replaces and destroys the previous
// value. The partially built object is destroyed on every failure path.
func parseObject(src *cursor) (*Node, *ParseError) {
	obj := NewObject()
	for count := 0; ; count++ {
		c := src.curSkipSpace()
		if c == eof {
			obj.Destroy()
			return nil, newError(MissingClosingBracket, "}")
		}
		if c == '}' {
			src.next()
			return obj, nil
		}
		if count > 0 {
			if c != ',' {
				obj.Destroy()
				return nil, newError(ExpectedCommaSeparator, "")
			}
			c = src.nextSkipSpace()
			if c == eof {
				obj.Destroy()
				return nil, newError(MissingClosingBracket, "}")
			}
			if c == '}' {
				src.next()
				return obj, nil
			}
		}
		var name string
		switch {
		case c == '"':
			src.next()
			s, perr := parseString(src)
			if perr != nil {
				obj.Destroy()
				return nil, perr
			}
			name = s
		case isLetter(c):
			word := make([]rune, 0, 8)
			for isLetter(c) || isDigit(c) {
				word = append(word, c)
				c = src.next()
			}
			name = string(word)
		default:
			obj.Destroy()
			return nil, newError(ExpectedName, "")
		}
		if src.curSkipSpace() != ':' {
			obj.Destroy()
			return nil, newError(ExpectedColonSeparator, "")
		}
		if src.nextSkipSpace() == eof {
			obj.Destroy()
			return nil, newError(ExpectedElement, "")
		}
		value, perr := parseValue(src)
		if perr != nil {
			obj.Destroy()
			return nil, perr
		}
		obj.Put(name, value)
	}
}

// parseArray reads elements up to the closing bracket, appending each in
// order. The opening bracket is already consumed. The partially built array
// is destroyed on every failure path.
func parseArray(src *cursor) (*Node, *ParseError) {
	arr := NewArray()
	for count := 0; ; count++ {
		c := src.curSkipSpace()
		if c == eof {
			arr.Destroy()
			return nil, newError(MissingClosingBracket, "]")
		}
		if c == ']' {
			src.next()
			return arr, nil
		}
		if count > 0 {
			if c != ',' {
				arr.Destroy()
				return nil, newError(ExpectedCommaSeparator, "")
			}
			c = src.nextSkipSpace()
			if c == eof {
				arr.Destroy()
				return nil, newError(MissingClosingBracket, "]")
			}
			if c == ']' {
				src.next()
				return arr, nil
			}
		}
		child, perr := parseValue(src)
		if perr != nil {
			arr.Destroy()
			return nil, perr
		}
		arr.Append(child)
	}
}

// parseString accumulates characters up to the closing quote. The opening
// quote is already consumed. A \uXXXX escape appends the 16-bit code unit as
// one character; surrogate pairs are not combined, a lone surrogate half
// ends up as the replacement character.
func parseString(src *cursor) (string, *ParseError) {
	var b strings.Builder
	c := src.cur()
	for c != '"' && c != eof {
		if c == '\\' {
			c = src.next()
			switch c {
			case '"', '\\', '/':
				b.WriteRune(c)
			case 'b':
				b.WriteRune('\b')
			case 'f':
				b.WriteRune('\f')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			case 'u':
				k := 0
				hex := make([]rune, 0, 4)
				for i := 0; i < 4; i++ {
					c = src.next()
					if c != eof {
						hex = append(hex, c)
					}
					if !isHexDigit(c) {
						return "", newError(IncorrectNumberFormat, string(hex))
					}
					k = k<<4 | hexValue(c)
				}
				b.WriteRune(rune(k))
			default:
				snip := ""
				if c != eof {
					snip = string(c)
				}
				return "", newError(IncorrectEscapeCharacter, snip)
			}
		} else {
			b.WriteRune(c)
		}
		c = src.next()
	}
	if c == eof {
		return "", newError(MissingClosingQuotationMark, "")
	}
	src.next()
	return b.String(), nil
}

// parseNumber accumulates digits, an optional fraction and an optional
// exponent, then hands the raw text to the decimal collaborator. The current
// character is a digit; a leading minus was consumed by the caller and is
// applied as negation afterwards.
func parseNumber(src *cursor, neg bool) (*Node, *ParseError) {
	var b strings.Builder
	c := src.cur()
	for isDigit(c) {
		b.WriteRune(c)
		c = src.next()
	}
	if c == '.' {
		b.WriteRune(c)
		c = src.next()
		if !isDigit(c) {
			return nil, numberError(&b, c)
		}
		for isDigit(c) {
			b.WriteRune(c)
			c = src.next()
		}
	}
	if c == 'e' || c == 'E' {
		b.WriteRune(c)
		c = src.next()
		if c == '+' || c == '-' {
			b.WriteRune(c)
			c = src.next()
		}
		if !isDigit(c) {
			return nil, numberError(&b, c)
		}
		for isDigit(c) {
			b.WriteRune(c)
			c = src.next()
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return nil, newError(IncorrectNumberFormat, b.String())
	}
	if neg {
		d = d.Neg()
	}
	return NewNumber(d), nil
}

// numberError reports a malformed literal including the character that broke
// the grammar.
func numberError(b *strings.Builder, c rune) *ParseError {
	if c != eof {
		b.WriteRune(c)
	}
	return newError(IncorrectNumberFormat, b.String())
}
