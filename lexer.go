package jsondom

// eof marks an exhausted cursor.
const eof = rune(0)

// cursor walks the input one character at a time and keeps the 1-based
// row/column of the read position for error reporting.
type cursor struct {
	data []rune
	pos  int
	row  int
	col  int
}

func newCursor(text string) *cursor {
	return &cursor{data: []rune(text), row: 1, col: 1}
}

// cur returns the character at the read position, or eof.
func (c *cursor) cur() rune {
	if c.pos < len(c.data) {
		return c.data[c.pos]
	}
	return eof
}

// next moves the read position forward by one character and returns the new
// current one. A newline starts the next row, a carriage return resets the
// column only.
func (c *cursor) next() rune {
	if c.pos >= len(c.data) {
		return eof
	}
	switch c.data[c.pos] {
	case '\n':
		c.row++
		c.col = 1
	case '\r':
		c.col = 1
	default:
		c.col++
	}
	c.pos++
	return c.cur()
}

// curSkipSpace is cur with leading whitespace consumed.
func (c *cursor) curSkipSpace() rune {
	ch := c.cur()
	for isSpace(ch) {
		ch = c.next()
	}
	return ch
}

// nextSkipSpace is next with subsequent whitespace consumed.
func (c *cursor) nextSkipSpace() rune {
	ch := c.next()
	for isSpace(ch) {
		ch = c.next()
	}
	return ch
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func hexValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}
