package jsondom

// Valid reports whether text is a valid JSON encoding.
func Valid(text string) bool {
	n, err := Parse(text)
	if err != nil {
		return false
	}
	n.Destroy()
	return true
}
