package jsondom

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotArrayOrObject is a common error that container methods of Node wrap.
// This signals that the node is a standalone value.
var ErrNotArrayOrObject = errors.New("not array or object")

// ErrorKind classifies the syntax errors the parser reports.
type ErrorKind uint8

const (
	NoError ErrorKind = iota
	UnknownSymbol
	IncorrectNumberFormat
	IncorrectEscapeCharacter
	MissingClosingQuotationMark
	MissingClosingBracket
	UnrecognizedEntity
	ExpectedCommaSeparator
	ExpectedColonSeparator
	ExpectedName
	ExpectedElement
)

var errorMessages = [...]string{
	NoError:                     "ok",
	UnknownSymbol:               "unknown symbol",
	IncorrectNumberFormat:       "incorrect number format",
	IncorrectEscapeCharacter:    "incorrect escape character",
	MissingClosingQuotationMark: "missing closing quotation mark in string",
	MissingClosingBracket:       "missing closing bracket",
	UnrecognizedEntity:          "unrecognized entity",
	ExpectedCommaSeparator:      "expected comma as a separator",
	ExpectedColonSeparator:      "expected colon as a separator",
	ExpectedName:                "expected a name",
	ExpectedElement:             "expected an element",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorMessages) {
		return errorMessages[k]
	}
	return "unknown error"
}

// snippetMax bounds the offending-text fragment attached to a ParseError.
const snippetMax = 16

// ParseError captures information on errors when parsing. It is the only way
// the parser communicates failure; no partial tree accompanies it.
type ParseError struct {
	Kind    ErrorKind
	Row     int    // 1-based row of the read position when parsing stopped
	Col     int    // 1-based column of the read position
	Snippet string // offending character, word or partial token, if any
}

func (e *ParseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%d.%d, %s", e.Row, e.Col, e.Kind)
	}
	return fmt.Sprintf("%d.%d, %s: '%s'", e.Row, e.Col, e.Kind, e.Snippet)
}

// Where returns the row and column where the syntax error in json occured.
func (e *ParseError) Where() (row, col int) {
	return e.Row, e.Col
}

func newError(kind ErrorKind, snippet string) *ParseError {
	return &ParseError{Kind: kind, Snippet: clip(snippet)}
}

// clip truncates s to snippetMax characters.
func clip(s string) string {
	r := []rune(s)
	if len(r) > snippetMax {
		return string(r[:snippetMax])
	}
	return s
}
