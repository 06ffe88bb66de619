package jsondom

import "testing"

func TestRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`-45`,
		`0.0003125`,
		`"plain"`,
		`[]`,
		`{}`,
		`[1, 2, 3]`,
		`{"a": 2, "b": [true, null], "c": {"d": "e"}}`,
	}
	for _, test := range tests {
		n, err := Parse(test)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test, err)
		}
		if got := n.String(); got != test {
			t.Errorf("first pass: got %q, want %q", got, test)
			continue
		}
		m, err := Parse(n.String())
		if err != nil {
			t.Fatalf("reparse of %q: %v", n.String(), err)
		}
		if !Equal(n, m) {
			t.Errorf("%q did not round-trip structurally", test)
		}
	}
}

// The serializer writes string payloads verbatim. A string holding a quote
// renders to text that still parses, but only up to the embedded quote, with
// the rest left unread as trailing input; the round-trip is lossy.
func TestStringNotEscaped(t *testing.T) {
	n := NewString(`say "hi"`)
	if got := n.String(); got != `"say "hi""` {
		t.Errorf("got %q", got)
	}
	m, err := Parse(n.String())
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Str(); got != "say " {
		t.Errorf("reparse yields %q, want %q", got, "say ")
	}
}

func TestMarshalJSON(t *testing.T) {
	n, err := Parse(`{"b": [1, 2], "a": null}`)
	if err != nil {
		t.Fatal(err)
	}
	data, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a": null, "b": [1, 2]}` {
		t.Errorf("got %s", data)
	}
	var invalid Node
	if _, err := invalid.MarshalJSON(); err == nil {
		t.Error("marshal of invalid node did not error")
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var n Node
	if err := n.UnmarshalJSON([]byte(`{"a": 20, "b": [true, null]}`)); err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != `{"a": 20, "b": [true, null]}` {
		t.Errorf("got %q", got)
	}
	m, _ := n.Lookup("b.0")
	if m.Path() != "b.0" {
		t.Errorf("child path %q after unmarshal, want b.0", m.Path())
	}
	if err := n.UnmarshalJSON([]byte(`{"a": `)); err == nil {
		t.Error("unmarshal of invalid input did not error")
	}
}
