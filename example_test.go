package jsondom_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/d1ced/jsondom"
)

func ExampleParse() {
	n, err := jsondom.Parse(`{"b": [true, null], "a": 20}`)
	if err != nil {
		return
	}
	// entries render in key order, not insertion order
	fmt.Println(n)
	// Output: {"a": 20, "b": [true, null]}
}

func ExampleParse_error() {
	_, err := jsondom.Parse(`{ a : }`)
	fmt.Println(err)
	// Output: 1.7, expected an element
}

func ExampleNode_Put() {
	n := jsondom.NewObject()
	n.PutNumber("Num", decimal.RequireFromString("3.125"))
	n.PutString("Str", "Hello, World!")
	fmt.Println(n)
	// Output: {"Num": 3.125, "Str": "Hello, World!"}
}

func ExampleNode_Lookup() {
	n, _ := jsondom.Parse(`{"a": {"b": [null, -4.5e1]}}`)
	m, ok := n.Lookup("a.b.1")
	fmt.Println(ok, m, m.Path())
	// Output: true -45 a.b.1
}
