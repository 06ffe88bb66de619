package jsondom

import (
	"testing"

	"github.com/shopspring/decimal"
)

const benchInput = `{"a":{"ab":[]},"b":[0,true,{}],"c":null,"d":0,"e":"",
"n":{"bool":true,"obj":{"v":null},"values":[{"a":5,"b":"hi","c":5.8,
"d":null,"e":true},{"a":[5,6,7,8],"b":"hi2","c":5.9,"d":{
"f":"Hello there!"},"e":false}]}}`

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		n, err := Parse(benchInput)
		if err != nil {
			b.Fatal(err)
		}
		n.Destroy()
	}
}

func BenchmarkString(b *testing.B) {
	n, err := Parse(benchInput)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.String()
	}
}

func BenchmarkBuild(b *testing.B) {
	five := decimal.NewFromInt(5)
	for i := 0; i < b.N; i++ {
		root := NewObject()
		arr := root.PutArray("values")
		for j := 0; j < 8; j++ {
			m := arr.AppendObject()
			m.PutNumber("a", five)
			m.PutString("b", "hi")
			m.PutBool("e", true)
		}
		root.Destroy()
	}
}
