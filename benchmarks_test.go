package jsonrivulet

import (
	"bytes"
	"encoding/json"
	"testing"
)

// benchDoc mirrors the shape of the teacher's benchmark fixtures: a single
// representative document exercised through both b.N iterations and a
// handful of variants (plain, nested, comment-laden) the way simdjson-go's
// benchmarks_test.go runs "copy"/"no-copy" sub-benchmarks off one fixture.
const benchDoc = `{"Image":{"Width":800,"Height":600,"Title":"View from 15th Floor","Thumbnail":{"Url":"http://www.example.com/image/481989943","Height":125,"Width":100},"Animated":false,"IDs":[116,943,234,38793,256,7845,99,1]}}`

func benchmarkTokenize(b *testing.B, doc string) {
	buf := []byte(doc)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok := New(buf, true)
		for tok.Read() {
		}
		if tok.HasError() {
			b.Fatal(tok.Err())
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.Run("object", func(b *testing.B) {
		benchmarkTokenize(b, benchDoc)
	})
	b.Run("array", func(b *testing.B) {
		benchmarkTokenize(b, `[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20]`)
	})
	b.Run("strings", func(b *testing.B) {
		benchmarkTokenize(b, `["alpha","bravo","charlie","delta","echo","foxtrot","golf","hotel"]`)
	})
}

// BenchmarkTokenizeVsEncodingJSON puts Read's per-token pull loop side by
// side with the stdlib Decoder's equivalent pull-based Token loop, the same
// comparison role the teacher's benchmarks/ module gives simdjson-go
// against encoding/json — minus the DOM-building half, since jsonrivulet
// never builds one.
func BenchmarkTokenizeVsEncodingJSON(b *testing.B) {
	buf := []byte(benchDoc)
	b.Run("jsonrivulet", func(b *testing.B) {
		b.SetBytes(int64(len(buf)))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			tok := New(buf, true)
			for tok.Read() {
			}
		}
	})
	b.Run("encoding/json", func(b *testing.B) {
		b.SetBytes(int64(len(buf)))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(buf))
			for {
				if _, err := dec.Token(); err != nil {
					break
				}
			}
		}
	})
}

// BenchmarkContinue measures the cost of resuming across a Continue
// boundary, with the document split once at its midpoint — the scenario
// spec.md's property tests hold to the same token sequence as a single
// unsplit parse.
func BenchmarkContinue(b *testing.B) {
	buf := []byte(benchDoc)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	split := len(buf) / 2
	for i := 0; i < b.N; i++ {
		tok := New(buf[:split], false)
		for tok.Read() {
		}
		tok = tok.Continue(buf[tok.BytesConsumed():], true)
		for tok.Read() {
		}
	}
}
