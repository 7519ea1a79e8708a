package jsonrivulet

import "testing"

func TestStringPlainValueIsNotEscaped(t *testing.T) {
	tok := New([]byte(`"hello"`), true)
	if !tok.Read() || tok.TokenType() != String {
		t.Fatalf("expected String, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if tok.ValueIsEscaped() {
		t.Fatal("a string with no backslash must not be marked escaped")
	}
	if string(tok.Token()) != "hello" {
		t.Fatalf("Token() = %q, want %q", tok.Token(), "hello")
	}
}

func TestStringSimpleEscapes(t *testing.T) {
	cases := map[string]string{
		`"\""`: `"`,
		`"\\"`: `\`,
		`"\/"`: `/`,
		`"\b"`: "\b",
		`"\f"`: "\f",
		`"\n"`: "\n",
		`"\r"`: "\r",
		`"\t"`: "\t",
	}
	for doc, want := range cases {
		tok := New([]byte(doc), true)
		if !tok.Read() || tok.TokenType() != String {
			t.Fatalf("%q: expected String, got %v (err=%v)", doc, tok.TokenType(), tok.Err())
		}
		if !tok.ValueIsEscaped() {
			t.Fatalf("%q: expected ValueIsEscaped", doc)
		}
		if got := tok.GetString(); got != want {
			t.Fatalf("%q: GetString() = %q, want %q", doc, got, want)
		}
	}
}

func TestStringUnterminatedOnFinalBlock(t *testing.T) {
	tok := New([]byte(`"abc`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrEndOfStringNotFound {
		t.Fatalf("expected ErrEndOfStringNotFound, got %v", tok.Err())
	}
}

func TestStringUnterminatedNonFinalNeedsMore(t *testing.T) {
	tok := New([]byte(`"abc`), false)
	if tok.Read() {
		t.Fatal("expected NeedMore")
	}
	if tok.HasError() {
		t.Fatalf("NeedMore must not set an error, got %v", tok.Err())
	}
}

func TestStringControlByteRejected(t *testing.T) {
	doc := []byte{'"', 'a', 0x01, 'b', '"'}
	tok := New(doc, true)
	if tok.Read() {
		t.Fatal("expected failure on a raw control byte inside a string")
	}
	if !tok.HasError() || tok.Err().Kind != ErrInvalidCharacterWithinString {
		t.Fatalf("expected ErrInvalidCharacterWithinString, got %v", tok.Err())
	}
}

func TestStringInvalidEscapeCharacter(t *testing.T) {
	tok := New([]byte(`"\q"`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrInvalidCharacterAfterEscapeWithinString {
		t.Fatalf("expected ErrInvalidCharacterAfterEscapeWithinString, got %v", tok.Err())
	}
}

// TestStringSurrogatePairCombines encodes 😀 (the UTF-16
// surrogate pair for U+1F600 GRINNING FACE) as literal escape bytes, not
// the pre-encoded rune, so the decode path under test is the \u handler.
func TestStringSurrogatePairCombines(t *testing.T) {
	doc := []byte{'"', '\\', 'u', 'D', '8', '3', 'D', '\\', 'u', 'D', 'E', '0', '0', '"'}
	tok := New(doc, true)
	if !tok.Read() || tok.TokenType() != String {
		t.Fatalf("expected String, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	got := tok.GetString()
	want := "\U0001F600"
	if got != want {
		t.Fatalf("GetString() = %q, want %q", got, want)
	}
}

func TestStringLoneSurrogateRejected(t *testing.T) {
	doc := []byte{'"', '\\', 'u', 'D', '8', '3', 'D', '"'}
	tok := New(doc, true)
	if !tok.Read() || tok.TokenType() != String {
		t.Fatalf("expected String, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if _, ok := tok.TryGetString(); ok {
		t.Fatal("expected a lone high surrogate to fail decoding")
	}
}

func TestPropertyTokenExcludesQuotes(t *testing.T) {
	tok := New([]byte(`{"key":1}`), true)
	if !tok.Read() || tok.TokenType() != ObjectStart {
		t.Fatal("expected ObjectStart")
	}
	if !tok.Read() || tok.TokenType() != Property {
		t.Fatalf("expected Property, got %v (err=%v)", tok.TokenType(), tok.Err())
	}
	if string(tok.Token()) != "key" {
		t.Fatalf("Token() = %q, want %q", tok.Token(), "key")
	}
}
