package jsonrivulet

import "testing"

func numberOf(t *testing.T, doc string) *Tokenizer {
	t.Helper()
	tok := New([]byte(doc), true)
	if !tok.Read() || tok.TokenType() != Number {
		t.Fatalf("%q: expected Number, got %v (err=%v)", doc, tok.TokenType(), tok.Err())
	}
	return tok
}

func TestNumberGrammarAccepts(t *testing.T) {
	cases := []string{"0", "-0", "123", "-123", "0.5", "-0.5", "1e10", "1E10", "1e+10", "1e-10", "1.5e10"}
	for _, doc := range cases {
		tok := numberOf(t, doc)
		if string(tok.Token()) != doc {
			t.Errorf("%q: Token() = %q", doc, tok.Token())
		}
	}
}

func TestNumberLeadingZeroRejected(t *testing.T) {
	tok := New([]byte(`01`), true)
	if tok.Read() {
		t.Fatal("expected failure on a leading zero followed by another digit")
	}
	if !tok.HasError() || tok.Err().Kind != ErrInvalidLeadingZeroInNumber {
		t.Fatalf("expected ErrInvalidLeadingZeroInNumber, got %v", tok.Err())
	}
}

func TestNumberMissingDigitAfterSign(t *testing.T) {
	tok := New([]byte(`-a`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrRequiredDigitNotFoundAfterSign {
		t.Fatalf("expected ErrRequiredDigitNotFoundAfterSign, got %v", tok.Err())
	}
}

func TestNumberMissingDigitAfterDecimal(t *testing.T) {
	tok := New([]byte(`1.a`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrRequiredDigitNotFoundAfterDecimal {
		t.Fatalf("expected ErrRequiredDigitNotFoundAfterDecimal, got %v", tok.Err())
	}
}

func TestNumberMissingDigitInExponent(t *testing.T) {
	tok := New([]byte(`1ea`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrExpectedNextDigitEValueNotFound {
		t.Fatalf("expected ErrExpectedNextDigitEValueNotFound, got %v", tok.Err())
	}
}

func TestNumberMissingDelimiterAfter(t *testing.T) {
	tok := New([]byte(`1a`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrExpectedEndOfDigitNotFound {
		t.Fatalf("expected ErrExpectedEndOfDigitNotFound, got %v", tok.Err())
	}
}

func TestNumberRequiredDigitAtEndOfData(t *testing.T) {
	tok := New([]byte(`-`), true)
	if tok.Read() {
		t.Fatal("expected failure")
	}
	if !tok.HasError() || tok.Err().Kind != ErrRequiredDigitNotFoundEndOfData {
		t.Fatalf("expected ErrRequiredDigitNotFoundEndOfData, got %v", tok.Err())
	}
}

func TestNumberDelimiterSetIsExhaustive(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\r', '\n', ',', ']', '}', '/'} {
		if !isNumberDelimiter(b) {
			t.Errorf("expected %q to be a valid number delimiter", b)
		}
	}
	if isNumberDelimiter('a') {
		t.Error("'a' must not be treated as a number delimiter")
	}
}
