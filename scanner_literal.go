package jsonrivulet

// consumeLiteral matches the fixed byte sequence lit (the whole of "true",
// "false", or "null", chosen by the caller from the first letter, which is
// matched again here) starting at t.consumed.
// errKind is thrown, with the partially-matched text attached, if a mismatch
// is found before the window runs out.
func (t *Tokenizer) consumeLiteral(lit string, kind TokenKind, errKind ErrorKind) (ok bool, needMore bool) {
	start := t.consumed
	n := uint64(len(lit))
	for i := uint64(0); i < n; i++ {
		if t.consumed >= uint64(len(t.buf)) {
			if !t.isFinal {
				t.consumed = start
				return false, true
			}
			t.throwText(errKind, string(t.buf[start:t.consumed]))
			t.consumed = start
			return false, false
		}
		if t.buf[t.consumed] != lit[i] {
			end := t.consumed + 1
			if end > uint64(len(t.buf)) {
				end = uint64(len(t.buf))
			}
			t.throwText(errKind, string(t.buf[start:end]))
			t.consumed = start
			return false, false
		}
		t.advance()
	}
	t.tokenStart = start
	t.tokenSize = n
	t.tokenType = kind
	return true, false
}
