package jsonrivulet

// skipWhitespace advances consumed/line/column past the ASCII whitespace set
// {space, \t, \r, \n}, mirroring json_skip_whitespace. Unlike the original C
// cursor, a Go slice always knows its own length, so there is no separate
// "NUL-terminated, size-zero buffer" case to special-case: every bounds
// check here is just a comparison against len(buf).
func (t *Tokenizer) skipWhitespace() {
	for t.consumed < uint64(len(t.buf)) {
		switch t.buf[t.consumed] {
		case '\n':
			t.consumed++
			t.line++
			t.column = 0
		case ' ', '\t', '\r':
			t.consumed++
			t.column++
		default:
			return
		}
	}
}

// atEnd reports whether the current window has no more bytes at consumed.
func (t *Tokenizer) atEnd() bool {
	return t.consumed >= uint64(len(t.buf))
}

// peek returns the byte at consumed; callers must check atEnd first.
func (t *Tokenizer) peek() byte {
	return t.buf[t.consumed]
}
