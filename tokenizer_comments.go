package jsonrivulet

// skipAllComments advances past whitespace and, depending on CommentHandling,
// past comments too. It returns produced=true if a Comment token was emitted
// (CommentAllow only) — the caller should return immediately so the Comment
// token surfaces from this Read call. It returns needMore=true when isFinal
// is false and the window ends: after the skipped whitespace, inside a
// comment, or right after a lone '/'. On a final block, running out of data simply means
// "nothing more here", leaving the caller's own end-of-data handling (which
// knows the surrounding grammar context) to decide whether that's valid.
func (t *Tokenizer) skipAllComments() (produced bool, needMore bool) {
	for {
		t.skipWhitespace()
		if t.atEnd() {
			return false, !t.isFinal
		}
		if t.peek() != '/' || t.cfg.CommentHandling == CommentDisallow {
			return false, false
		}

		slashPos := t.consumed
		t.advance()
		if t.atEnd() {
			if !t.isFinal {
				t.consumed = slashPos
				return false, true
			}
			t.throw(ErrUnexpectedEndOfDataWhileReadingComment)
			return false, false
		}
		second := t.peek()
		if second != '/' && second != '*' {
			t.throwByte(ErrInvalidCharacterAtStartOfComment, second)
			return false, false
		}
		t.advance()
		ok, needMore := t.consumeCommentBody(second)
		if needMore {
			t.consumed = slashPos
			return false, true
		}
		if !ok {
			return false, false
		}
		if t.cfg.CommentHandling == CommentAllow {
			t.tokenType = Comment
			return true, false
		}
	}
}
