package jsonrivulet

// rollbackState snapshots every field a grammar step might mutate before it
// is known whether the step can complete within the current window. If the
// step returns needMore, restore undoes it exactly, so the next call to Read
// (after Continue supplies more bytes) starts from the same place again.
//
// This mirrors JsonRollbackState in the original: the only state a single
// token transition can touch is the cursor position, the previous/current
// token bookkeeping, the trailing-comma and after-colon flags, and at most
// one push or pop of the bit-stack.
type rollbackState struct {
	consumed          uint64
	line              uint64
	column            uint64
	tokenType         TokenKind
	previousTokenType TokenKind
	tokenStart        uint64
	tokenSize         uint64
	trailingComma     bool
	afterColon        bool

	bitsPushed bool
	bitsPopped bool
	poppedWasObject bool
}

func (t *Tokenizer) snapshot() rollbackState {
	return rollbackState{
		consumed:          t.consumed,
		line:              t.line,
		column:            t.column,
		tokenType:         t.tokenType,
		previousTokenType: t.previousTokenType,
		tokenStart:        t.tokenStart,
		tokenSize:         t.tokenSize,
		trailingComma:     t.trailingComma,
		afterColon:        t.afterColon,
	}
}

func (t *Tokenizer) rollback(s rollbackState) {
	t.consumed = s.consumed
	t.line = s.line
	t.column = s.column
	t.tokenType = s.tokenType
	t.previousTokenType = s.previousTokenType
	t.tokenStart = s.tokenStart
	t.tokenSize = s.tokenSize
	t.trailingComma = s.trailingComma
	t.afterColon = s.afterColon

	if s.bitsPushed {
		t.inObject = t.bits.pop()
	}
	if s.bitsPopped {
		t.bits.push(s.poppedWasObject)
		t.inObject = s.poppedWasObject
	}
}
