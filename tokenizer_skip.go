package jsonrivulet

// Skip advances past the entire value the tokenizer is currently positioned
// on — a scalar token as-is, or a container plus everything nested inside
// it — leaving the tokenizer positioned on the container's matching end
// token (or on the scalar itself, unchanged, if it wasn't a container).
//
// Skip requires the whole value to be resolvable against the current
// window: it is only valid when IsFinalBlock is true, since otherwise a
// nested construct could straddle a window boundary the caller hasn't
// supplied yet. Use TrySkip from a streaming loop instead.
func (t *Tokenizer) Skip() bool {
	if !t.isFinal {
		t.throw(ErrInvalidOperationCannotSkipOnPartial)
		return false
	}
	ok, _ := t.trySkipPartial()
	return ok
}

// TrySkip behaves like Skip but tolerates a non-final block: if the value
// cannot be fully resolved within the current window, it returns false with
// HasError false, and the tokenizer is left exactly as it was (call
// Continue and retry).
func (t *Tokenizer) TrySkip() bool {
	ok, _ := t.trySkipPartial()
	return ok
}

// trySkipPartial is Skip/TrySkip's shared engine. A scalar, Comment, or
// container-end current token has no further subtree to discard. A Property
// token's subtree is its value, so skipping it means reading one more token
// (the value) and, if that value is itself a container start, discarding
// its subtree the same way a container-start current token would.
func (t *Tokenizer) trySkipPartial() (ok bool, needMore bool) {
	switch t.tokenType {
	case Property:
		snap := t.snapshot()
		savedBits := t.bits
		savedInObject := t.inObject
		if !t.Read() {
			if t.err != nil {
				return false, false
			}
			t.rollback(snap)
			t.bits = savedBits
			t.inObject = savedInObject
			return false, true
		}
		ok, needMore := t.skipCurrentContainer()
		if needMore {
			t.rollback(snap)
			t.bits = savedBits
			t.inObject = savedInObject
		}
		return ok, needMore
	case ObjectStart, ArrayStart:
		return t.skipCurrentContainer()
	default:
		return true, false
	}
}

// skipCurrentContainer walks forward with Read until the nesting depth
// returns to (or below) the depth recorded on entry. If the current token
// isn't a container start, there is nothing to walk: it returns
// immediately, matching a scalar value reached via the Property case above.
func (t *Tokenizer) skipCurrentContainer() (ok bool, needMore bool) {
	if t.tokenType != ObjectStart && t.tokenType != ArrayStart {
		return true, false
	}

	snap := t.snapshot()
	savedBits := t.bits
	savedInObject := t.inObject
	target := t.bits.count() - 1

	for {
		if !t.Read() {
			if t.err != nil {
				return false, false
			}
			t.rollback(snap)
			t.bits = savedBits
			t.inObject = savedInObject
			return false, true
		}
		if t.bits.count() <= target {
			return true, false
		}
	}
}
