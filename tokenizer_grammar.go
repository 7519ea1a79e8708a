package jsonrivulet

// readSingleSegment is the single entry point for one Read call: produce
// exactly one token (or report NeedMore/error) given the tokenizer's current
// position in the grammar. Read wraps this with the outer snapshot/rollback
// that makes the whole call atomic.
//
// previousTokenType stays Unknown until the first non-comment token is
// produced, so a document that opens with one or more comments (tokenType
// already advanced to Comment, but nothing real read yet) still counts as
// "before the first token" here — otherwise consumeNextToken would mistake
// the still-unstarted document for a completed top-level value.
func (t *Tokenizer) readSingleSegment() bool {
	if t.previousTokenType == Unknown && (t.tokenType == Unknown || t.tokenType == Comment) {
		return t.readFirstToken()
	}
	return t.consumeNextToken()
}

// readFirstToken handles the very first token of the document. With
// AllowMultipleValues, the start of each later top-level value is read by
// consumeNextToken instead.
func (t *Tokenizer) readFirstToken() bool {
	produced, needMore := t.skipAllComments()
	if needMore {
		return false
	}
	if t.err != nil {
		return false
	}
	if produced {
		return true
	}
	if t.atEnd() {
		return false
	}
	return t.consumeValue()
}

// consumeNextToken handles every token after the first: it looks at the
// container we're in (object, array, or top level) and the type of the
// previous non-comment token to decide what's grammatically allowed next.
//
// When the current token is a Comment produced while a separator (',' or
// ':') was already consumed but its follow-on property/value hadn't been
// reached yet, resume directly past that separator instead of re-entering
// the previousTokenType-keyed dispatch below — the separator byte is gone
// from the buffer, so re-matching it against whatever comes next (a
// property name or value) would misfire. trailingComma/afterColon stay set
// across any number of chained comments until the real follow-on token is
// produced, so this also handles "comma /*c1*/ /*c2*/ value".
func (t *Tokenizer) consumeNextToken() bool {
	if t.tokenType == Comment {
		if t.afterColon {
			return t.afterPropertyColon()
		}
		if t.trailingComma {
			return t.afterComma()
		}
	}

	produced, needMore := t.skipAllComments()
	if needMore {
		return false
	}
	if t.err != nil {
		return false
	}
	if produced {
		return true
	}

	depth := t.bits.count()

	if t.atEnd() {
		if depth == 0 {
			return false
		}
		t.throw(ErrZeroDepthAtEnd)
		return false
	}

	if depth == 0 {
		if !t.cfg.AllowMultipleValues {
			t.throwByte(ErrExpectedEndAfterSingleJSON, t.peek())
			return false
		}
		return t.consumeValue()
	}

	if t.inObject {
		return t.consumeNextInObject()
	}
	return t.consumeNextInArray()
}

func (t *Tokenizer) consumeNextInObject() bool {
	switch t.previousTokenType {
	case ObjectStart:
		return t.consumeFirstMemberOrObjectEnd()
	case Property:
		return t.consumeValueAfterProperty()
	default:
		return t.consumeObjectContinuation()
	}
}

func (t *Tokenizer) consumeNextInArray() bool {
	switch t.previousTokenType {
	case ArrayStart:
		return t.consumeFirstElementOrArrayEnd()
	default:
		return t.consumeArrayContinuation()
	}
}

func (t *Tokenizer) consumeFirstMemberOrObjectEnd() bool {
	switch t.peek() {
	case '}':
		return t.consumeObjectEnd()
	case '"':
		return t.consumeProperty()
	default:
		t.throwByte(ErrExpectedStartOfPropertyOrValueNotFound, t.peek())
		return false
	}
}

func (t *Tokenizer) consumeFirstElementOrArrayEnd() bool {
	if t.peek() == ']' {
		return t.consumeArrayEnd()
	}
	return t.consumeValue()
}

// consumeObjectContinuation handles the position right after a complete
// member value, where only ',' or '}' are valid.
func (t *Tokenizer) consumeObjectContinuation() bool {
	switch t.peek() {
	case '}':
		return t.consumeObjectEnd()
	case ',':
		return t.consumeCommaThen()
	default:
		t.throwByte(ErrFoundInvalidCharacter, t.peek())
		return false
	}
}

// consumeArrayContinuation handles the position right after a complete
// element, where only ',' or ']' are valid.
func (t *Tokenizer) consumeArrayContinuation() bool {
	switch t.peek() {
	case ']':
		return t.consumeArrayEnd()
	case ',':
		return t.consumeCommaThen()
	default:
		t.throwByte(ErrFoundInvalidCharacter, t.peek())
		return false
	}
}

// consumeCommaThen consumes the ',' already confirmed by the caller and
// resumes at whatever follows it. Marking trailingComma before the resume
// step, rather than after it succeeds, is what lets afterComma be re-entered
// directly (via consumeNextToken's Comment check above) if a comment sits
// between the ',' and the property/value that follows: the ',' itself is
// never matched a second time.
func (t *Tokenizer) consumeCommaThen() bool {
	t.advance()
	t.trailingComma = true
	return t.afterComma()
}

// afterComma skips whitespace/comments following an already-consumed ','
// and resumes at the property name or value position that follows, in
// whichever container (object or array) the tokenizer is currently
// positioned in. It reports NeedMore itself if the window ends before that
// can be decided; the outer Read-level snapshot handles full rollback.
func (t *Tokenizer) afterComma() bool {
	produced, needMore := t.skipAllComments()
	if needMore {
		return false
	}
	if t.err != nil {
		return false
	}
	if produced {
		return true
	}
	if t.atEnd() {
		t.throw(ErrZeroDepthAtEnd)
		return false
	}
	if t.inObject {
		return t.afterCommaInObject()
	}
	return t.afterCommaInArray()
}

func (t *Tokenizer) afterCommaInObject() bool {
	if t.peek() == '}' {
		if !t.cfg.AllowTrailingCommas {
			t.throw(ErrTrailingCommaNotAllowedBeforeObjectEnd)
			return false
		}
		return t.consumeObjectEnd()
	}
	if t.peek() != '"' {
		t.throwByte(ErrExpectedStartOfPropertyNotFound, t.peek())
		return false
	}
	return t.consumeProperty()
}

func (t *Tokenizer) afterCommaInArray() bool {
	if t.peek() == ']' {
		if !t.cfg.AllowTrailingCommas {
			t.throw(ErrTrailingCommaNotAllowedBeforeArrayEnd)
			return false
		}
		return t.consumeArrayEnd()
	}
	return t.consumeValue()
}

// consumeValue dispatches on the first byte of a value position: an object
// or array start, a quoted string, one of the three literals, or a number.
func (t *Tokenizer) consumeValue() bool {
	switch b := t.peek(); {
	case b == '{':
		return t.consumeObjectStart()
	case b == '[':
		return t.consumeArrayStart()
	case b == '"':
		return t.consumeStringValue()
	case b == 't':
		return t.finishLiteral("true", Boolean, ErrExpectedTrue)
	case b == 'f':
		return t.finishLiteral("false", Boolean, ErrExpectedFalse)
	case b == 'n':
		return t.finishLiteral("null", Null, ErrExpectedNull)
	case b == '-' || isDigit(b):
		return t.finishNumber()
	default:
		t.throwByte(ErrExpectedStartOfValueNotFound, b)
		return false
	}
}

// consumeValueAfterProperty requires ':' (with surrounding whitespace and
// comments) between a property name and its value.
func (t *Tokenizer) consumeValueAfterProperty() bool {
	produced, needMore := t.skipAllComments()
	if needMore {
		return false
	}
	if t.err != nil {
		return false
	}
	if produced {
		return true
	}
	if t.atEnd() {
		t.throw(ErrExpectedValueAfterPropertyNameNotFound)
		return false
	}
	if t.peek() != ':' {
		t.throwByte(ErrExpectedSeparatorAfterPropertyNameNotFound, t.peek())
		return false
	}
	t.advance()
	t.afterColon = true
	return t.afterPropertyColon()
}

// afterPropertyColon skips whitespace/comments following an already-consumed
// ':' and reads the value that follows. Marking afterColon before this step
// (not after it succeeds) is what lets it be re-entered directly (via
// consumeNextToken's Comment check above) if a comment sits between the ':'
// and the value: the ':' is never matched a second time.
func (t *Tokenizer) afterPropertyColon() bool {
	produced, needMore := t.skipAllComments()
	if needMore {
		return false
	}
	if t.err != nil {
		return false
	}
	if produced {
		return true
	}
	if t.atEnd() {
		t.throw(ErrExpectedValueAfterPropertyNameNotFound)
		return false
	}
	return t.consumeValue()
}

func (t *Tokenizer) consumeObjectStart() bool {
	if uint64(t.bits.count()) >= t.cfg.MaxDepth {
		t.throwNumber(ErrObjectDepthTooLarge, int64(t.cfg.MaxDepth))
		return false
	}
	start := t.consumed
	t.advance()
	t.bits.push(true)
	t.lastPush = true
	t.inObject = true
	t.tokenType = ObjectStart
	t.previousTokenType = ObjectStart
	t.tokenStart = start
	t.tokenSize = 1
	t.valueIsEscaped = false
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) consumeArrayStart() bool {
	if uint64(t.bits.count()) >= t.cfg.MaxDepth {
		t.throwNumber(ErrArrayDepthTooLarge, int64(t.cfg.MaxDepth))
		return false
	}
	start := t.consumed
	t.advance()
	t.bits.push(false)
	t.lastPush = true
	t.inObject = false
	t.tokenType = ArrayStart
	t.previousTokenType = ArrayStart
	t.tokenStart = start
	t.tokenSize = 1
	t.valueIsEscaped = false
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) consumeObjectEnd() bool {
	if !t.inObject {
		t.throwByte(ErrMismatchedObjectArray, '}')
		return false
	}
	start := t.consumed
	t.advance()
	t.lastPop = true
	t.lastPopWasObj = true
	t.inObject = t.bits.pop()
	t.tokenType = ObjectEnd
	t.previousTokenType = ObjectEnd
	t.tokenStart = start
	t.tokenSize = 1
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) consumeArrayEnd() bool {
	if t.inObject {
		t.throwByte(ErrMismatchedObjectArray, ']')
		return false
	}
	start := t.consumed
	t.advance()
	t.lastPop = true
	t.lastPopWasObj = false
	t.inObject = t.bits.pop()
	t.tokenType = ArrayEnd
	t.previousTokenType = ArrayEnd
	t.tokenStart = start
	t.tokenSize = 1
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) consumeProperty() bool {
	t.advance() // opening quote
	ok, needMore := t.consumeString()
	if needMore {
		return false
	}
	if !ok {
		return false
	}
	t.tokenType = Property
	t.previousTokenType = Property
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) consumeStringValue() bool {
	t.advance() // opening quote
	ok, needMore := t.consumeString()
	if needMore {
		return false
	}
	if !ok {
		return false
	}
	t.tokenType = String
	t.previousTokenType = String
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) finishLiteral(lit string, kind TokenKind, errKind ErrorKind) bool {
	ok, needMore := t.consumeLiteral(lit, kind, errKind)
	if needMore {
		return false
	}
	if !ok {
		return false
	}
	t.previousTokenType = kind
	t.trailingComma = false
	t.afterColon = false
	return true
}

func (t *Tokenizer) finishNumber() bool {
	ok, needMore := t.consumeNumber()
	if needMore {
		return false
	}
	if !ok {
		return false
	}
	if !t.atEnd() {
		if b := t.peek(); !isNumberDelimiter(b) {
			t.throwByte(ErrExpectedEndOfDigitNotFound, b)
			return false
		}
	}
	t.tokenType = Number
	t.previousTokenType = Number
	t.trailingComma = false
	t.afterColon = false
	return true
}

func isNumberDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ',', ']', '}', '/':
		return true
	default:
		return false
	}
}
