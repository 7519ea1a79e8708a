// Package jsonrivulet implements a pull-based, resumable JSON tokenizer.
//
// A Tokenizer reads one logical token at a time from a caller-owned byte
// buffer, validates the grammar of RFC 8259 (plus optionally comments and
// trailing commas), and tracks structural nesting in O(1) space per level.
// It never builds a DOM: every token it produces points into the caller's
// buffer by offset and length.
//
// The tokenizer is Sans-I/O: it never reads from a socket, file, or reader
// itself. When a token is incomplete because the current buffer ended
// mid-construct, Read returns false and HasError reports no error — the
// caller is expected to obtain more bytes (by any means: a socket read, a
// pipe, a decompression step) and call Continue with a fresh window that
// starts where the unconsumed tail of the old one left off.
package jsonrivulet

// Tokenizer is not safe for concurrent use; callers must serialize access to
// a single instance, and must not use a Tokenizer after calling Continue on
// it (the returned Tokenizer takes ownership of its structural state).
type Tokenizer struct {
	buf      []byte
	isFinal  bool

	consumed      uint64
	totalConsumed uint64
	line          uint64
	column        uint64

	bits     bitStack
	inObject bool

	tokenType         TokenKind
	previousTokenType TokenKind
	tokenStart        uint64
	tokenSize         uint64
	valueIsEscaped    bool
	trailingComma     bool
	afterColon        bool

	cfg Config
	err *Error

	// Transient bookkeeping for the current Read call only: which bit-stack
	// mutation (if any) it performed, so readSingleSegment can undo it on a
	// NeedMore outcome. Never carried across Continue.
	lastPush      bool
	lastPop       bool
	lastPopWasObj bool
}

// New creates a Tokenizer over buf. isFinal asserts that no more bytes will
// follow this window; pass false when the buffer may be a prefix of a larger
// stream, and resume later with Continue.
func New(buf []byte, isFinal bool, opts ...Option) *Tokenizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tokenizer{
		buf:     buf,
		isFinal: isFinal,
		cfg:     cfg,
	}
	t.bits.init()
	return t
}

// Continue returns a new Tokenizer that resumes parsing over buf, inheriting
// all structural state from t: nesting, last token type, comment lookback,
// and configuration. total_consumed accumulates so TotalBytesConsumed stays
// monotonic across the whole stream. t must not be used after this call.
//
// Concatenation of the old and new buffers is never required: only the
// unconsumed tail of the previous window (buf[t.BytesConsumed():]) needs to
// be preserved and prefixed onto the new bytes, since everything before that
// point has already been folded into total_consumed.
func (t *Tokenizer) Continue(buf []byte, isFinal bool) *Tokenizer {
	next := &Tokenizer{
		buf:     buf,
		isFinal: isFinal,

		line:   t.line,
		column: t.column,

		bits:     t.bits,
		inObject: t.inObject,

		tokenType:         t.tokenType,
		previousTokenType: t.previousTokenType,
		trailingComma:     t.trailingComma,
		afterColon:        t.afterColon,

		cfg:           t.cfg,
		totalConsumed: t.totalConsumed + t.consumed,
	}
	return next
}

// Close releases the bit-stack's heap storage. A zeroed Tokenizer is safe to
// discard without calling Close; this exists for symmetry with the original
// API. The backing array is dropped, not kept for reuse.
func (t *Tokenizer) Close() {
	t.bits.array = nil
}

func (t *Tokenizer) throw(kind ErrorKind) {
	e := &Error{Kind: kind, Line: t.line, Column: t.column}
	t.err = e
	if t.cfg.ErrorHandler != nil {
		t.cfg.ErrorHandler(e)
	}
}

func (t *Tokenizer) throwByte(kind ErrorKind, b byte) {
	e := &Error{Kind: kind, Line: t.line, Column: t.column, Byte: b}
	t.err = e
	if t.cfg.ErrorHandler != nil {
		t.cfg.ErrorHandler(e)
	}
}

func (t *Tokenizer) throwText(kind ErrorKind, s string) {
	e := &Error{Kind: kind, Line: t.line, Column: t.column, Text: s}
	t.err = e
	if t.cfg.ErrorHandler != nil {
		t.cfg.ErrorHandler(e)
	}
}

func (t *Tokenizer) throwNumber(kind ErrorKind, n int64) {
	e := &Error{Kind: kind, Line: t.line, Column: t.column, Number: n}
	t.err = e
	if t.cfg.ErrorHandler != nil {
		t.cfg.ErrorHandler(e)
	}
}

// HasError reports whether an unrecovered error is set on the tokenizer.
func (t *Tokenizer) HasError() bool { return t.err != nil }

// Err returns the last recorded error, or nil.
func (t *Tokenizer) Err() *Error { return t.err }

// ClearError resets the error slot so a different accessor can be tried.
// Further Read calls after a grammar error are not guaranteed to make
// progress; only NeedMore outcomes (Read returning false with Err() == nil
// on a non-final block) are safely resumable.
func (t *Tokenizer) ClearError() { t.err = nil }

// TokenType returns the kind of the last token produced by Read.
func (t *Tokenizer) TokenType() TokenKind { return t.tokenType }

// TokenStart returns the token's byte offset within the current window.
func (t *Tokenizer) TokenStart() uint64 { return t.tokenStart }

// TokenSize returns the token's length in bytes.
func (t *Tokenizer) TokenSize() uint64 { return t.tokenSize }

// Token returns the raw bytes of the current token: a slice into the
// caller's buffer, valid only until the next Continue call rebinds the
// window. For String and Property tokens this excludes the surrounding
// quotes. For Comment tokens it excludes the // or /* */ delimiters.
func (t *Tokenizer) Token() []byte {
	if t.tokenType == Unknown {
		return nil
	}
	return t.buf[t.tokenStart : t.tokenStart+t.tokenSize]
}

// ValueIsEscaped reports whether the current String/Property token's raw
// span contains at least one backslash.
func (t *Tokenizer) ValueIsEscaped() bool { return t.valueIsEscaped }

// CurrentDepth returns the number of currently open containers. While
// positioned on an ObjectStart or ArrayStart token, it reports the depth
// "inside" the container that was just opened (one less than the raw bit
// count), per spec.md §4.4.
func (t *Tokenizer) CurrentDepth() uint64 {
	depth := uint64(t.bits.count())
	if t.tokenType == ObjectStart || t.tokenType == ArrayStart {
		depth--
	}
	return depth
}

// IsInArray reports whether the tokenizer is currently positioned inside an
// array (as opposed to an object or the top level).
func (t *Tokenizer) IsInArray() bool { return t.bits.count() > 0 && !t.inObject }

// IsFinalBlock reports whether this window is the last one the caller will
// supply.
func (t *Tokenizer) IsFinalBlock() bool { return t.isFinal }

// BytesConsumed returns the number of bytes consumed from the current
// window.
func (t *Tokenizer) BytesConsumed() uint64 { return t.consumed }

// TotalBytesConsumed returns the number of bytes consumed across the whole
// stream, including prior windows folded in via Continue.
func (t *Tokenizer) TotalBytesConsumed() uint64 { return t.totalConsumed + t.consumed }

// Read advances the tokenizer by one token. It returns false when no token
// could be produced: either because the data ran out (call Continue with
// more bytes and retry — HasError will be false) or because a terminal
// grammar error occurred (HasError will be true). On a final block with no
// tokens read yet and AllowMultipleValues unset, a false return always means
// an error.
func (t *Tokenizer) Read() bool {
	if t.err != nil {
		return false
	}

	snap := t.snapshot()
	t.lastPush, t.lastPop, t.lastPopWasObj = false, false, false

	result := t.readSingleSegment()

	if !result && t.err == nil {
		snap.bitsPushed = t.lastPush
		snap.bitsPopped = t.lastPop
		snap.poppedWasObject = t.lastPopWasObj
		t.rollback(snap)

		if t.isFinal && t.previousTokenType == Unknown && !t.cfg.AllowMultipleValues {
			t.throw(ErrExpectedJSONTokens)
		}
	}
	return result
}
