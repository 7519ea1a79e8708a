package jsonrivulet

import "strconv"

func (t *Tokenizer) requireComment() bool {
	if t.tokenType != Comment {
		t.throwText(ErrInvalidOperationExpectedComment, t.tokenType.String())
		return false
	}
	return true
}

func (t *Tokenizer) requireBool() bool {
	if t.tokenType != Boolean {
		t.throwText(ErrInvalidOperationExpectedBool, t.tokenType.String())
		return false
	}
	return true
}

// GetBool returns the current token's value; the tokenizer must be
// positioned on a Boolean token.
func (t *Tokenizer) GetBool() bool {
	if !t.requireBool() {
		return false
	}
	return t.buf[t.tokenStart] == 't'
}

// TryGetBool is the non-throwing form of GetBool.
func (t *Tokenizer) TryGetBool() (bool, bool) {
	if t.tokenType != Boolean {
		return false, false
	}
	return t.buf[t.tokenStart] == 't', true
}

// GetString returns the current token's decoded text. The tokenizer must be
// positioned on a String or Property token. If ValueIsEscaped is false this
// is the raw token bytes converted to a string with no decoding (which in Go
// copies the bytes once, as any []byte-to-string conversion does);
// otherwise it is unescaped into a freshly allocated buffer.
func (t *Tokenizer) GetString() string {
	if t.tokenType != String && t.tokenType != Property {
		t.throwText(ErrInvalidOperationExpectedString, t.tokenType.String())
		return ""
	}
	raw := t.Token()
	if !t.valueIsEscaped {
		return string(raw)
	}
	dst, err := decodeString(raw, make([]byte, 0, len(raw)))
	if err != nil {
		t.throw(err.(*Error).Kind)
		return ""
	}
	return string(dst)
}

// TryGetString is the non-throwing form of GetString.
func (t *Tokenizer) TryGetString() (string, bool) {
	if t.tokenType != String && t.tokenType != Property {
		return "", false
	}
	raw := t.Token()
	if !t.valueIsEscaped {
		return string(raw), true
	}
	dst, err := decodeString(raw, make([]byte, 0, len(raw)))
	if err != nil {
		return "", false
	}
	return string(dst), true
}

// GetComment returns the current token's raw text. The tokenizer must be
// positioned on a Comment token.
func (t *Tokenizer) GetComment() string {
	if !t.requireComment() {
		return ""
	}
	return string(t.Token())
}

// TextEquals reports whether the current String or Property token's decoded
// value equals s, without allocating a decode buffer when the token is
// unescaped (the common case): it compares raw bytes directly, and only
// falls back to decoding into a small stack buffer when a backslash is
// present.
func (t *Tokenizer) TextEquals(s string) bool {
	if t.tokenType != String && t.tokenType != Property {
		t.throwText(ErrInvalidOperationExpectedStringComparison, t.tokenType.String())
		return false
	}
	raw := t.Token()
	if !t.valueIsEscaped {
		return string(raw) == s
	}
	var stackBuf [64]byte
	dst, err := decodeString(raw, stackBuf[:0])
	if err != nil {
		t.throw(err.(*Error).Kind)
		return false
	}
	return string(dst) == s
}

// GetInt64 parses the current Number token as a signed 64-bit integer.
func (t *Tokenizer) GetInt64() int64 {
	v, ok := t.TryGetInt64()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetInt64 is the non-throwing form of GetInt64; ok is false both when
// the current token isn't a Number and when the number's value doesn't fit
// or isn't integral.
func (t *Tokenizer) TryGetInt64() (int64, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseInt(string(t.Token()), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetUint64 parses the current Number token as an unsigned 64-bit integer.
func (t *Tokenizer) GetUint64() uint64 {
	v, ok := t.TryGetUint64()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetUint64 is the non-throwing form of GetUint64.
func (t *Tokenizer) TryGetUint64() (uint64, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseUint(string(t.Token()), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetInt32 parses the current Number token as a signed 32-bit integer.
func (t *Tokenizer) GetInt32() int32 {
	v, ok := t.TryGetInt32()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetInt32 is the non-throwing form of GetInt32.
func (t *Tokenizer) TryGetInt32() (int32, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseInt(string(t.Token()), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// GetUint32 parses the current Number token as an unsigned 32-bit integer.
func (t *Tokenizer) GetUint32() uint32 {
	v, ok := t.TryGetUint32()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetUint32 is the non-throwing form of GetUint32.
func (t *Tokenizer) TryGetUint32() (uint32, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseUint(string(t.Token()), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// GetInt16 parses the current Number token as a signed 16-bit integer.
func (t *Tokenizer) GetInt16() int16 {
	v, ok := t.TryGetInt16()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetInt16 is the non-throwing form of GetInt16.
func (t *Tokenizer) TryGetInt16() (int16, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseInt(string(t.Token()), 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(v), true
}

// GetUint16 parses the current Number token as an unsigned 16-bit integer.
func (t *Tokenizer) GetUint16() uint16 {
	v, ok := t.TryGetUint16()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetUint16 is the non-throwing form of GetUint16.
func (t *Tokenizer) TryGetUint16() (uint16, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseUint(string(t.Token()), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// GetInt8 parses the current Number token as a signed 8-bit integer.
func (t *Tokenizer) GetInt8() int8 {
	v, ok := t.TryGetInt8()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetInt8 is the non-throwing form of GetInt8.
func (t *Tokenizer) TryGetInt8() (int8, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseInt(string(t.Token()), 10, 8)
	if err != nil {
		return 0, false
	}
	return int8(v), true
}

// GetUint8 parses the current Number token as an unsigned 8-bit integer.
func (t *Tokenizer) GetUint8() uint8 {
	v, ok := t.TryGetUint8()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetUint8 is the non-throwing form of GetUint8.
func (t *Tokenizer) TryGetUint8() (uint8, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseUint(string(t.Token()), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// GetFloat64 parses the current Number token as a 64-bit float ("double" in
// spec.md §6's accessor family naming).
func (t *Tokenizer) GetFloat64() float64 {
	v, ok := t.TryGetFloat64()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetFloat64 is the non-throwing form of GetFloat64.
func (t *Tokenizer) TryGetFloat64() (float64, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(t.Token()), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetFloat32 parses the current Number token as a 32-bit float ("float" in
// spec.md §6's accessor family naming).
func (t *Tokenizer) GetFloat32() float32 {
	v, ok := t.TryGetFloat32()
	if !ok && t.err == nil {
		t.throwText(ErrInvalidOperationExpectedNumber, t.tokenType.String())
	}
	return v
}

// TryGetFloat32 is the non-throwing form of GetFloat32.
func (t *Tokenizer) TryGetFloat32() (float32, bool) {
	if t.tokenType != Number {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(t.Token()), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// GetStringEscaped decodes the current String/Property token's escaped text
// into dst, returning the number of bytes written and whether dst was large
// enough. When the token isn't escaped, this is equivalent to copying
// Token() into dst. Mirrors the original's json_get_string_escaped
// buffer-reuse contract: the caller owns dst, and an escaped token is
// decoded in place into dst when it fits. When it does not fit, the decode
// grows a temporary buffer and only the bytes that fit are copied into dst.
func (t *Tokenizer) GetStringEscaped(dst []byte) (n int, fit bool) {
	if t.tokenType != String && t.tokenType != Property {
		t.throwText(ErrInvalidOperationExpectedString, t.tokenType.String())
		return 0, false
	}
	raw := t.Token()
	if !t.valueIsEscaped {
		n = copy(dst, raw)
		return n, n == len(raw)
	}
	decoded, err := decodeString(raw, dst[:0:len(dst)])
	if err != nil {
		t.throw(err.(*Error).Kind)
		return 0, false
	}
	if len(decoded) > len(dst) {
		// decodeString had to grow past dst's capacity; dst wasn't large
		// enough, so report back only what fits.
		n = copy(dst, decoded)
		return n, false
	}
	return len(decoded), true
}

// DecodeString is GetString's allocating convenience form, always returning
// a freshly decoded copy regardless of whether the token was escaped.
func (t *Tokenizer) DecodeString() (string, error) {
	if t.tokenType != String && t.tokenType != Property {
		return "", &Error{Kind: ErrInvalidOperationExpectedString, Line: t.line, Column: t.column, Text: t.tokenType.String()}
	}
	raw := t.Token()
	if !t.valueIsEscaped {
		return string(raw), nil
	}
	dst, err := decodeString(raw, make([]byte, 0, len(raw)))
	if err != nil {
		return "", err
	}
	return string(dst), nil
}
