package jsonrivulet

// readThenGet is the shared engine for every Read_X helper: advance one
// token, then hand it to get. If get reports a type mismatch, the whole
// Read is rolled back (as if it never happened) so the caller can retry the
// same position with a different interpretation — mirroring the original's
// read_X-on-mismatch rollback contract from spec.md §6.
func readThenGet[T any](t *Tokenizer, get func() (T, bool), mismatch ErrorKind) (T, bool) {
	var zero T
	if t.err != nil {
		return zero, false
	}
	snap := t.snapshot()
	t.lastPush, t.lastPop, t.lastPopWasObj = false, false, false
	if !t.readSingleSegment() {
		if t.err == nil {
			snap.bitsPushed = t.lastPush
			snap.bitsPopped = t.lastPop
			snap.poppedWasObject = t.lastPopWasObj
			t.rollback(snap)
		}
		return zero, false
	}
	v, ok := get()
	if !ok {
		snap.bitsPushed = t.lastPush
		snap.bitsPopped = t.lastPop
		snap.poppedWasObject = t.lastPopWasObj
		t.rollback(snap)
		if t.err == nil {
			t.throwText(mismatch, t.tokenType.String())
		}
		return zero, false
	}
	return v, true
}

// ReadString advances one token and returns its decoded text; the token
// must be a String. On type mismatch the tokenizer is rolled back to where
// it was before the call.
func (t *Tokenizer) ReadString() (string, bool) {
	return readThenGet(t, func() (string, bool) {
		if t.tokenType != String {
			return "", false
		}
		s, ok := t.TryGetString()
		return s, ok
	}, ErrInvalidOperationExpectedString)
}

// TryReadString is ReadString without setting the error slot on mismatch.
func (t *Tokenizer) TryReadString() (string, bool) {
	if t.err != nil {
		return "", false
	}
	snap := t.snapshot()
	t.lastPush, t.lastPop, t.lastPopWasObj = false, false, false
	if !t.readSingleSegment() {
		if t.err == nil {
			snap.bitsPushed, snap.bitsPopped, snap.poppedWasObject = t.lastPush, t.lastPop, t.lastPopWasObj
			t.rollback(snap)
		}
		return "", false
	}
	s, ok := "", false
	if t.tokenType == String {
		s, ok = t.TryGetString()
	}
	if !ok {
		snap.bitsPushed, snap.bitsPopped, snap.poppedWasObject = t.lastPush, t.lastPop, t.lastPopWasObj
		t.rollback(snap)
		return "", false
	}
	return s, true
}

// ReadProperty advances one token and returns its decoded property name.
func (t *Tokenizer) ReadProperty() (string, bool) {
	return readThenGet(t, func() (string, bool) {
		if t.tokenType != Property {
			return "", false
		}
		return t.TryGetString()
	}, ErrInvalidOperationExpectedProperty)
}

// ReadBool advances one token and returns its boolean value.
func (t *Tokenizer) ReadBool() (bool, bool) {
	return readThenGet(t, t.TryGetBool, ErrInvalidOperationExpectedBool)
}

// ReadInt64 advances one token and parses it as a signed 64-bit integer.
func (t *Tokenizer) ReadInt64() (int64, bool) {
	return readThenGet(t, t.TryGetInt64, ErrInvalidOperationExpectedNumber)
}

// ReadUint64 advances one token and parses it as an unsigned 64-bit integer.
func (t *Tokenizer) ReadUint64() (uint64, bool) {
	return readThenGet(t, t.TryGetUint64, ErrInvalidOperationExpectedNumber)
}

// ReadInt32 advances one token and parses it as a signed 32-bit integer.
func (t *Tokenizer) ReadInt32() (int32, bool) {
	return readThenGet(t, t.TryGetInt32, ErrInvalidOperationExpectedNumber)
}

// ReadUint32 advances one token and parses it as an unsigned 32-bit integer.
func (t *Tokenizer) ReadUint32() (uint32, bool) {
	return readThenGet(t, t.TryGetUint32, ErrInvalidOperationExpectedNumber)
}

// ReadInt16 advances one token and parses it as a signed 16-bit integer.
func (t *Tokenizer) ReadInt16() (int16, bool) {
	return readThenGet(t, t.TryGetInt16, ErrInvalidOperationExpectedNumber)
}

// ReadUint16 advances one token and parses it as an unsigned 16-bit integer.
func (t *Tokenizer) ReadUint16() (uint16, bool) {
	return readThenGet(t, t.TryGetUint16, ErrInvalidOperationExpectedNumber)
}

// ReadInt8 advances one token and parses it as a signed 8-bit integer.
func (t *Tokenizer) ReadInt8() (int8, bool) {
	return readThenGet(t, t.TryGetInt8, ErrInvalidOperationExpectedNumber)
}

// ReadUint8 advances one token and parses it as an unsigned 8-bit integer.
func (t *Tokenizer) ReadUint8() (uint8, bool) {
	return readThenGet(t, t.TryGetUint8, ErrInvalidOperationExpectedNumber)
}

// ReadFloat64 advances one token and parses it as a 64-bit float.
func (t *Tokenizer) ReadFloat64() (float64, bool) {
	return readThenGet(t, t.TryGetFloat64, ErrInvalidOperationExpectedNumber)
}

// ReadFloat32 advances one token and parses it as a 32-bit float.
func (t *Tokenizer) ReadFloat32() (float32, bool) {
	return readThenGet(t, t.TryGetFloat32, ErrInvalidOperationExpectedNumber)
}

// ReadArrayStart advances one token, requiring it to be ArrayStart.
func (t *Tokenizer) ReadArrayStart() bool {
	_, ok := readThenGet(t, func() (struct{}, bool) {
		return struct{}{}, t.tokenType == ArrayStart
	}, ErrInvalidOperationExpectedArrayStart)
	return ok
}

// ReadArrayEnd advances one token, requiring it to be ArrayEnd.
func (t *Tokenizer) ReadArrayEnd() bool {
	_, ok := readThenGet(t, func() (struct{}, bool) {
		return struct{}{}, t.tokenType == ArrayEnd
	}, ErrInvalidOperationExpectedArrayEnd)
	return ok
}

// ReadObjectStart advances one token, requiring it to be ObjectStart.
func (t *Tokenizer) ReadObjectStart() bool {
	_, ok := readThenGet(t, func() (struct{}, bool) {
		return struct{}{}, t.tokenType == ObjectStart
	}, ErrInvalidOperationExpectedObjectStart)
	return ok
}

// ReadObjectEnd advances one token, requiring it to be ObjectEnd.
func (t *Tokenizer) ReadObjectEnd() bool {
	_, ok := readThenGet(t, func() (struct{}, bool) {
		return struct{}{}, t.tokenType == ObjectEnd
	}, ErrInvalidOperationExpectedObjectEnd)
	return ok
}

// ReadStringEscaped advances one token and decodes it into dst, returning
// the number of bytes written. Unlike GetStringEscaped, a dst that is too
// small is handled like a type mismatch: the read is rolled back, n is 0,
// and the error slot is set to ErrInvalidOperationExpectedString.
func (t *Tokenizer) ReadStringEscaped(dst []byte) (n int, ok bool) {
	return readThenGet(t, func() (int, bool) {
		if t.tokenType != String {
			return 0, false
		}
		n, fit := t.GetStringEscaped(dst)
		return n, fit
	}, ErrInvalidOperationExpectedString)
}
