package jsonrivulet

import "fmt"

// ErrorKind is a closed taxonomy of tokenizer failures. Every value the
// tokenizer can produce is listed here; there is no "unknown" catch-all
// beyond ErrNone, which marks the absence of an error.
type ErrorKind uint8

const (
	ErrNone ErrorKind = iota

	// Structural
	ErrObjectDepthTooLarge
	ErrArrayDepthTooLarge
	ErrMismatchedObjectArray
	ErrZeroDepthAtEnd
	ErrInvalidEndOfJSONNonPrimitive

	// Lexical
	ErrFoundInvalidCharacter
	ErrInvalidCharacterWithinString
	ErrInvalidCharacterAfterEscapeWithinString
	ErrInvalidHexCharacterWithinString
	ErrEndOfStringNotFound

	// Numeric grammar
	ErrInvalidLeadingZeroInNumber
	ErrRequiredDigitNotFoundAfterSign
	ErrRequiredDigitNotFoundAfterDecimal
	ErrRequiredDigitNotFoundEndOfData
	ErrExpectedNextDigitEValueNotFound
	ErrExpectedEndOfDigitNotFound

	// Literal mismatch
	ErrExpectedTrue
	ErrExpectedFalse
	ErrExpectedNull

	// Trailing comma policy
	ErrTrailingCommaNotAllowedBeforeArrayEnd
	ErrTrailingCommaNotAllowedBeforeObjectEnd

	// Incomplete on final block / grammar gaps
	ErrExpectedJSONTokens
	ErrExpectedStartOfPropertyNotFound
	ErrExpectedStartOfValueNotFound
	ErrExpectedStartOfPropertyOrValueNotFound
	ErrExpectedValueAfterPropertyNameNotFound
	ErrExpectedSeparatorAfterPropertyNameNotFound
	ErrExpectedEndAfterSingleJSON
	ErrInvalidCharacterAtStartOfComment
	ErrUnexpectedEndOfDataWhileReadingComment
	ErrEndOfCommentNotFound
	ErrUnexpectedEndOfLineSeparator

	// Misuse of accessors
	ErrInvalidOperationCannotSkipOnPartial
	ErrInvalidOperationExpectedStringComparison
	ErrInvalidOperationExpectedString
	ErrInvalidOperationExpectedProperty
	ErrInvalidOperationExpectedComment
	ErrInvalidOperationExpectedBool
	ErrInvalidOperationExpectedNumber
	ErrInvalidOperationExpectedArrayStart
	ErrInvalidOperationExpectedArrayEnd
	ErrInvalidOperationExpectedObjectStart
	ErrInvalidOperationExpectedObjectEnd

	// Resource exhaustion
	ErrOutOfMemory
)

var errorKindNames = [...]string{
	ErrNone:                                        "None",
	ErrObjectDepthTooLarge:                         "ObjectDepthTooLarge",
	ErrArrayDepthTooLarge:                          "ArrayDepthTooLarge",
	ErrMismatchedObjectArray:                       "MismatchedObjectArray",
	ErrZeroDepthAtEnd:                              "ZeroDepthAtEnd",
	ErrInvalidEndOfJSONNonPrimitive:                "InvalidEndOfJsonNonPrimitive",
	ErrFoundInvalidCharacter:                       "FoundInvalidCharacter",
	ErrInvalidCharacterWithinString:                "InvalidCharacterWithinString",
	ErrInvalidCharacterAfterEscapeWithinString:     "InvalidCharacterAfterEscapeWithinString",
	ErrInvalidHexCharacterWithinString:             "InvalidHexCharacterWithinString",
	ErrEndOfStringNotFound:                         "EndOfStringNotFound",
	ErrInvalidLeadingZeroInNumber:                  "InvalidLeadingZeroInNumber",
	ErrRequiredDigitNotFoundAfterSign:              "RequiredDigitNotFoundAfterSign",
	ErrRequiredDigitNotFoundAfterDecimal:           "RequiredDigitNotFoundAfterDecimal",
	ErrRequiredDigitNotFoundEndOfData:              "RequiredDigitNotFoundEndOfData",
	ErrExpectedNextDigitEValueNotFound:             "ExpectedNextDigitEValueNotFound",
	ErrExpectedEndOfDigitNotFound:                  "ExpectedEndOfDigitNotFound",
	ErrExpectedTrue:                                "ExpectedTrue",
	ErrExpectedFalse:                               "ExpectedFalse",
	ErrExpectedNull:                                "ExpectedNull",
	ErrTrailingCommaNotAllowedBeforeArrayEnd:       "TrailingCommaNotAllowedBeforeArrayEnd",
	ErrTrailingCommaNotAllowedBeforeObjectEnd:      "TrailingCommaNotAllowedBeforeObjectEnd",
	ErrExpectedJSONTokens:                          "ExpectedJsonTokens",
	ErrExpectedStartOfPropertyNotFound:             "ExpectedStartOfPropertyNotFound",
	ErrExpectedStartOfValueNotFound:                "ExpectedStartOfValueNotFound",
	ErrExpectedStartOfPropertyOrValueNotFound:      "ExpectedStartOfPropertyOrValueNotFound",
	ErrExpectedValueAfterPropertyNameNotFound:      "ExpectedValueAfterPropertyNameNotFound",
	ErrExpectedSeparatorAfterPropertyNameNotFound:  "ExpectedSeparatorAfterPropertyNameNotFound",
	ErrExpectedEndAfterSingleJSON:                  "ExpectedEndAfterSingleJson",
	ErrInvalidCharacterAtStartOfComment:            "InvalidCharacterAtStartOfComment",
	ErrUnexpectedEndOfDataWhileReadingComment:      "UnexpectedEndOfDataWhileReadingComment",
	ErrEndOfCommentNotFound:                        "EndOfCommentNotFound",
	ErrUnexpectedEndOfLineSeparator:                "UnexpectedEndOfLineSeparator",
	ErrInvalidOperationCannotSkipOnPartial:         "InvalidOperationCannotSkipOnPartial",
	ErrInvalidOperationExpectedStringComparison:    "InvalidOperationExpectedStringComparison",
	ErrInvalidOperationExpectedString:              "InvalidOperationExpectedString",
	ErrInvalidOperationExpectedProperty:            "InvalidOperationExpectedProperty",
	ErrInvalidOperationExpectedComment:             "InvalidOperationExpectedComment",
	ErrInvalidOperationExpectedBool:                "InvalidOperationExpectedBool",
	ErrInvalidOperationExpectedNumber:              "InvalidOperationExpectedNumber",
	ErrInvalidOperationExpectedArrayStart:          "InvalidOperationExpectedArrayStart",
	ErrInvalidOperationExpectedArrayEnd:            "InvalidOperationExpectedArrayEnd",
	ErrInvalidOperationExpectedObjectStart:         "InvalidOperationExpectedObjectStart",
	ErrInvalidOperationExpectedObjectEnd:           "InvalidOperationExpectedObjectEnd",
	ErrOutOfMemory:                                 "OutOfMemory",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error carries a tokenizer failure: its kind, the line/column it occurred
// at, and whatever payload (offending byte, slice, or number) the kind
// requires to render a useful message.
type Error struct {
	Kind   ErrorKind
	Line   uint64
	Column uint64

	Byte   byte
	Text   string
	Number int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("[Line %d, Column %d] %s", e.Line, e.Column, e.message())
}

func (e *Error) message() string {
	switch e.Kind {
	case ErrObjectDepthTooLarge:
		return fmt.Sprintf("the object depth would exceed the configured maximum depth of %d", e.Number)
	case ErrArrayDepthTooLarge:
		return fmt.Sprintf("the array depth would exceed the configured maximum depth of %d", e.Number)
	case ErrMismatchedObjectArray:
		return fmt.Sprintf("'%c' is invalid without a matching open", e.Byte)
	case ErrZeroDepthAtEnd:
		return "invalid end of data while in the middle of a container"
	case ErrInvalidEndOfJSONNonPrimitive:
		return fmt.Sprintf("expected end of data while parsing a %s value", e.Text)
	case ErrFoundInvalidCharacter:
		return fmt.Sprintf("%q is invalid after a value", e.Byte)
	case ErrInvalidCharacterWithinString:
		return fmt.Sprintf("invalid control character %q inside a string", e.Byte)
	case ErrInvalidCharacterAfterEscapeWithinString:
		return fmt.Sprintf("invalid character %q after a backslash escape", e.Byte)
	case ErrInvalidHexCharacterWithinString:
		return fmt.Sprintf("invalid hexadecimal digit %q in a \\u escape", e.Byte)
	case ErrEndOfStringNotFound:
		return "the closing quote of a string was not found"
	case ErrInvalidLeadingZeroInNumber:
		return fmt.Sprintf("a number may not have a leading zero: %q", e.Text)
	case ErrRequiredDigitNotFoundAfterSign:
		return fmt.Sprintf("a digit was expected after '-' but found %q", e.Byte)
	case ErrRequiredDigitNotFoundAfterDecimal:
		return fmt.Sprintf("a digit was expected after '.' but found %q", e.Byte)
	case ErrRequiredDigitNotFoundEndOfData:
		return "a digit was required but the data ended"
	case ErrExpectedNextDigitEValueNotFound:
		return fmt.Sprintf("an 'e'/'E' exponent or digit was expected but found %q", e.Byte)
	case ErrExpectedEndOfDigitNotFound:
		return fmt.Sprintf("a delimiter was expected after a number but found %q", e.Byte)
	case ErrExpectedTrue:
		return fmt.Sprintf("expected literal 'true' but found %q", e.Text)
	case ErrExpectedFalse:
		return fmt.Sprintf("expected literal 'false' but found %q", e.Text)
	case ErrExpectedNull:
		return fmt.Sprintf("expected literal 'null' but found %q", e.Text)
	case ErrTrailingCommaNotAllowedBeforeArrayEnd:
		return "trailing commas are not allowed before ']'"
	case ErrTrailingCommaNotAllowedBeforeObjectEnd:
		return "trailing commas are not allowed before '}'"
	case ErrExpectedJSONTokens:
		return "expected the start of a JSON value"
	case ErrExpectedStartOfPropertyNotFound:
		return fmt.Sprintf("expected a property name but found %q", e.Byte)
	case ErrExpectedStartOfValueNotFound:
		return fmt.Sprintf("expected the start of a value but found %q", e.Byte)
	case ErrExpectedStartOfPropertyOrValueNotFound:
		return "expected the start of a property name or value"
	case ErrExpectedValueAfterPropertyNameNotFound:
		return "expected a value after the property name"
	case ErrExpectedSeparatorAfterPropertyNameNotFound:
		return fmt.Sprintf("expected ':' after the property name but found %q", e.Byte)
	case ErrExpectedEndAfterSingleJSON:
		return fmt.Sprintf("expected end of data after a single JSON value but found %q", e.Byte)
	case ErrInvalidCharacterAtStartOfComment:
		return fmt.Sprintf("expected '/' or '*' to start a comment but found %q", e.Byte)
	case ErrUnexpectedEndOfDataWhileReadingComment:
		return "the data ended while reading a comment"
	case ErrEndOfCommentNotFound:
		return "the closing '*/' of a block comment was not found"
	case ErrUnexpectedEndOfLineSeparator:
		return "U+2028/U+2029 are not valid line terminators for a single-line comment"
	case ErrInvalidOperationCannotSkipOnPartial:
		return "Skip requires the tokenizer to be positioned over the final block"
	case ErrInvalidOperationExpectedStringComparison:
		return fmt.Sprintf("cannot compare a %s token against a string literal", e.Text)
	case ErrInvalidOperationExpectedString:
		return fmt.Sprintf("expected a string token but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedProperty:
		return fmt.Sprintf("expected a property token but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedComment:
		return fmt.Sprintf("expected a comment token but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedBool:
		return fmt.Sprintf("expected a boolean token but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedNumber:
		return fmt.Sprintf("expected a number token but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedArrayStart:
		return fmt.Sprintf("expected '[' but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedArrayEnd:
		return fmt.Sprintf("expected ']' but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedObjectStart:
		return fmt.Sprintf("expected '{' but the current token is %s", e.Text)
	case ErrInvalidOperationExpectedObjectEnd:
		return fmt.Sprintf("expected '}' but the current token is %s", e.Text)
	case ErrOutOfMemory:
		return "failed to grow the nesting stack"
	default:
		return e.Kind.String()
	}
}
