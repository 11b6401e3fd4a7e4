// 定义了脚本处理过程中可能遇到的错误类型。

package txscript

import "fmt"

// ErrorCode identifies a kind of script error.
type ErrorCode int

const (
	// ErrTruncated indicates a byte stream ended before a chunk it started
	// could be fully read.
	ErrTruncated ErrorCode = iota

	// ErrInvalidScript indicates the text form of a script could not be
	// tokenized into chunks.
	ErrInvalidScript

	// ErrPayloadTooLarge indicates a mutator was asked to push a payload
	// whose length does not fit any push opcode's length field.
	ErrPayloadTooLarge

	// ErrInvalidArgument indicates a caller passed a value the package
	// cannot use: an unsupported Append/Prepend argument type or opcode
	// name, a push opcode whose payload length does not match it, or an
	// out-of-range builder input (public key, address, key count).
	ErrInvalidArgument

	// ErrUnrecognizedAddress indicates fromAddress was given an address
	// that is neither pay-to-script-hash nor pay-to-pubkey-hash.
	ErrUnrecognizedAddress

	// ErrPreconditionFailed indicates an accessor such as
	// (*Script).PublicKeyHash was called on a script whose classification
	// doesn't support it.
	ErrPreconditionFailed
)

// errorCodeNames holds the stringified name of each ErrorCode.
var errorCodeNames = map[ErrorCode]string{
	ErrTruncated:           "ErrTruncated",
	ErrInvalidScript:       "ErrInvalidScript",
	ErrPayloadTooLarge:     "ErrPayloadTooLarge",
	ErrInvalidArgument:     "ErrInvalidArgument",
	ErrUnrecognizedAddress: "ErrUnrecognizedAddress",
	ErrPreconditionFailed:  "ErrPreconditionFailed",
}

// String returns the ErrorCode as a human-readable name.
//
// NOTE: This is part of the stringer interface.
func (e ErrorCode) String() string {
	if s, ok := errorCodeNames[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// Error identifies an error related to script handling. It is used to
// indicate three classes of errors: malformed byte streams or text, mutator
// misuse, and builder preconditions. It satisfies the error interface and
// carries a Code field so callers can branch on the failure kind without
// parsing the message.
type Error struct {
	Code        ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates a Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{Code: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var serr Error
	ok := asScriptError(err, &serr)
	return ok && serr.Code == c
}

// asScriptError is a tiny local errors.As since Error is a value type, not
// a pointer, and is never wrapped by this package.
func asScriptError(err error, target *Error) bool {
	serr, ok := err.(Error)
	if !ok {
		return false
	}
	*target = serr
	return true
}
