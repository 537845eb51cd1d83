package common

import "fmt"

// TranslationError captures the §7 error taxonomy (parse error, unrecognized
// construct, type-resolution failure, I/O error) in the teacher's AzError
// shape: a stable code, a message, and optional additional context appended
// at the point of use.
type TranslationError struct {
	code           uint64
	msg            string
	additionalInfo string
}

func NewTranslationError(base TranslationError, additionalInfo string) TranslationError {
	base.additionalInfo = additionalInfo
	return base
}

func (e TranslationError) ErrorCode() uint64 {
	return e.code
}

func (e TranslationError) Equals(rhs TranslationError) bool {
	return e.code == rhs.code
}

func (e TranslationError) Error() string {
	return e.msg + e.additionalInfo
}

// ETranslationError enumerates the taxonomy's well-known members via the
// teacher's accessor-method pattern (see EnumHelper).
var ETranslationError TranslationError

func (TranslationError) ParseFailure() TranslationError {
	return TranslationError{1, "parse error: ", ""}
}

func (TranslationError) UnrecognizedConstruct() TranslationError {
	return TranslationError{2, "unrecognized construct: ", ""}
}

func (TranslationError) TypeResolutionFailure() TranslationError {
	return TranslationError{3, "type resolution failure: ", ""}
}

func (TranslationError) IOFailure() TranslationError {
	return TranslationError{4, "I/O error: ", ""}
}

func (e TranslationError) WithDetail(format string, args ...interface{}) TranslationError {
	return NewTranslationError(e, fmt.Sprintf(format, args...))
}
