package errors

import "github.com/hanifmaulana/quotedesk/constant"

// CustomError carries a domain error type whose message, code and HTTP
// status come from the constant maps. Compared by code, not identity.
type CustomError struct {
	errType constant.ErrorType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{errType: errorType}
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
