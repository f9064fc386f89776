package pkg

// AppError is the error shape returned by the HTTP adapters.
//
// Cause is kept for logging only and never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     map[string]string
	Cause      error
}

// HTTPError is the JSON body of an error response.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError carries per-field messages for inline display.
func NewValidationError(code, message string, fields map[string]string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Fields: fields, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
