package srvcerror

import "net/http"

// FieldViolation describes a single invalid field in a request payload.
// Field is a path into the payload, e.g. "round" or "attachments[2].url".
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	errorCode string
	msgToUser string // public
	dbgInfo   error  // private, for logs only

	fields []FieldViolation // optional per-field breakdown

	httpStatus int
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfo
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfo = err
	return e
}

func (e *Error) Fields() []FieldViolation {
	return e.fields
}

func (e *Error) SetFields(fields []FieldViolation) *Error {
	e.fields = fields
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
