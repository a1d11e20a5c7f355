package errors

// HttpError carries an HTTP status together with a user-facing message.
// Message goes to the client, Err and Context go to the logs only.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
