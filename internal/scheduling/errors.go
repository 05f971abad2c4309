package scheduling

// ErrorKind classifies an engine failure so the transport layer can pick a
// response status without parsing messages.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
)

// Error is a classified, user-presentable engine failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func newNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func newConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}
