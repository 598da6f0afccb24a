package errors

import "fmt"

// ErrSeperator is used to seperate the message from the cause in the error message
const ErrSeperator = " -- "

// Error provides a string based error type allowing the definition of const errors in packages
type Error string

func (s Error) Error() string {
	return string(s)
}

// Wrap will add the provided error as a cause for this Error and return the wrapped error
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeperator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Unwrap() error {
	return w.cause
}
