package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrInvalidToken     = newSyntaxError("invalid token")
	synErrNoProductionName = newSyntaxError("a production name is missing")
	synErrNoArrow          = newSyntaxError("an arrow must precede production terms")
	synErrDupArrow         = newSyntaxError("an arrow is allowed only once per production line")
)
