package grammar

type MalformedProductionError struct {
	message string
}

func newMalformedProductionError(message string) *MalformedProductionError {
	return &MalformedProductionError{
		message: message,
	}
}

func (e *MalformedProductionError) Error() string {
	return e.message
}

var (
	malErrInvalidName = newMalformedProductionError("invalid nonterminal name")
	malErrInvalidTerm = newMalformedProductionError("invalid production term")
)

// InternalInconsistencyError reports a broken invariant inside a conversion
// or simplification.
type InternalInconsistencyError struct {
	message string
}

func newInternalInconsistencyError(message string) *InternalInconsistencyError {
	return &InternalInconsistencyError{
		message: message,
	}
}

func (e *InternalInconsistencyError) Error() string {
	return e.message
}
