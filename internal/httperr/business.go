package httperr

import "errors"

type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindUnauthenticated
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrInvalid(code string) error {
	return BusinessError{Kind: KindInvalidArgument, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

// KindOf devolve 0 quando err não é um BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}

func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
