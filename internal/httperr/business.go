package httperr

import "errors"

// BusinessError carries a guard-condition rejection code, e.g. "empty_email"
// or "slot_full". These block a transition; none are fatal.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
