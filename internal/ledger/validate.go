package ledger

import "strings"

const (
	mobileLen  = 10
	aadhaarLen = 12
	panLen     = 10
	pinLen     = 4
	minAge     = 18
)

// validateCreate checks every identity field of a new account before any
// mutation happens. The first violation wins, in prompt order.
func validateCreate(p CreateParams) error {
	if strings.TrimSpace(p.Name) == "" {
		return FieldError{Field: "name", Reason: "must not be empty"}
	}
	if p.Age < minAge {
		return FieldError{Field: "age", Reason: "must be 18 or older"}
	}
	if !allDigits(p.Mobile) || len(p.Mobile) != mobileLen {
		return FieldError{Field: "mobile", Reason: "must be exactly 10 digits"}
	}
	if !allDigits(p.Aadhaar) || len(p.Aadhaar) != aadhaarLen {
		return FieldError{Field: "aadhaar", Reason: "must be exactly 12 digits"}
	}
	if len(p.PAN) != panLen {
		return FieldError{Field: "pan", Reason: "must be exactly 10 characters"}
	}
	if !validPinFormat(p.Pin) {
		return ErrInvalidPin
	}
	return nil
}

// validPinFormat reports whether pin is exactly 4 numeric digits.
func validPinFormat(pin string) bool {
	return len(pin) == pinLen && allDigits(pin)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
