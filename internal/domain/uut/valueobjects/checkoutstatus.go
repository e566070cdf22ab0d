package valueobjects

import "errors"

// CheckoutStatus tracks whether a registered unit has left the lab.
type CheckoutStatus string

const (
	CheckoutNone    CheckoutStatus = "in_lab"
	CheckoutPartial CheckoutStatus = "partially_out"
	CheckoutFull    CheckoutStatus = "fully_out"
)

func NewCheckoutStatus(s string) (CheckoutStatus, error) {
	status := CheckoutStatus(s)
	if !status.IsValid() {
		return "", errInvalidCheckoutStatus
	}
	return status, nil
}

func (s CheckoutStatus) IsValid() bool {
	switch s {
	case CheckoutNone, CheckoutPartial, CheckoutFull:
		return true
	}
	return false
}

func (s CheckoutStatus) String() string {
	return string(s)
}

var errInvalidCheckoutStatus = errors.New("invalid checkout status")
