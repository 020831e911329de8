package model

// OptionKind names one of the three payment option collections. The value
// doubles as the REST resource name.
type OptionKind string

const (
	// OptionPaymentMethod is the payment methods collection.
	OptionPaymentMethod OptionKind = "payment-methods"
	// OptionBank is the banks collection.
	OptionBank OptionKind = "banks"
	// OptionUpiApp is the UPI apps collection.
	OptionUpiApp OptionKind = "upi-apps"
)

// Valid reports whether k names a known option collection.
func (k OptionKind) Valid() bool {
	switch k {
	case OptionPaymentMethod, OptionBank, OptionUpiApp:
		return true
	}
	return false
}

// PaymentOption is a named option list entry shared by payment methods,
// banks, and UPI apps. Options support add and delete only, no update.
type PaymentOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
