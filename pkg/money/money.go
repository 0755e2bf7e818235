// Package money holds fare amounts as integer paise (minor units). Keeping
// money out of floating point guarantees that a refund of q × unit_fare is
// exactly the amount paid, with no representation drift.
package money

import "fmt"

const PaisePerRupee = 100

// FromRupees converts a whole-rupee amount to paise.
func FromRupees(rupees int64) int64 {
	return rupees * PaisePerRupee
}

// Format renders paise as a rupee string, e.g. 125050 -> "₹1250.50".
func Format(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, paise/PaisePerRupee, paise%PaisePerRupee)
}
