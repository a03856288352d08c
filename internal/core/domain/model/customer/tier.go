package customer

import (
	"ordering/internal/pkg/errs"
)

// Tier classifies a customer's purchase volume. The classification is
// maintained by the customer directory; the ordering core only reads it
// to derive the discount rate at order creation.
type Tier int

const (
	// Unknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	Unknown Tier = iota

	// Standard is the default classification with no discount.
	Standard

	// Large marks high-volume customers entitled to a fixed discount.
	Large
)

// String returns the lowercase name of the tier, used for persistence.
func (t Tier) String() string {
	switch t {
	case Standard:
		return "standard"
	case Large:
		return "large"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// IsValid reports whether the tier is one of the defined classifications.
func (t Tier) IsValid() bool {
	return t == Standard || t == Large
}

// TierFromString parses a persisted tier name.
// Returns an error for unrecognized names.
func TierFromString(s string) (Tier, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "large":
		return Large, nil
	default:
		return Unknown, errs.NewValueIsInvalidError("tier")
	}
}
