package utils

const (
	// Split types
	SplitTypeEqual      = "equal"
	SplitTypePercentage = "percentage"
	SplitTypeExact      = "exact"

	// ID and code generation
	IDCharset   = "abcdefghijklmnopqrstuvwxyz0123456789"
	CodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	IDLength    = 20
	CodeLength  = 6

	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrTripNotFound     = "Trip not found"
	ErrExpenseNotFound  = "Expense not found"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"
	ErrCodeRequired     = "Code is required"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)

// ValidSplitType reports whether t is one of the supported split types.
func ValidSplitType(t string) bool {
	switch t {
	case SplitTypeEqual, SplitTypePercentage, SplitTypeExact:
		return true
	}
	return false
}
