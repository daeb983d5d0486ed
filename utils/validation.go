package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidatePercentage checks that a percentage is within 0-100
func ValidatePercentage(value float64, fieldName string) error {
	if value < 0 || value > 100 {
		return NewValidationError(fmt.Sprintf("%s must be between 0 and 100", fieldName))
	}
	return nil
}

// ValidateParticipantNames validates that all participant names are not empty
func ValidateParticipantNames(participants []string) error {
	for i, participant := range participants {
		if strings.TrimSpace(participant) == "" {
			return NewValidationError(fmt.Sprintf("participant %d name cannot be empty", i+1))
		}
	}
	return nil
}
