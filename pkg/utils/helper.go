package utils

import (
	"strconv"
)

// ParseFloat converts string to float64 with default value
func ParseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseFloatPtr converts string to *float64, nil when absent or malformed
func ParseFloatPtr(value string) *float64 {
	if value == "" {
		return nil
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &result
}

// ParseBool converts string to bool, false unless the value is "true"
func ParseBool(value string) bool {
	return value == "true"
}

// StringPtr returns nil for the empty string
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
