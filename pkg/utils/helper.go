package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseUUIDString parses a UUID from its string form
func ParseUUIDString(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// BookingCode derives the short code shown to customers from the booking id.
// Format: TV + last 8 hex chars of the UUID, uppercased.
func BookingCode(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "TV" + strings.ToUpper(hex[len(hex)-8:])
}

// NormalizeEmail lowercases and trims an email so uniqueness checks are
// case-insensitive everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
