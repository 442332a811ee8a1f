package services

import (
	"net/mail"
	"strings"
	"time"
)

// Validation runs before anything touches the gateway; a rejected input
// never produces a query.

func validEmail(raw string) bool {
	email := strings.TrimSpace(raw)
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func requiredText(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

func percentageInRange(value int) bool {
	return value >= 0 && value <= 100
}

func validDateRange(start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !end.Before(start)
}
