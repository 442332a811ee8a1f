package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("ana@example.com"))
	assert.True(t, validEmail("  ana@example.com  "))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("ana@"))
}

func TestPercentageInRange(t *testing.T) {
	assert.True(t, percentageInRange(0))
	assert.True(t, percentageInRange(100))
	assert.False(t, percentageInRange(-1))
	assert.False(t, percentageInRange(101))
}

func TestValidDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, validDateRange(start, end))
	assert.True(t, validDateRange(start, start))
	assert.False(t, validDateRange(end, start))
	assert.False(t, validDateRange(time.Time{}, end))
	assert.False(t, validDateRange(start, time.Time{}))
}
