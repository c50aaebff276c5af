package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsevbo/MBP-BookingService/internal/domain"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"first.last@sub.example.org",
		"a+tag@example.co",
	}
	for _, addr := range valid {
		assert.True(t, domain.IsValidEmail(addr), addr)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"ana@",
		"Ana <ana@example.com>",
		"ana example@example.com",
	}
	for _, addr := range invalid {
		assert.False(t, domain.IsValidEmail(addr), addr)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := domain.ValidationErrors{"Name is required.", "Invalid email address."}
	assert.Contains(t, errs.Error(), "Name is required.")
	assert.Contains(t, errs.Error(), "Invalid email address.")
}
