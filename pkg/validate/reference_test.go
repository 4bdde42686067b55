package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChecksummedReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		valid     bool
	}{
		{name: "Valid card number", reference: "79927398713", valid: true},
		{name: "Wrong check digit", reference: "79927398710", valid: false},
		{name: "Non-numeric", reference: "7992739871a", valid: false},
		{name: "Empty", reference: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsChecksummedReference(tt.reference))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("123456"))
	assert.False(t, IsNumeric("123a456"))
	assert.False(t, IsNumeric(""))
}
