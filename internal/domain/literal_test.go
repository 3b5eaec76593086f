package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snare.dev/pkg/snare/internal/domain"
)

func TestNormalizeNumericLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.0m", "0"},
		{"x = 1_000", "x = 1000"},
		{"1'000'000", "1000000"},
		{"0xFF", "0xff"},
		{"0b1010", "0b1010"},
		{"1.50", "1.5"},
		{"2.0f", "2"},
		{"10UL", "10"},
		{"3ll", "3"},
		{"1e10", "1e10"},
		{"3.140E-2", "3.14e-2"},
		{"x1 + 2", "x1 + 2"},
		{"v2.Call(3.0)", "v2.Call(3)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeNumericLiterals(tt.in))
		})
	}
}

func TestNumericallyEquivalent(t *testing.T) {
	assert.True(t, domain.NumericallyEquivalent("0", "0.0m"))
	assert.True(t, domain.NumericallyEquivalent("return 1_000", "return 1000"))
	assert.True(t, domain.NumericallyEquivalent("mask & 0xFF", "mask & 0xff"))
	assert.False(t, domain.NumericallyEquivalent("x := 1", "x := 2"))
	assert.False(t, domain.NumericallyEquivalent("a + b", "a - b"))
}
