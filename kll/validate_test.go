package kll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFraction(t *testing.T) {
	tests := []struct {
		name  string
		f     float64
		valid bool
	}{
		{"zero", 0, true},
		{"one", 1, true},
		{"median", 0.5, true},
		{"near zero", 1e-12, true},
		{"near one", 1 - 1e-12, true},
		{"negative", -0.1, false},
		{"above one", 1.1, false},
		{"NaN", math.NaN(), false},
		{"+Inf", math.Inf(1), false},
		{"-Inf", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validFraction(tt.f))
		})
	}
}

func TestValidK(t *testing.T) {
	tests := []struct {
		name  string
		k     uint16
		valid bool
	}{
		{"zero", 0, false},
		{"below minimum", 7, false},
		{"minimum", 8, true},
		{"default", DefaultK, true},
		{"maximum", math.MaxUint16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validK(tt.k))
		})
	}
}
