package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCardinal(t *testing.T) {
	tests := []struct {
		name     string
		deg      *float64
		expected string
	}{
		{"north", ptr(0), "N"},
		{"north-northeast", ptr(22.5), "NNE"},
		{"east", ptr(90), "E"},
		{"rounds down", ptr(100), "E"},
		{"rounds up", ptr(102), "ESE"},
		{"south", ptr(180), "S"},
		{"west-northwest", ptr(292.5), "WNW"},
		{"north-northwest", ptr(337.5), "NNW"},
		{"wraps to north", ptr(350), "N"},
		{"just under 360", ptr(359.99), "N"},
		{"absent defaults to south", nil, "S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCardinal(tt.deg))
		})
	}
}

func TestHeightLabel(t *testing.T) {
	tests := []struct {
		name     string
		ft       float64
		expected string
	}{
		{"flat", 0.5, "FLAT"},
		{"default height", DefaultHeightFt, "1-2FT"},
		{"whole foot", 3, "3-4FT"},
		{"fractional", 4.8, "4-5FT"},
		{"big", 12.2, "12-13FT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HeightLabel(tt.ft))
		})
	}
}

func TestInArc(t *testing.T) {
	assert.True(t, inArc(ptr(285), 285, 315, true))
	assert.True(t, inArc(ptr(315), 285, 315, true))
	assert.False(t, inArc(ptr(315), 285, 315, false))
	assert.False(t, inArc(nil, 0, 360, true))
}
