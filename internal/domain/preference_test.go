package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindMatchesPref(t *testing.T) {
	tests := []struct {
		name       string
		windType   WindType
		preference string
		expected   bool
	}{
		{"offshore matches OFFSHORE", WindOffshore, "OFFSHORE", true},
		{"side-offshore matches OFFSHORE", WindSideOffshore, "OFFSHORE", true},
		{"cross rejected by OFFSHORE", WindCross, "OFFSHORE", false},
		{"onshore rejected by OFFSHORE", WindOnshore, "OFFSHORE", false},
		{"side-offshore matches offshore with direction", WindSideOffshore, "offshore, wnw", true},
		{"cross rejected by offshore with direction", WindCross, "offshore, wnw", false},
		{"upper-case wind type", "OFFSHORE", "offshore", true},
		{"any accepts onshore", WindOnshore, "ANY", true},
		{"all accepts cross", WindCross, "All", true},
		{"absent wind never matches any", "", "ANY", false},
		{"absent wind never matches offshore", "", "OFFSHORE", false},
		{"exact cross", WindCross, "cross", true},
		{"preference contains wind type", WindCross, "cross or light", true},
		{"wind type contains preference", WindSideOffshore, "side", true},
		{"unrelated", WindOnshore, "cross", false},
		{"padded wind type", "offshore ", "OFFSHORE", true},
		{"padded cross under cross", " Cross", "cross", true},
		{"blank wind never matches any", "  ", "ANY", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindMatchesPref(tt.windType, tt.preference))
		})
	}
}
