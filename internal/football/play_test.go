package football_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xtding233/gridiron-sim/internal/football"
)

func TestSituationClockWindows(t *testing.T) {
	tests := []struct {
		quarter, remaining int
		twoMinute, oob     bool
	}{
		{1, 60, false, false},
		{2, 121, false, false},
		{2, 120, true, true},
		{3, 30, false, false},
		{4, 400, false, false},
		{4, 300, false, true},
		{4, 90, true, true},
		{5, 250, false, true},
	}
	for _, tt := range tests {
		s := football.Situation{Down: 1, Distance: 10, FieldPosition: 25, Quarter: tt.quarter, TimeRemaining: tt.remaining}
		assert.Equal(t, tt.twoMinute, s.IsTwoMinute(), "q%d %ds", tt.quarter, tt.remaining)
		assert.Equal(t, tt.oob, s.OutOfBoundsStopsClock(), "q%d %ds", tt.quarter, tt.remaining)
	}
}
