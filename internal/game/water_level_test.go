package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaterLevel_DrawAmount(t *testing.T) {
	tests := []struct {
		level    WaterLevel
		expected int
	}{
		{0, 2}, {1, 2},
		{2, 3}, {3, 3}, {4, 3},
		{5, 4}, {6, 4},
		{7, 5}, {8, 5},
		{9, MaxDrawAmount}, {12, MaxDrawAmount},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.DrawAmount(), "level %d", tt.level)
	}
}

func TestWaterLevel_Rise(t *testing.T) {
	level := WaterLevel(7)
	assert.False(t, level.IsDeadly())

	level = level.Rise()
	assert.Equal(t, WaterLevel(8), level)
	assert.False(t, level.IsDeadly())

	level = level.Rise()
	assert.True(t, level.IsDeadly())
	assert.Equal(t, MaxWaterLevel, level)
}
