package game

import "math"

const (
	// MaxWaterLevel is the first level at which the island is lost
	MaxWaterLevel WaterLevel = 9

	// MaxDrawAmount is the flood draw at a deadly water level
	MaxDrawAmount = math.MaxUint8
)

// WaterLevel is the position of the marker on the water meter
type WaterLevel int

// DrawAmount is the number of flood cards drawn at the end of each turn
func (w WaterLevel) DrawAmount() int {
	switch {
	case w <= 1:
		return 2
	case w <= 4:
		return 3
	case w <= 6:
		return 4
	case w <= 8:
		return 5
	default:
		return MaxDrawAmount
	}
}

// IsDeadly reports whether the marker reached the skull
func (w WaterLevel) IsDeadly() bool {
	return w >= MaxWaterLevel
}

// Rise moves the marker up one step
func (w WaterLevel) Rise() WaterLevel {
	return w + 1
}
