package defs

// GambleOutcome — сектор колеса удачи.
type GambleOutcome string

const (
	GambleDouble  GambleOutcome = "DOUBLE"
	GambleHalf    GambleOutcome = "HALF"
	GambleNothing GambleOutcome = "NOTHING"
	GambleFree    GambleOutcome = "FREE"
	GambleMax     GambleOutcome = "MAX"
)

// WheelSector — сектор колеса и его относительный вес.
type WheelSector struct {
	Outcome GambleOutcome
	Weight  int
}

// GambleWheel — сектора колеса в порядке отрисовки.
var GambleWheel = []WheelSector{
	{Outcome: GambleDouble, Weight: 20},
	{Outcome: GambleHalf, Weight: 30},
	{Outcome: GambleNothing, Weight: 30},
	{Outcome: GambleFree, Weight: 15},
	{Outcome: GambleMax, Weight: 5},
}
