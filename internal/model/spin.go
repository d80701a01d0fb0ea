package model

// Wheel outcomes that award a point to the spinner's team
const (
	OutcomeVerse       = 2 // +1 and a verse from the pool
	OutcomeSilentPoint = 6 // +1, no message
)

// SpinResult is the outcome of a single wheel spin
type SpinResult struct {
	Outcome int
	// Verse is set only for OutcomeVerse
	Verse string
	// TeamScore is the spinner's team score after the spin
	TeamScore int
}

// AwardsPoint reports whether the result changed the team score
func (r SpinResult) AwardsPoint() bool {
	return r.Outcome == OutcomeVerse || r.Outcome == OutcomeSilentPoint
}
