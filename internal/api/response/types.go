package response

import "github.com/ostapdev/teamwheel/internal/model"

// Spin is the response for the spin endpoint. Message carries the verse
// and is present only for the verse outcome.
type Spin struct {
	Result  int    `json:"result"`
	Message string `json:"message,omitempty"`
}

// SpinFromResult converts a model.SpinResult
func SpinFromResult(r *model.SpinResult) Spin {
	return Spin{
		Result:  r.Outcome,
		Message: r.Verse,
	}
}

// Score is the response for score adjustments
type Score struct {
	NewScore int `json:"new_score"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
