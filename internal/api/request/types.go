package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleID accepts either a JSON string or a JSON number, so callers
// may send {"team_id": "1"} or {"team_id": 1} interchangeably.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexibleID(str)
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a string or integer: %w", err)
	}
	*f = FlexibleID(strconv.FormatInt(n, 10))
	return nil
}

// UpdateScoreRequest is the request body for manual score adjustments.
// Delta is a pointer so a missing field is distinguishable from zero.
type UpdateScoreRequest struct {
	TeamID FlexibleID `json:"team_id"`
	Delta  *int       `json:"delta"`
}
