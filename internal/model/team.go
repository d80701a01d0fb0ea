package model

import "fmt"

// DefaultTeamIDs are the three competing teams offered at registration
var DefaultTeamIDs = []TeamID{"1", "2", "3"}

// TeamScore holds a team's aggregate score and display name
type TeamScore struct {
	TeamID TeamID `json:"-"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// NewTeamScore creates a zero-score entry with the default display name
func NewTeamScore(teamID TeamID) *TeamScore {
	return &TeamScore{
		TeamID: teamID,
		Name:   DefaultTeamName(teamID),
		Score:  0,
	}
}

// DefaultTeamName returns the display name used for lazily-created teams
func DefaultTeamName(teamID TeamID) string {
	return fmt.Sprintf("Команда %s", teamID)
}
