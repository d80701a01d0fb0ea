package model

import "time"

// Action kinds recorded in the audit log
const (
	ActionSpin        = "spin"
	ActionScan        = "scan"
	ActionAdjustScore = "adjust_score"
	ActionLogin       = "login"
	ActionRegister    = "register"
	ActionLogout      = "logout"
)

// ActionLogEntry is an append-only record of a user or system action.
// Username is a snapshot; entries outlive the account they reference.
type ActionLogEntry struct {
	ID        string
	Username  string
	Action    string
	Result    string
	CreatedAt time.Time
}
