package model

// TeamID identifies one of the competing teams (a short string key, e.g. "1")
type TeamID string

// Account represents a registered participant
type Account struct {
	Username string `json:"username"`
	// Password is stored and compared verbatim; see the security review
	// notes in DESIGN.md
	Password     string   `json:"password"`
	Team         TeamID   `json:"team"`
	Name         string   `json:"name,omitempty"`
	IsAdmin      bool     `json:"is_admin,omitempty"`
	LastSpinDate string   `json:"last_spin,omitempty"` // "YYYY-MM-DD" or empty
	UsedQRCodes  []string `json:"used_qrs,omitempty"`
}

// DisplayName returns the account's display name, falling back to the username
func (a *Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// HasUsedQR reports whether the account has already redeemed the given code
func (a *Account) HasUsedQR(qrID string) bool {
	for _, used := range a.UsedQRCodes {
		if used == qrID {
			return true
		}
	}
	return false
}
