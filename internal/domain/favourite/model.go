package favourite

import (
	"fmt"
	"strings"
)

// DefaultUserID is used when a request does not name a user.
const DefaultUserID int64 = 1

// Team is a favourited team, keyed by its display name.
type Team struct {
	UserID   int64
	TeamName string
}

func (t Team) Validate() error {
	if t.UserID <= 0 {
		return fmt.Errorf("user id must be positive")
	}
	if strings.TrimSpace(t.TeamName) == "" {
		return fmt.Errorf("teamName is required")
	}
	return nil
}
