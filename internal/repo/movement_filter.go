package repo

import "time"

// MovementFilter narrows a ledger page. Since is inclusive, Until exclusive.
type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

const defaultLimit = 100
