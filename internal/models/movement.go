package models

import (
	"fmt"
	"time"
)

// Action is the cause of a stock change.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionSold   Action = "sold"
	ActionUpdate Action = "update"
)

// ParseAction validates a textual action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionAdd, ActionRemove, ActionSold, ActionUpdate:
		return a, nil
	}
	return "", fmt.Errorf("unknown stock action %q", s)
}

// Consumes reports whether the action counts toward usage.
func (a Action) Consumes() bool {
	return a == ActionRemove || a == ActionSold
}

// Movement is a ledger entry: one recorded change of a product's quantity.
// Entries are append-only.
type Movement struct {
	ID             int       `json:"id"`
	ProductID      int       `json:"product_id"`
	Action         Action    `json:"action"`
	Delta          int       `json:"delta"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Usage returns the magnitude the entry contributes to usage sums.
func (m Movement) Usage() int {
	if !m.Action.Consumes() {
		return 0
	}
	if m.Delta < 0 {
		return -m.Delta
	}
	return m.Delta
}
