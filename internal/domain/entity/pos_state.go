package entity

import "time"

// PosState is one row of the per-user POS key/value store. Keys look like
// pos_{userID}_{name}; values are JSON. Absence of a key means "no state",
// so rows are deleted rather than zeroed.
type PosState struct {
	Key       string    `gorm:"primaryKey;size:512" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the PosState model
func (PosState) TableName() string {
	return "pos_state"
}
