package entities

import "time"

// Setting keys used by the core
const (
	SettingWithdrawalEnabled = "withdrawalEnabled"
)

// Setting is an admin toggle, upserted by key
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
