package models

import "time"

// Income represents a single income event, such as a paycheck. The
// interval between one income's date_received and the next income's
// date_received is the expense period owned by this income.
type Income struct {
	Base
	ProfileID    uint      `gorm:"not null;index" json:"profile_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	DateReceived time.Time `gorm:"not null;index" json:"date_received"`
}

// OwnerID implements Owned.
func (i Income) OwnerID() uint { return i.ProfileID }

// AdditionalIncome is an ad-hoc income record, optionally linked to the
// Income event whose period it supplements.
type AdditionalIncome struct {
	Base
	ProfileID   uint    `gorm:"not null;index" json:"profile_id"`
	IncomeID    *uint   `gorm:"index" json:"income_id,omitempty"`
	Description string  `gorm:"not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
}

// OwnerID implements Owned.
func (a AdditionalIncome) OwnerID() uint { return a.ProfileID }
