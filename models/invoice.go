package models

import "time"

// Invoice is a payable obligation owned by a Business. Amount is in integer
// minor units with no decimal scaling, matching the on-chain representation.
// IsPaid is only ever flipped out-of-band by payment confirmation; no API
// operation touches it after creation.
type Invoice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Amount     int64     `gorm:"not null" json:"amount"`
	DueDate    time.Time `gorm:"not null" json:"dueDate"`
	IsPaid     bool      `gorm:"default:false" json:"isPaid"`
	TokenURI   string    `json:"tokenURI,omitempty"`
	BusinessID uint      `gorm:"index;not null" json:"businessId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
