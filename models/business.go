package models

import "time"

// Business is a registered entity identified by its wallet address. The
// owner address uniquely names at most one business.
type Business struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	OwnerAddress string `gorm:"not null;uniqueIndex" json:"ownerAddress"`

	Invoices []Invoice `gorm:"foreignKey:BusinessID" json:"Invoices"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
