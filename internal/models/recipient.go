package models

// Recipient is the counterparty of a payment item.
type Recipient struct {
	Base
	UserID  uint    `gorm:"not null;index" json:"user_id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Address *string `gorm:"size:500" json:"address"`
}

// AddressOrEmpty returns the address, or "" when none is stored.
func (r Recipient) AddressOrEmpty() string {
	if r.Address == nil {
		return ""
	}
	return *r.Address
}
