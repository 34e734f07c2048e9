package entity

import (
	"gorm.io/gorm"
)

// Notification carries template keys plus a params bag, not literal
// text; the client resolves TitleKey/MessageKey against its own
// translations.
type Notification struct {
	gorm.Model
	RecipientID uint   `gorm:"index;not null" json:"recipientId"`
	TitleKey    string `gorm:"not null" json:"titleKey"`
	MessageKey  string `gorm:"not null" json:"messageKey"`
	Params      string `json:"params"` // JSON-encoded interpolation values
	Link        string `json:"link"`
	IsRead      bool   `gorm:"default:false" json:"isRead"`
}
