package db_models

import (
	"darkshield/pkg/utils"
)

// Message is one piece of user feedback. Ids come from a dedicated
// sequence that starts at 10101; the sequence is created during migration
// before this table is.
type Message struct {
	ID      int        `gorm:"primaryKey;default:nextval('feedback_sequence')" json:"id"`
	Message string     `gorm:"type:text" json:"message"`
	URL     string     `gorm:"type:text" json:"url"`
	Issue   string     `gorm:"type:text" json:"issue"`
	Mail    string     `gorm:"type:text" json:"mail"`
	Date    utils.Date `gorm:"type:date" json:"date"`
}

func (Message) TableName() string {
	return "messages"
}
