package models

import "server/db"

// Message is a customer inquiry submitted through the public contact form.
type Message struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
	Email     string `gorm:"type:varchar(200);not null" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	Service   string `gorm:"type:varchar(200);not null" json:"service"`
	Message   string `gorm:"type:text;not null" json:"message"`
	CreatedAt int64  `gorm:"index:message_created" json:"createdAt"`
}

func MessageList() ([]Message, error) {
	messages := []Message{}
	err := db.Instance.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}
