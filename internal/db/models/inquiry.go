package models

import "time"

// Inquiry is a contact form submission. Inquiries are never updated.
type Inquiry struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Division  string    `gorm:"size:100;index" json:"division"`
	CreatedAt time.Time `gorm:"<-:create;index" json:"createdAt"`
}
