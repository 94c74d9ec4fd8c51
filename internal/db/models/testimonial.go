package models

import "time"

// Testimonial is a customer quote attributed to a division.
type Testimonial struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Role      string    `gorm:"size:255;not null" json:"role"`
	Division  string    `gorm:"size:100;not null;index" json:"division"`
	CreatedAt time.Time `gorm:"<-:create;index" json:"createdAt"`
}

// Patch replaces the mutable fields with the ones of p.
func (t *Testimonial) Patch(p *Testimonial) {
	t.Content = p.Content
	t.Author = p.Author
	t.Role = p.Role
	t.Division = p.Division
}
