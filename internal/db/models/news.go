package models

import (
	"time"

	"gorm.io/gorm"
)

// News is a dated article. Content holds sanitised HTML.
type News struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Summary   string    `gorm:"size:1024;not null" json:"summary"`
	Image     string    `gorm:"size:1024;not null" json:"image"`
	Date      Date      `gorm:"index" json:"date"`
	CreatedAt time.Time `gorm:"<-:create;index" json:"createdAt"`
}

// BeforeCreate assigns the creation time and defaults the publication date to it.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = tx.NowFunc()
	}

	if n.Date.IsZero() {
		n.Date = DateOf(n.CreatedAt)
	}

	return nil
}

// Patch replaces the mutable fields with the ones of p.
// An empty date falls back to the creation date.
func (n *News) Patch(p *News) {
	n.Title = p.Title
	n.Content = p.Content
	n.Summary = p.Summary
	n.Image = p.Image
	n.Date = p.Date

	if n.Date.IsZero() {
		n.Date = DateOf(n.CreatedAt)
	}
}
