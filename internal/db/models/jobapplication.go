package models

import "time"

// JobApplication is a careers form submission. Applications are never updated.
type JobApplication struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Position     string    `gorm:"size:255;not null" json:"position"`
	PortfolioURL string    `gorm:"column:portfolio_url;size:1024" json:"portfolioUrl"`
	CoverLetter  string    `gorm:"type:text" json:"coverLetter"`
	CreatedAt    time.Time `gorm:"<-:create;index" json:"createdAt"`
}
