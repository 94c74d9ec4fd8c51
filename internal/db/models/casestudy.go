package models

import "time"

// CaseStudy is a completed project shown in the portfolio.
type CaseStudy struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Image          string    `gorm:"size:1024;not null" json:"image"`
	Division       string    `gorm:"size:100;not null;index" json:"division"`
	Client         string    `gorm:"size:255" json:"client"`
	Location       string    `gorm:"size:255" json:"location"`
	CompletionDate string    `gorm:"size:50" json:"completionDate"`
	CreatedAt      time.Time `gorm:"<-:create;index" json:"createdAt"`
}

// Patch replaces the mutable fields with the ones of p.
func (c *CaseStudy) Patch(p *CaseStudy) {
	c.Title = p.Title
	c.Description = p.Description
	c.Image = p.Image
	c.Division = p.Division
	c.Client = p.Client
	c.Location = p.Location
	c.CompletionDate = p.CompletionDate
}
