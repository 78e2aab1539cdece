package models

import "time"

// Skill is a user-authored offer to teach a subject, priced in hours.
// Rows are owned by exactly one user and cascade-delete with them.
type Skill struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:255;not null" json:"category"`
	Hours       float64   `gorm:"type:decimal(5,2);not null" json:"hours"`
	Views       int       `gorm:"not null;default:0" json:"views"`
	Requests    int       `gorm:"not null;default:0" json:"requests"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// SkillListing is a skill joined with its owner's public profile, the
// shape served by the public browse endpoints.
type SkillListing struct {
	Skill
	Owner PublicUser `json:"user"`
}
