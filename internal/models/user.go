package models

import (
	"time"
)

// User is a marketplace account. The password hash never leaves the
// server; everything else is part of the profile returned to clients.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Avatar       string    `gorm:"type:text" json:"avatar"`
	TimeCredits  int       `gorm:"not null;default:10" json:"timeCredits"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Role         string    `gorm:"size:255" json:"role"`
	Location     string    `gorm:"size:255" json:"location"`
	Website      string    `gorm:"size:255" json:"website"`
	IsOnline     bool      `gorm:"not null;default:false" json:"is_online"`
	LastSeen     time.Time `gorm:"autoCreateTime" json:"last_seen"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// PublicUser is the owner view attached to browsable skill listings.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	IsOnline bool   `json:"is_online"`
}

// Public returns the profile fields safe to show to other users.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
		IsOnline: u.IsOnline,
	}
}
