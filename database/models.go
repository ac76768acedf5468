package database

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// User represents a registered user.
// The password is stored as-is, there is no authentication system on top of it.
type User struct {
	ID        uint   `gorm:"primarykey"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

// Community represents one stored form submission: the submitted metadata,
// the original text and the generated rename report. Records are immutable
// once created and are never deleted.
type Community struct {
	ID                uint   `gorm:"primarykey"`
	Rename            string `gorm:"not null"`
	RobuxFund         string `gorm:"not null"`
	CommunitiesMember string `gorm:"not null"`
	OwnerUsername     string `gorm:"not null"`
	OriginalFileName  string
	DiscordWebhook    string
	OriginalContent   string `gorm:"not null"`
	GeneratedContent  string `gorm:"not null"`
	CreatedAt         time.Time
}
