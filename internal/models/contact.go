package models

import "time"

// ContactSubmission is insert-only: the site never edits or removes what
// visitors send in.
type ContactSubmission struct {
	ID        uint   `gorm:"primaryKey"`
	Subject   string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
