package database

import (
	"log"

	"deptsite/internal/models"
)

// SaveContactSubmission returns nil when the insert fails.
func SaveContactSubmission(subject, message string) *models.ContactSubmission {
	sub := models.ContactSubmission{
		Subject: subject,
		Message: message,
	}
	if err := DB.Create(&sub).Error; err != nil {
		log.Printf("db error in SaveContactSubmission: %v", err)
		return nil
	}
	return &sub
}

func ListContactSubmissions() []models.ContactSubmission {
	var subs []models.ContactSubmission
	if err := DB.Order("created_at desc").Find(&subs).Error; err != nil {
		log.Printf("db error in ListContactSubmissions: %v", err)
		return nil
	}
	return subs
}
