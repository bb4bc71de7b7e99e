package database

import (
	"errors"
	"log"

	"deptsite/internal/models"

	"gorm.io/gorm"
)

func ListFaculty() []models.FacultyMember {
	var members []models.FacultyMember
	if err := DB.Order("id asc").Find(&members).Error; err != nil {
		log.Printf("db error in ListFaculty: %v", err)
		return nil
	}
	return members
}

// FacultyBySlug returns nil when no member matches.
func FacultyBySlug(slug string) *models.FacultyMember {
	var member models.FacultyMember
	if err := DB.Where("slug = ?", slug).First(&member).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in FacultyBySlug: %v", err)
		}
		return nil
	}
	return &member
}
