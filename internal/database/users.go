package database

import (
	"errors"
	"log"

	"deptsite/internal/models"

	"gorm.io/gorm"
)

// User helpers swallow storage errors: they log the real cause and hand the
// handler a nil/false sentinel, so every call site has a single
// "did it work" check. Only bugs are allowed to propagate.

// FindUserByEmail matches case-insensitively. Returns nil when no user
// exists or the query fails.
func FindUserByEmail(email string) *models.User {
	var user models.User
	err := DB.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in FindUserByEmail: %v", err)
		}
		return nil
	}
	return &user
}

// EmailTaken reports whether another user (excluding excludeID, pass 0 to
// exclude nobody) already holds the email, case-insensitively.
func EmailTaken(email string, excludeID uint) bool {
	var count int64
	q := DB.Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		log.Printf("db error in EmailTaken: %v", err)
		// treat an unreadable store as a conflict rather than let a
		// duplicate through
		return true
	}
	return count > 0
}

func CreateUser(name, email, passwordHash string) *models.User {
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("db error in CreateUser: %v", err)
		return nil
	}
	return &user
}

func UserByID(id uint) *models.User {
	var user models.User
	if err := DB.First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("db error in UserByID: %v", err)
		}
		return nil
	}
	return &user
}

func ListUsers() []models.User {
	var users []models.User
	if err := DB.Order("id asc").Find(&users).Error; err != nil {
		log.Printf("db error in ListUsers: %v", err)
		return nil
	}
	return users
}

// UpdateUser changes name and email only; the password hash is never
// touched on this path.
func UpdateUser(id uint, name, email string) bool {
	err := DB.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email}).Error
	if err != nil {
		log.Printf("db error in UpdateUser: %v", err)
		return false
	}
	return true
}

func DeleteUser(id uint) bool {
	res := DB.Delete(&models.User{}, id)
	if res.Error != nil {
		log.Printf("db error in DeleteUser: %v", res.Error)
		return false
	}
	return res.RowsAffected > 0
}
