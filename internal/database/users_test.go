package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"deptsite/internal/config"
)

func setup() {
	os.Remove("test.db")
	Init(&config.Config{DBDSN: "test.db"})
}

func teardown() {
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
	os.Remove("test.db")
}

func TestEmailTaken(t *testing.T) {
	setup()
	defer teardown()

	user := CreateUser("Jordan Example", "Jordan@Dept.edu", "hash")
	assert.NotNil(t, user)

	assert.True(t, EmailTaken("jordan@dept.edu", 0), "match must be case-insensitive")
	assert.False(t, EmailTaken("jordan@dept.edu", user.ID), "the user's own row is excluded")
	assert.False(t, EmailTaken("nobody@dept.edu", 0))
}

func TestFindUserByEmail(t *testing.T) {
	setup()
	defer teardown()

	CreateUser("Jordan Example", "jordan@dept.edu", "hash")

	assert.NotNil(t, FindUserByEmail("JORDAN@DEPT.EDU"))
	assert.Nil(t, FindUserByEmail("missing@dept.edu"))
}

func TestUpdateUserLeavesPasswordAlone(t *testing.T) {
	setup()
	defer teardown()

	user := CreateUser("Jordan Example", "jordan@dept.edu", "original-hash")
	assert.True(t, UpdateUser(user.ID, "Jordan Renamed", "renamed@dept.edu"))

	reloaded := UserByID(user.ID)
	assert.Equal(t, "Jordan Renamed", reloaded.Name)
	assert.Equal(t, "renamed@dept.edu", reloaded.Email)
	assert.Equal(t, "original-hash", reloaded.PasswordHash)
}

func TestDeleteUser(t *testing.T) {
	setup()
	defer teardown()

	user := CreateUser("Jordan Example", "jordan@dept.edu", "hash")
	assert.True(t, DeleteUser(user.ID))
	assert.Nil(t, UserByID(user.ID))
	assert.False(t, DeleteUser(user.ID), "deleting a missing row reports failure")
}

func TestSeedingIsIdempotent(t *testing.T) {
	setup()
	defer teardown()

	// a second Init against the same store must not duplicate seeds
	Init(&config.Config{DBDSN: "test.db"})

	var admins int64
	DB.Table("users").Where("role = ?", "admin").Count(&admins)
	assert.Equal(t, int64(1), admins)

	var faculty int64
	DB.Table("faculty_members").Count(&faculty)
	assert.Equal(t, int64(5), faculty)
}
