package models

// FacultyMember is reference data: seeded once at migration, read-only
// afterwards, looked up by slug.
type FacultyMember struct {
	ID         uint   `gorm:"primaryKey"`
	Slug       string `gorm:"uniqueIndex;size:100;not null"`
	Name       string `gorm:"size:255;not null"`
	Department string `gorm:"size:100"`
	Title      string `gorm:"size:100"`
}
