package models

import (
	"time"

	"gorm.io/gorm"
)

// Project category codes with their human readable names.
const (
	CategoryArts       = "ART"
	CategoryEducation  = "EDN"
	CategoryFashion    = "FSN"
	CategoryFilm       = "FLM"
	CategoryFinance    = "FNC"
	CategoryMedicine   = "MCN"
	CategorySoftware   = "SFW"
	CategorySport      = "SPT"
	CategoryTechnology = "TEC"
)

var categoryNames = map[string]string{
	CategoryArts:       "Arts",
	CategoryEducation:  "Education",
	CategoryFashion:    "Fashion",
	CategoryFilm:       "Film",
	CategoryFinance:    "Finance",
	CategoryMedicine:   "Medicine",
	CategorySoftware:   "Software",
	CategorySport:      "Sport",
	CategoryTechnology: "Technology",
}

// CategoryName returns the display name for a category code, or "" for an
// unknown code.
func CategoryName(code string) string { return categoryNames[code] }

// ValidCategory reports whether code is one of the known category codes.
func ValidCategory(code string) bool {
	_, ok := categoryNames[code]
	return ok
}

// Project represents a student project advertising roles to fill.
// The owner is set at creation time and never reassigned.
type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:150;not null" json:"title"`
	Description  string         `gorm:"size:3000" json:"description"`
	Category     string         `gorm:"size:3;not null" json:"category"`
	CategoryName string         `gorm:"-" json:"category_name"`
	OwnerID      uint           `gorm:"index;not null" json:"owner_id"`
	Owner        *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	OwnerRole    string         `gorm:"size:40" json:"owner_role"`
	DesiredRoles StringList     `gorm:"type:text" json:"desired_roles"` // at most 10 entries
	TeamMembers  []Membership   `gorm:"foreignKey:ProjectID" json:"team_members"`
	CreatedAt    time.Time      `json:"date_created"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

// AfterFind fills the display name exposed alongside the raw category code.
func (p *Project) AfterFind(*gorm.DB) error {
	p.CategoryName = CategoryName(p.Category)
	return nil
}

// AfterCreate keeps freshly created records consistent with loaded ones.
func (p *Project) AfterCreate(*gorm.DB) error {
	p.CategoryName = CategoryName(p.Category)
	return nil
}

// IsOwnedBy reports whether the given user owns the project.
func (p *Project) IsOwnedBy(userID uint) bool { return userID != 0 && p.OwnerID == userID }
