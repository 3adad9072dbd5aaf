package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a student account.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email      string         `gorm:"uniqueIndex;size:150;not null" json:"email"`
	FirstName  string         `gorm:"size:150;not null" json:"first_name"`
	LastName   string         `gorm:"size:150;not null" json:"last_name"`
	Password   string         `gorm:"size:255" json:"-"` // Hashed password, empty for LDAP users
	Role       string         `gorm:"size:50;default:user" json:"role"`       // admin, user
	AuthType   string         `gorm:"size:20;default:local" json:"auth_type"` // local, ldap
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	Profile    *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	LastLogin  *time.Time     `json:"last_login"`
	DateJoined time.Time      `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Profile holds the student-facing part of an account. Every user has
// exactly one profile, created in the same transaction as the account.
type Profile struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"-"`
	Programme string     `gorm:"size:150" json:"programme"`
	About     string     `gorm:"size:1000" json:"about"`
	Roles     StringList `gorm:"type:text" json:"roles"` // at most 3 entries
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

func (Profile) TableName() string { return "profiles" }
