package models

import "time"

// PrivateMessage is a message on a project's team-only channel. Visible
// to the project owner and members only.
type PrivateMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"-"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	CreatedAt time.Time `json:"date_created"`
}

func (PrivateMessage) TableName() string { return "private_messages" }

// PublicMessage is a message on a project's public channel, readable by
// any authenticated user.
type PublicMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"-"`
	Message   string    `gorm:"size:1000;not null" json:"message"`
	CreatedAt time.Time `json:"date_created"`
}

func (PublicMessage) TableName() string { return "public_messages" }
