package models

import (
	"time"

	"gorm.io/gorm"
)

// Join request status codes with their human readable names.
const (
	StatusPending   = "PND"
	StatusAccepted  = "ACP"
	StatusDeclined  = "DCN"
	StatusCancelled = "CNL"
)

var statusNames = map[string]string{
	StatusPending:   "Pending",
	StatusAccepted:  "Accepted",
	StatusDeclined:  "Declined",
	StatusCancelled: "Cancelled",
}

// StatusName returns the display name for a status code, or "" for an
// unknown code.
func StatusName(code string) string { return statusNames[code] }

// TerminalStatus reports whether code is one of the terminal statuses a
// pending request may transition to.
func TerminalStatus(code string) bool {
	return code == StatusAccepted || code == StatusDeclined || code == StatusCancelled
}

// Request is a proposal to add a user to a project team. It is created
// pending and transitions exactly once to a terminal status; after that it
// is inactive and invisible to mutation. IsActive is true iff the status
// is still pending.
type Request struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RequesterID uint           `gorm:"index;not null" json:"requester_id"`
	Requester   *User          `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	RequesteeID uint           `gorm:"index;not null" json:"requestee_id"`
	Requestee   *User          `gorm:"foreignKey:RequesteeID" json:"requestee,omitempty"`
	ProjectID   uint           `gorm:"index;not null" json:"project_id"`
	Project     *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Role        string         `gorm:"size:40;not null" json:"role"`
	Status      string         `gorm:"size:3;default:PND" json:"status"`
	StatusName  string         `gorm:"-" json:"status_name"`
	IsActive    bool           `gorm:"index;default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"date_created"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "requests" }

func (r *Request) AfterFind(*gorm.DB) error {
	r.StatusName = StatusName(r.Status)
	return nil
}

func (r *Request) AfterCreate(*gorm.DB) error {
	r.StatusName = StatusName(r.Status)
	return nil
}

// IsParticipant reports whether the given user is the requester or the
// requestee of this request.
func (r *Request) IsParticipant(userID uint) bool {
	return userID != 0 && (userID == r.RequesterID || userID == r.RequesteeID)
}
