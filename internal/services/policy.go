package services

import (
	"github.com/campushq/teambuilder/internal/models"
	"gorm.io/gorm"
)

// Access predicates shared by the project, request and message services.

// IsProjectOwner reports whether userID owns the given project.
func IsProjectOwner(db *gorm.DB, projectID, userID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	db.Model(&models.Project{}).
		Where("id = ? AND owner_id = ?", projectID, userID).
		Count(&count)
	return count > 0
}

// IsProjectMember reports whether userID holds a membership on the project.
// Ownership alone does not make a membership row.
func IsProjectMember(db *gorm.DB, projectID, userID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	db.Model(&models.Membership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count)
	return count > 0
}

// IsOwnerOrMember reports whether userID is the project owner or one of
// its members. This is the gate for private message access.
func IsOwnerOrMember(db *gorm.DB, projectID, userID uint) bool {
	return IsProjectOwner(db, projectID, userID) || IsProjectMember(db, projectID, userID)
}

// HasActiveRequestBetween reports whether an active request already links
// the two users on the project, in either direction.
func HasActiveRequestBetween(db *gorm.DB, projectID, userA, userB uint) bool {
	var count int64
	db.Model(&models.Request{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Where("(requester_id = ? AND requestee_id = ?) OR (requester_id = ? AND requestee_id = ?)",
			userA, userB, userB, userA).
		Count(&count)
	return count > 0
}
