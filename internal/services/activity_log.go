package services

import (
	"encoding/json"
	"time"

	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/logger"
	"gorm.io/gorm"
)

var globalDB *gorm.DB

// InitActivityLogger wires the package-level log writers to a database.
func InitActivityLogger(db *gorm.DB) {
	globalDB = db
}

func LogInfo(module, action, message string, userID *uint, ip, userAgent, traceID string, extra interface{}) {
	writeLog("info", module, action, message, userID, ip, userAgent, traceID, extra)
}

func LogWarning(module, action, message string, userID *uint, ip, userAgent, traceID string, extra interface{}) {
	writeLog("warning", module, action, message, userID, ip, userAgent, traceID, extra)
}

func LogError(module, action, message string, userID *uint, ip, userAgent, traceID string, extra interface{}) {
	writeLog("error", module, action, message, userID, ip, userAgent, traceID, extra)
}

func writeLog(level, module, action, message string, userID *uint, ip, userAgent, traceID string, extra interface{}) {
	if globalDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.ActivityLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		TraceID:   traceID,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	globalDB.Create(entry)
}

type ActivityLogService struct {
	db *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{db: db}
}

type ActivityLogListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Level     string `form:"level"`
	Module    string `form:"module"`
	Action    string `form:"action"`
	UserID    uint   `form:"user_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Search    string `form:"search"`
}

type ActivityLogListResponse struct {
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Items    []models.ActivityLog `json:"items"`
}

func (s *ActivityLogService) List(req *ActivityLogListRequest) (*ActivityLogListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var logs []models.ActivityLog
	var total int64

	query := s.db.Model(&models.ActivityLog{})

	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}
	if req.Action != "" {
		query = query.Where("action LIKE ?", "%"+req.Action+"%")
	}
	if req.UserID > 0 {
		query = query.Where("user_id = ?", req.UserID)
	}
	if req.StartDate != "" {
		query = query.Where("created_at >= ?", req.StartDate)
	}
	if req.EndDate != "" {
		query = query.Where("created_at <= ?", req.EndDate+" 23:59:59")
	}
	if req.Search != "" {
		query = query.Where("message LIKE ?", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	return &ActivityLogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

func (s *ActivityLogService) GetModules() ([]string, error) {
	var modules []string
	if err := s.db.Model(&models.ActivityLog{}).Distinct("module").Pluck("module", &modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// CleanupOldLogs deletes logs older than the specified number of days.
// Returns the number of deleted records.
func (s *ActivityLogService) CleanupOldLogs(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoffTime := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoffTime).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// CleanupExpiredRefreshTokens removes refresh tokens that expired or were
// revoked more than a day ago.
func CleanupExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -1)
	result := db.Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}

const logRetentionDays = 30

// StartCleanupScheduler runs daily maintenance: old activity logs and
// stale refresh tokens. Returns the scheduler so callers can Stop() it.
func StartCleanupScheduler(db *gorm.DB) *Scheduler {
	runner := newScheduler(db)
	runner.start()
	return runner
}

func runLogCleanup(db *gorm.DB) {
	service := NewActivityLogService(db)

	deleted, err := service.CleanupOldLogs(logRetentionDays)
	if err != nil {
		logger.Errorf("[ActivityLog] Failed to cleanup old logs: %v", err)
		return
	}
	if deleted > 0 {
		logger.Infof("[ActivityLog] Cleaned up %d logs older than %d days", deleted, logRetentionDays)
	}

	removed, err := CleanupExpiredRefreshTokens(db)
	if err != nil {
		logger.Errorf("[ActivityLog] Failed to cleanup refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		logger.Infof("[ActivityLog] Removed %d stale refresh tokens", removed)
	}
}
