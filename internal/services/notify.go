package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/campushq/teambuilder/internal/config"
	"github.com/campushq/teambuilder/pkg/logger"
	"github.com/hibiken/asynq"
)

const (
	TaskTypeNotify = "notify:deliver"
)

// Notification event names.
const (
	EventRequestCreated   = "request.created"
	EventRequestAccepted  = "request.accepted"
	EventRequestDeclined  = "request.declined"
	EventRequestCancelled = "request.cancelled"
	EventMemberJoined     = "member.joined"
	EventPrivateMessage   = "message.private"
)

// NotifyTask carries a notification to be delivered to a user.
type NotifyTask struct {
	Event       string `json:"event"`
	ActorID     uint   `json:"actor_id"`
	RecipientID uint   `json:"recipient_id"`
	ProjectID   uint   `json:"project_id"`
	RequestID   uint   `json:"request_id,omitempty"`
	Role        string `json:"role,omitempty"`
}

// TaskQueue defines the interface for notification delivery
type TaskQueue interface {
	// Enqueue adds a task to the queue
	Enqueue(task *NotifyTask) error
	// IsAsync returns true if queue processes tasks asynchronously
	IsAsync() bool
	// Close gracefully shuts down the queue
	Close() error
}

// Global task queue instance
var (
	globalTaskQueue TaskQueue
	taskQueueOnce   sync.Once
)

// InitTaskQueue initializes the global task queue based on config
func InitTaskQueue(cfg *config.Config) TaskQueue {
	taskQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncQueue(&cfg.Redis)
			if err != nil {
				logger.Infof("[TaskQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalTaskQueue = NewSyncQueue()
			} else {
				logger.Infof("[TaskQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalTaskQueue = queue
			}
		} else {
			logger.Infof("[TaskQueue] Sync queue initialized (Redis disabled)")
			globalTaskQueue = NewSyncQueue()
		}
	})
	return globalTaskQueue
}

// GetTaskQueue returns the global task queue instance
func GetTaskQueue() TaskQueue {
	return globalTaskQueue
}

// Notify enqueues a notification, ignoring queue failures. Delivery is
// best effort; the originating write has already been committed.
func Notify(task *NotifyTask) {
	q := GetTaskQueue()
	if q == nil {
		return
	}
	if err := q.Enqueue(task); err != nil {
		logger.Warnf("[Notify] Failed to enqueue %s: %v", task.Event, err)
	}
}

// AsyncQueue implements TaskQueue using asynq (Redis-based)
type AsyncQueue struct {
	client *asynq.Client
}

// NewAsyncQueue creates a new Redis-based async queue
func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Test connection by pinging Redis
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()

	_, err := inspector.Queues()
	if err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

// Enqueue adds a notification task to the async queue
func (q *AsyncQueue) Enqueue(task *NotifyTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(TaskTypeNotify, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Infof("[AsyncQueue] Task enqueued: id=%s, queue=%s", info.ID, info.Queue)
	return nil
}

// IsAsync returns true for async queue
func (q *AsyncQueue) IsAsync() bool {
	return true
}

// Close closes the async queue client
func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue implements TaskQueue with in-process delivery (no Redis)
type SyncQueue struct {
	processor func(context.Context, *NotifyTask) error
}

// NewSyncQueue creates a new synchronous queue
func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessor sets the function to process tasks synchronously
func (q *SyncQueue) SetProcessor(processor func(context.Context, *NotifyTask) error) {
	q.processor = processor
}

// Enqueue processes the task immediately in a goroutine
func (q *SyncQueue) Enqueue(task *NotifyTask) error {
	if q.processor == nil {
		logger.Infof("[SyncQueue] Warning: no processor set, task will be dropped")
		return nil
	}

	// Process in a goroutine to not block the API response
	go func() {
		ctx := context.Background()
		if err := q.processor(ctx, task); err != nil {
			logger.Infof("[SyncQueue] Task processing failed: %v", err)
		}
	}()

	return nil
}

// IsAsync returns false for sync queue
func (q *SyncQueue) IsAsync() bool {
	return false
}

// Close is a no-op for sync queue
func (q *SyncQueue) Close() error {
	return nil
}

// EventMessage renders a short human-readable line for an event.
func EventMessage(task *NotifyTask) string {
	switch task.Event {
	case EventRequestCreated:
		return fmt.Sprintf("user %d asked user %d to fill role %q on project %d", task.ActorID, task.RecipientID, task.Role, task.ProjectID)
	case EventRequestAccepted:
		return fmt.Sprintf("user %d accepted request %d on project %d", task.ActorID, task.RequestID, task.ProjectID)
	case EventRequestDeclined:
		return fmt.Sprintf("user %d declined request %d on project %d", task.ActorID, task.RequestID, task.ProjectID)
	case EventRequestCancelled:
		return fmt.Sprintf("user %d cancelled request %d on project %d", task.ActorID, task.RequestID, task.ProjectID)
	case EventMemberJoined:
		return fmt.Sprintf("user %d joined project %d as %q", task.RecipientID, task.ProjectID, task.Role)
	case EventPrivateMessage:
		return fmt.Sprintf("user %d sent a private message on project %d", task.ActorID, task.ProjectID)
	default:
		return task.Event
	}
}
