package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ImportTask struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"` // "running", "done", "error", "cancelled"
	Total     int           `json:"total"`
	Current   int           `json:"current"`
	Headword  string        `json:"headword,omitempty"`
	Result    *ImportResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ImportTaskService interface {
	// Start opens a new task, cancelling any task already running. The CSV
	// is not parsed until the task body runs, so the row total arrives
	// through Update.
	Start(total int) (string, context.Context)
	Update(total, current int, headword string)
	Complete(result ImportResult)
	Fail(err error)
	Get() *ImportTask
	Cancel() bool
}

type importTaskManager struct {
	mu      sync.RWMutex
	current *ImportTask
	cancel  context.CancelFunc
}

func NewImportTaskService() ImportTaskService {
	return &importTaskManager{}
}

func (m *importTaskManager) Start(total int) (string, context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Cancel any existing task
	if m.cancel != nil {
		m.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	id := uuid.New().String()
	m.current = &ImportTask{
		ID:        id,
		Status:    "running",
		Total:     total,
		Current:   0,
		CreatedAt: time.Now(),
	}
	return id, ctx
}

func (m *importTaskManager) Update(total, current int, headword string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Status == "running" {
		m.current.Total = total
		m.current.Current = current
		m.current.Headword = headword
	}
}

func (m *importTaskManager) Complete(result ImportResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Status = "done"
		m.current.Result = &result
		m.current.Headword = ""
	}
}

func (m *importTaskManager) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Status = "error"
		m.current.Error = err.Error()
		m.current.Headword = ""
	}
}

func (m *importTaskManager) Get() *ImportTask {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}

	// Return a copy
	task := *m.current
	if m.current.Result != nil {
		result := *m.current.Result
		task.Result = &result
	}
	return &task
}

func (m *importTaskManager) Cancel() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.Status != "running" {
		return false
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.current.Status = "cancelled"
	m.current.Headword = ""
	return true
}
