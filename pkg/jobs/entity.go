package jobs

import (
	"encoding/json"
	"time"
)

// Status — состояние задания. Переходы только вперёд:
// queued -> in_progress -> complete | failed. Терминальное состояние
// не перезаписывается.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
	// StatusNotFound возвращается для неизвестных и уже вычищенных заданий.
	// Неразличимость этих двух случаев — осознанное свойство API.
	StatusNotFound Status = "not_found"
)

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Job — единица асинхронной работы: имя функции плюс сырой payload.
type Job struct {
	ID         string          `json:"jobId"`
	Function   string          `json:"function"`
	Payload    json.RawMessage `json:"payload"`
	Status     Status          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	ErrorType  string          `json:"errorType,omitempty"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
	StartedAt  time.Time       `json:"startedAt,omitempty"`
	FinishedAt time.Time       `json:"finishedAt,omitempty"`
	// ExpiresAt заполняется при завершении: терминальный результат хранится
	// ограниченное время, потом задание вычищается.
	ExpiresAt time.Time `json:"-"`
}

// Envelope — единый формат терминального результата. Либо Success с Data,
// либо ошибка с типом.
type Envelope struct {
	Success   bool            `json:"success"`
	JobID     string          `json:"jobId"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorType string          `json:"errorType,omitempty"`
}
