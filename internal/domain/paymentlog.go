package domain

import (
	"encoding/json"
	"time"
)

// Payment log actions. One row is appended per submission mutation.
const (
	LogActionCreated = "created"
	LogActionUpdated = "updated"
)

// PaymentLog is an append-only audit entry for a submission create/update.
// LogData holds a JSON snapshot of the written field set.
type PaymentLog struct {
	ID           int64           `json:"id"`
	SubmissionID int64           `json:"submission_id"`
	Action       string          `json:"action"`
	Message      string          `json:"message,omitempty"`
	LogData      json.RawMessage `json:"log_data"`
	CreatedAt    time.Time       `json:"created_at"`
}
