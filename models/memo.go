package models

// CompletionStatus is the tri-state progress marker carried by a memo
type CompletionStatus string

const (
	StatusPending    CompletionStatus = "pending"
	StatusCompleted  CompletionStatus = "completed"
	StatusIncomplete CompletionStatus = "incomplete"
)

// DefaultCategory is applied when a memo or plan is created without one
const DefaultCategory = "daily"

// Categories lists the categories the client offers
var Categories = []string{"work", "study", "project", "fitness", "media", "daily", "idea"}

// Next returns the status that follows s in the toggle cycle.
// Unknown values are treated as pending before advancing.
func (s CompletionStatus) Next() CompletionStatus {
	switch s {
	case StatusPending:
		return StatusCompleted
	case StatusCompleted:
		return StatusIncomplete
	case StatusIncomplete:
		return StatusPending
	default:
		return StatusCompleted
	}
}

// Valid reports whether s is one of the known statuses
func (s CompletionStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusIncomplete
}

type Memo struct {
	ID               int64            `json:"id"`
	UID              string           `json:"uid"`
	CreatedTs        int64            `json:"created_ts"`
	UpdatedTs        int64            `json:"updated_ts"`
	Category         string           `json:"category"`
	TargetDate       *string          `json:"target_date"`
	CompletionStatus CompletionStatus `json:"completion_status"`
	Content          string           `json:"content"`
	Pinned           bool             `json:"pinned"`
	Archived         bool             `json:"archived"`
}

// MemoPatch carries a partial memo update. A nil field keeps the stored value.
type MemoPatch struct {
	Content          *string           `json:"content"`
	Category         *string           `json:"category" validate:"omitempty,category"`
	TargetDate       *string           `json:"target_date" validate:"omitempty,dateformat"`
	CompletionStatus *CompletionStatus `json:"completion_status" validate:"omitempty,completionstatus"`
	Pinned           *bool             `json:"pinned"`
	Archived         *bool             `json:"archived"`
}

type CreateMemoRequest struct {
	Content    string  `json:"content"`
	Category   *string `json:"category" validate:"omitempty,category"`
	TargetDate *string `json:"target_date" validate:"omitempty,dateformat"`
}
