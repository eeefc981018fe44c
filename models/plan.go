package models

type DailyPlan struct {
	ID          int64   `json:"id"`
	PlanDate    string  `json:"plan_date"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Completed   bool    `json:"completed"`
	Priority    int64   `json:"priority"`
	CreatedTs   int64   `json:"created_ts"`
	UpdatedTs   int64   `json:"updated_ts"`
	CompletedTs *int64  `json:"completed_ts"`
}

// PlanPatch carries a partial plan update. Only title and description are mutable.
type PlanPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type CreatePlanRequest struct {
	PlanDate    string  `json:"plan_date" validate:"required,dateformat"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,category"`
	Priority    *int64  `json:"priority"`
}
