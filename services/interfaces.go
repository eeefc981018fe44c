package services

import (
	"tesla-notes/models"
)

// MemoRepository defines the interface for memo data access
type MemoRepository interface {
	CreateMemo(content string, category, targetDate *string) (*models.Memo, error)
	GetMemo(id int64) (*models.Memo, error)
	ListMemos(limit, offset int, category *string) ([]models.Memo, error)
	UpdateMemo(id int64, patch models.MemoPatch) (*models.Memo, error)
	DeleteMemo(id int64) error
	SearchMemos(query string) ([]models.Memo, error)
	ListMemosByDate(date string) ([]models.Memo, error)
	ToggleMemoStatus(id int64) (*models.Memo, error)
	GetAllMemos() ([]models.Memo, error)
}

// PlanRepository defines the interface for daily plan data access
type PlanRepository interface {
	CreatePlan(planDate, title string, description, category *string, priority *int64) (*models.DailyPlan, error)
	GetPlan(id int64) (*models.DailyPlan, error)
	ListPlansByDate(date string) ([]models.DailyPlan, error)
	TogglePlanCompletion(id int64) (*models.DailyPlan, error)
	DeletePlan(id int64) error
	UpdatePlan(id int64, patch models.PlanPatch) (*models.DailyPlan, error)
	GetAllPlans() ([]models.DailyPlan, error)
}
