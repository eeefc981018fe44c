package services

import (
	"tesla-notes/models"
)

// PlanService routes daily plan operations through the shared guard
type PlanService struct {
	repo  PlanRepository
	guard *Guard
}

// NewPlanService creates a new plan service
func NewPlanService(repo PlanRepository, guard *Guard) *PlanService {
	return &PlanService{
		repo:  repo,
		guard: guard,
	}
}

func (ps *PlanService) Create(planDate, title string, description, category *string, priority *int64) (*models.DailyPlan, error) {
	return guarded(ps.guard, "create_plan", func() (*models.DailyPlan, error) {
		return ps.repo.CreatePlan(planDate, title, description, category, priority)
	})
}

func (ps *PlanService) Get(id int64) (*models.DailyPlan, error) {
	return guarded(ps.guard, "get_plan", func() (*models.DailyPlan, error) {
		return ps.repo.GetPlan(id)
	})
}

func (ps *PlanService) ListByDate(date string) ([]models.DailyPlan, error) {
	return guarded(ps.guard, "list_plans_by_date", func() ([]models.DailyPlan, error) {
		return ps.repo.ListPlansByDate(date)
	})
}

func (ps *PlanService) ToggleCompletion(id int64) (*models.DailyPlan, error) {
	return guarded(ps.guard, "toggle_plan_completion", func() (*models.DailyPlan, error) {
		return ps.repo.TogglePlanCompletion(id)
	})
}

func (ps *PlanService) Delete(id int64) error {
	return ps.guard.Do("delete_plan", func() error {
		return ps.repo.DeletePlan(id)
	})
}

func (ps *PlanService) Update(id int64, patch models.PlanPatch) (*models.DailyPlan, error) {
	return guarded(ps.guard, "update_plan", func() (*models.DailyPlan, error) {
		return ps.repo.UpdatePlan(id, patch)
	})
}
