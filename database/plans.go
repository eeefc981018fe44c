package database

import (
	"database/sql"
	"errors"
	"tesla-notes/models"
)

// ==================== PLAN OPERATIONS ====================

// CreatePlan inserts a daily plan and returns the stored row
func (r *Repository) CreatePlan(planDate, title string, description, category *string, priority *int64) (*models.DailyPlan, error) {
	now := r.timestamp()

	cat := models.DefaultCategory
	if category != nil {
		cat = *category
	}
	var prio int64
	if priority != nil {
		prio = *priority
	}

	result, err := r.db.Exec(`
		INSERT INTO daily_plan (plan_date, title, description, category, priority, created_ts, updated_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, planDate, title, description, cat, prio, now, now)
	if err != nil {
		return nil, persistenceError("create plan", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, persistenceError("create plan", err)
	}

	return r.GetPlan(id)
}

// GetPlan retrieves a daily plan by id
func (r *Repository) GetPlan(id int64) (*models.DailyPlan, error) {
	row := r.db.QueryRow(`SELECT `+planColumns+` FROM daily_plan WHERE id = ?`, id)

	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceError("get plan", err)
	}

	return &plan, nil
}

// ListPlansByDate returns the plans for date, highest priority first and
// oldest first within a priority
func (r *Repository) ListPlansByDate(date string) ([]models.DailyPlan, error) {
	rows, err := r.db.Query(`
		SELECT `+planColumns+`
		FROM daily_plan
		WHERE plan_date = ?
		ORDER BY priority DESC, created_ts ASC, id ASC
	`, date)
	if err != nil {
		return nil, persistenceError("list plans by date", err)
	}

	plans, err := collectPlans(rows)
	if err != nil {
		return nil, persistenceError("list plans by date", err)
	}
	return plans, nil
}

// TogglePlanCompletion flips completed. completed_ts is stamped when the plan
// becomes completed and cleared when it is reopened.
func (r *Repository) TogglePlanCompletion(id int64) (*models.DailyPlan, error) {
	plan, err := r.GetPlan(id)
	if err != nil {
		return nil, err
	}

	now := r.timestamp()
	completed := 1
	completedTs := sql.NullInt64{Int64: now, Valid: true}
	if plan.Completed {
		completed = 0
		completedTs = sql.NullInt64{}
	}

	_, err = r.db.Exec(`
		UPDATE daily_plan SET
			completed = ?,
			completed_ts = ?,
			updated_ts = ?
		WHERE id = ?
	`, completed, completedTs, now, id)
	if err != nil {
		return nil, persistenceError("toggle plan completion", err)
	}

	return r.GetPlan(id)
}

// DeletePlan removes a plan. Deleting a missing id is not an error.
func (r *Repository) DeletePlan(id int64) error {
	if _, err := r.db.Exec("DELETE FROM daily_plan WHERE id = ?", id); err != nil {
		return persistenceError("delete plan", err)
	}
	return nil
}

// UpdatePlan merges title and description into the stored plan. Date,
// category and priority are fixed after creation.
func (r *Repository) UpdatePlan(id int64, patch models.PlanPatch) (*models.DailyPlan, error) {
	plan, err := r.GetPlan(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		plan.Title = *patch.Title
	}
	if patch.Description != nil {
		plan.Description = patch.Description
	}

	_, err = r.db.Exec(`
		UPDATE daily_plan SET
			title = ?,
			description = ?,
			updated_ts = ?
		WHERE id = ?
	`, plan.Title, plan.Description, r.timestamp(), id)
	if err != nil {
		return nil, persistenceError("update plan", err)
	}

	return r.GetPlan(id)
}

// GetAllPlans returns every plan, oldest first
func (r *Repository) GetAllPlans() ([]models.DailyPlan, error) {
	rows, err := r.db.Query(`
		SELECT ` + planColumns + `
		FROM daily_plan
		ORDER BY created_ts ASC, id ASC
	`)
	if err != nil {
		return nil, persistenceError("export plans", err)
	}

	plans, err := collectPlans(rows)
	if err != nil {
		return nil, persistenceError("export plans", err)
	}
	return plans, nil
}
