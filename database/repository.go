package database

import (
	"database/sql"
	"tesla-notes/models"
	"time"
)

// Repository implements the memo and plan stores over one DB handle.
// It does no locking of its own; callers serialize access.
type Repository struct {
	db  *DB
	now func() time.Time
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) timestamp() int64 {
	return r.now().Unix()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const memoColumns = `id, uid, created_ts, updated_ts, category, target_date,
		completion_status, content, pinned, archived`

func scanMemo(row rowScanner) (models.Memo, error) {
	var memo models.Memo
	var targetDate sql.NullString
	var status string
	var pinned, archived int64

	err := row.Scan(
		&memo.ID, &memo.UID, &memo.CreatedTs, &memo.UpdatedTs,
		&memo.Category, &targetDate, &status, &memo.Content,
		&pinned, &archived,
	)
	if err != nil {
		return memo, err
	}

	if targetDate.Valid {
		memo.TargetDate = &targetDate.String
	}
	memo.CompletionStatus = models.CompletionStatus(status)
	memo.Pinned = pinned != 0
	memo.Archived = archived != 0

	return memo, nil
}

func collectMemos(rows *sql.Rows) ([]models.Memo, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	memos := make([]models.Memo, 0)
	for rows.Next() {
		memo, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		memos = append(memos, memo)
	}

	return memos, rows.Err()
}

const planColumns = `id, plan_date, title, description, category, completed, priority,
		created_ts, updated_ts, completed_ts`

func scanPlan(row rowScanner) (models.DailyPlan, error) {
	var plan models.DailyPlan
	var description, category sql.NullString
	var priority, completedTs sql.NullInt64
	var completed int64

	err := row.Scan(
		&plan.ID, &plan.PlanDate, &plan.Title, &description, &category,
		&completed, &priority, &plan.CreatedTs, &plan.UpdatedTs, &completedTs,
	)
	if err != nil {
		return plan, err
	}

	if description.Valid {
		plan.Description = &description.String
	}
	plan.Category = category.String
	plan.Completed = completed != 0
	plan.Priority = priority.Int64
	if completedTs.Valid {
		plan.CompletedTs = &completedTs.Int64
	}

	return plan, nil
}

func collectPlans(rows *sql.Rows) ([]models.DailyPlan, error) {
	defer rows.Close()

	plans := make([]models.DailyPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
