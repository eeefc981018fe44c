package database

import (
	"database/sql"
	"errors"
	"tesla-notes/models"

	"github.com/google/uuid"
)

// ==================== MEMO OPERATIONS ====================

// SearchLimit caps the number of memos returned by SearchMemos
const SearchLimit = 50

// CreateMemo inserts a memo with a fresh uid and returns the stored row
func (r *Repository) CreateMemo(content string, category, targetDate *string) (*models.Memo, error) {
	uid := uuid.New().String()
	now := r.timestamp()

	cat := models.DefaultCategory
	if category != nil {
		cat = *category
	}

	result, err := r.db.Exec(`
		INSERT INTO memo (uid, created_ts, updated_ts, category, target_date, content)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uid, now, now, cat, targetDate, content)
	if err != nil {
		return nil, persistenceError("create memo", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, persistenceError("create memo", err)
	}

	return r.GetMemo(id)
}

// GetMemo retrieves a memo by id
func (r *Repository) GetMemo(id int64) (*models.Memo, error) {
	row := r.db.QueryRow(`SELECT `+memoColumns+` FROM memo WHERE id = ?`, id)

	memo, err := scanMemo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistenceError("get memo", err)
	}

	return &memo, nil
}

// ListMemos returns a page of non-archived memos, pinned first then newest
// first. A non-nil category restricts the page to that exact category.
func (r *Repository) ListMemos(limit, offset int, category *string) ([]models.Memo, error) {
	var rows *sql.Rows
	var err error

	if category != nil {
		rows, err = r.db.Query(`
			SELECT `+memoColumns+`
			FROM memo
			WHERE archived = 0 AND category = ?
			ORDER BY pinned DESC, created_ts DESC
			LIMIT ? OFFSET ?
		`, *category, limit, offset)
	} else {
		rows, err = r.db.Query(`
			SELECT `+memoColumns+`
			FROM memo
			WHERE archived = 0
			ORDER BY pinned DESC, created_ts DESC
			LIMIT ? OFFSET ?
		`, limit, offset)
	}
	if err != nil {
		return nil, persistenceError("list memos", err)
	}

	memos, err := collectMemos(rows)
	if err != nil {
		return nil, persistenceError("list memos", err)
	}
	return memos, nil
}

// UpdateMemo merges patch into the stored memo. Fields left nil in the patch
// keep their stored value; updated_ts is always refreshed.
func (r *Repository) UpdateMemo(id int64, patch models.MemoPatch) (*models.Memo, error) {
	memo, err := r.GetMemo(id)
	if err != nil {
		return nil, err
	}

	if patch.Content != nil {
		memo.Content = *patch.Content
	}
	if patch.Category != nil {
		memo.Category = *patch.Category
	}
	if patch.TargetDate != nil {
		memo.TargetDate = patch.TargetDate
	}
	if patch.CompletionStatus != nil {
		memo.CompletionStatus = *patch.CompletionStatus
	}
	if patch.Pinned != nil {
		memo.Pinned = *patch.Pinned
	}
	if patch.Archived != nil {
		memo.Archived = *patch.Archived
	}

	_, err = r.db.Exec(`
		UPDATE memo SET
			content = ?,
			category = ?,
			target_date = ?,
			completion_status = ?,
			pinned = ?,
			archived = ?,
			updated_ts = ?
		WHERE id = ?
	`,
		memo.Content, memo.Category, memo.TargetDate,
		string(memo.CompletionStatus), boolToInt(memo.Pinned), boolToInt(memo.Archived),
		r.timestamp(), id,
	)
	if err != nil {
		return nil, persistenceError("update memo", err)
	}

	return r.GetMemo(id)
}

// DeleteMemo removes a memo. Deleting a missing id is not an error.
func (r *Repository) DeleteMemo(id int64) error {
	if _, err := r.db.Exec("DELETE FROM memo WHERE id = ?", id); err != nil {
		return persistenceError("delete memo", err)
	}
	return nil
}

// SearchMemos returns non-archived memos whose content contains query,
// newest first. LIKE wildcards in query are passed through unescaped.
func (r *Repository) SearchMemos(query string) ([]models.Memo, error) {
	rows, err := r.db.Query(`
		SELECT `+memoColumns+`
		FROM memo
		WHERE content LIKE ? AND archived = 0
		ORDER BY created_ts DESC
		LIMIT ?
	`, "%"+query+"%", SearchLimit)
	if err != nil {
		return nil, persistenceError("search memos", err)
	}

	memos, err := collectMemos(rows)
	if err != nil {
		return nil, persistenceError("search memos", err)
	}
	return memos, nil
}

// ListMemosByDate returns non-archived memos targeted at date or created on
// date in the host's local timezone
func (r *Repository) ListMemosByDate(date string) ([]models.Memo, error) {
	rows, err := r.db.Query(`
		SELECT `+memoColumns+`
		FROM memo
		WHERE (target_date = ? OR DATE(created_ts, 'unixepoch', 'localtime') = ?)
		  AND archived = 0
		ORDER BY pinned DESC, created_ts DESC
	`, date, date)
	if err != nil {
		return nil, persistenceError("list memos by date", err)
	}

	memos, err := collectMemos(rows)
	if err != nil {
		return nil, persistenceError("list memos by date", err)
	}
	return memos, nil
}

// ToggleMemoStatus advances completion_status one step through
// pending -> completed -> incomplete -> pending
func (r *Repository) ToggleMemoStatus(id int64) (*models.Memo, error) {
	memo, err := r.GetMemo(id)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(`
		UPDATE memo SET completion_status = ?, updated_ts = ? WHERE id = ?
	`, string(memo.CompletionStatus.Next()), r.timestamp(), id)
	if err != nil {
		return nil, persistenceError("toggle memo status", err)
	}

	return r.GetMemo(id)
}

// GetAllMemos returns every memo, archived included, oldest first
func (r *Repository) GetAllMemos() ([]models.Memo, error) {
	rows, err := r.db.Query(`
		SELECT ` + memoColumns + `
		FROM memo
		ORDER BY created_ts ASC, id ASC
	`)
	if err != nil {
		return nil, persistenceError("export memos", err)
	}

	memos, err := collectMemos(rows)
	if err != nil {
		return nil, persistenceError("export memos", err)
	}
	return memos, nil
}
