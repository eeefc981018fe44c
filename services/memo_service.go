package services

import (
	"tesla-notes/models"
)

const (
	// DefaultLimit is the page size the transports use when the caller gives none
	DefaultLimit = 50
)

// MemoService routes memo operations through the shared guard
type MemoService struct {
	repo  MemoRepository
	guard *Guard
}

// NewMemoService creates a new memo service
func NewMemoService(repo MemoRepository, guard *Guard) *MemoService {
	return &MemoService{
		repo:  repo,
		guard: guard,
	}
}

// Create stores a new memo. Category defaults to "daily".
func (ms *MemoService) Create(content string, category, targetDate *string) (*models.Memo, error) {
	return guarded(ms.guard, "create_memo", func() (*models.Memo, error) {
		return ms.repo.CreateMemo(content, category, targetDate)
	})
}

// Get retrieves a memo by id
func (ms *MemoService) Get(id int64) (*models.Memo, error) {
	return guarded(ms.guard, "get_memo", func() (*models.Memo, error) {
		return ms.repo.GetMemo(id)
	})
}

// List returns a page of non-archived memos. limit goes to SQLite as given:
// 0 yields an empty page and a negative limit means no limit.
func (ms *MemoService) List(limit, offset int, category *string) ([]models.Memo, error) {
	if offset < 0 {
		offset = 0
	}

	return guarded(ms.guard, "list_memos", func() ([]models.Memo, error) {
		return ms.repo.ListMemos(limit, offset, category)
	})
}

// Update applies a partial update. The stored row is read and rewritten
// inside one guarded call so concurrent patches cannot interleave.
func (ms *MemoService) Update(id int64, patch models.MemoPatch) (*models.Memo, error) {
	return guarded(ms.guard, "update_memo", func() (*models.Memo, error) {
		return ms.repo.UpdateMemo(id, patch)
	})
}

// Delete removes a memo; missing ids are not an error
func (ms *MemoService) Delete(id int64) error {
	return ms.guard.Do("delete_memo", func() error {
		return ms.repo.DeleteMemo(id)
	})
}

// Search returns non-archived memos containing query
func (ms *MemoService) Search(query string) ([]models.Memo, error) {
	return guarded(ms.guard, "search_memos", func() ([]models.Memo, error) {
		return ms.repo.SearchMemos(query)
	})
}

// ListByDate returns memos targeted at or created on date
func (ms *MemoService) ListByDate(date string) ([]models.Memo, error) {
	return guarded(ms.guard, "list_memos_by_date", func() ([]models.Memo, error) {
		return ms.repo.ListMemosByDate(date)
	})
}

// ToggleStatus advances the memo's completion status
func (ms *MemoService) ToggleStatus(id int64) (*models.Memo, error) {
	return guarded(ms.guard, "toggle_memo_status", func() (*models.Memo, error) {
		return ms.repo.ToggleMemoStatus(id)
	})
}
