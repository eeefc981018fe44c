package services

import (
	"tesla-notes/models"
	"time"
)

// ExportService produces full snapshots of both stores
type ExportService struct {
	memos MemoRepository
	plans PlanRepository
	guard *Guard
	now   func() time.Time
}

func NewExportService(memos MemoRepository, plans PlanRepository, guard *Guard) *ExportService {
	return &ExportService{
		memos: memos,
		plans: plans,
		guard: guard,
		now:   time.Now,
	}
}

// Export reads every memo and plan under a single guard acquisition so the
// snapshot is consistent
func (es *ExportService) Export() (*models.Export, error) {
	return guarded(es.guard, "export", func() (*models.Export, error) {
		memos, err := es.memos.GetAllMemos()
		if err != nil {
			return nil, err
		}

		plans, err := es.plans.GetAllPlans()
		if err != nil {
			return nil, err
		}

		return &models.Export{
			ExportedTs: es.now().Unix(),
			MemoCount:  len(memos),
			PlanCount:  len(plans),
			Memos:      memos,
			Plans:      plans,
		}, nil
	})
}
