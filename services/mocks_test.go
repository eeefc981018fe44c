package services

import (
	"tesla-notes/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockMemoRepository is a mock implementation of MemoRepository
type MockMemoRepository struct {
	mock.Mock
}

// Ensure MockMemoRepository implements MemoRepository interface
var _ MemoRepository = (*MockMemoRepository)(nil)

func (m *MockMemoRepository) CreateMemo(content string, category, targetDate *string) (*models.Memo, error) {
	args := m.Called(content, category, targetDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Memo), args.Error(1)
}

func (m *MockMemoRepository) GetMemo(id int64) (*models.Memo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Memo), args.Error(1)
}

func (m *MockMemoRepository) ListMemos(limit, offset int, category *string) ([]models.Memo, error) {
	args := m.Called(limit, offset, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Memo), args.Error(1)
}

func (m *MockMemoRepository) UpdateMemo(id int64, patch models.MemoPatch) (*models.Memo, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Memo), args.Error(1)
}

func (m *MockMemoRepository) DeleteMemo(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMemoRepository) SearchMemos(query string) ([]models.Memo, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Memo), args.Error(1)
}

func (m *MockMemoRepository) ListMemosByDate(date string) ([]models.Memo, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Memo), args.Error(1)
}

func (m *MockMemoRepository) ToggleMemoStatus(id int64) (*models.Memo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Memo), args.Error(1)
}

func (m *MockMemoRepository) GetAllMemos() ([]models.Memo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Memo), args.Error(1)
}

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

var _ PlanRepository = (*MockPlanRepository)(nil)

func (m *MockPlanRepository) CreatePlan(planDate, title string, description, category *string, priority *int64) (*models.DailyPlan, error) {
	args := m.Called(planDate, title, description, category, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyPlan), args.Error(1)
}

func (m *MockPlanRepository) GetPlan(id int64) (*models.DailyPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyPlan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansByDate(date string) ([]models.DailyPlan, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyPlan), args.Error(1)
}

func (m *MockPlanRepository) TogglePlanCompletion(id int64) (*models.DailyPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyPlan), args.Error(1)
}

func (m *MockPlanRepository) DeletePlan(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlanRepository) UpdatePlan(id int64, patch models.PlanPatch) (*models.DailyPlan, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyPlan), args.Error(1)
}

func (m *MockPlanRepository) GetAllPlans() ([]models.DailyPlan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyPlan), args.Error(1)
}
