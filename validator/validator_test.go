package validator

import (
	"tesla-notes/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidator_CreateMemo(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateMemoRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Content only",
			req:       models.CreateMemoRequest{Content: "buy milk"},
			wantError: false,
		},
		{
			name:      "Empty content is valid",
			req:       models.CreateMemoRequest{Content: ""},
			wantError: false,
		},
		{
			name: "Category and target date",
			req: models.CreateMemoRequest{
				Content:    "gym",
				Category:   strPtr("fitness"),
				TargetDate: strPtr("2024-01-15"),
			},
			wantError: false,
		},
		{
			name: "Unknown category",
			req: models.CreateMemoRequest{
				Content:  "x",
				Category: strPtr("chores"),
			},
			wantError: true,
			errorMsg:  "category must be one of: work, study, project, fitness, media, daily, idea",
		},
		{
			name: "Wrong date layout",
			req: models.CreateMemoRequest{
				Content:    "x",
				TargetDate: strPtr("15-01-2024"),
			},
			wantError: true,
			errorMsg:  "target_date must be a valid date in YYYY-MM-DD format",
		},
		{
			name: "Impossible date",
			req: models.CreateMemoRequest{
				Content:    "x",
				TargetDate: strPtr("2024-02-30"),
			},
			wantError: true,
			errorMsg:  "target_date must be a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MemoPatch(t *testing.T) {
	v := New()

	bad := models.CompletionStatus("someday")
	good := models.StatusCompleted

	assert.NoError(t, v.Validate(&models.MemoPatch{}))
	assert.NoError(t, v.Validate(&models.MemoPatch{CompletionStatus: &good}))

	err := v.Validate(&models.MemoPatch{CompletionStatus: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion_status must be one of: pending, completed, incomplete")

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "completion_status", errs[0].Field)
	assert.Equal(t, "completionstatus", errs[0].Tag)
}

func TestValidator_CreatePlan(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreatePlanRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid plan",
			req:       models.CreatePlanRequest{PlanDate: "2024-03-01", Title: "Ship release"},
			wantError: false,
		},
		{
			name:      "Missing title",
			req:       models.CreatePlanRequest{PlanDate: "2024-03-01"},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "Missing date",
			req:       models.CreatePlanRequest{Title: "x"},
			wantError: true,
			errorMsg:  "plan_date is required",
		},
		{
			name:      "Bad date",
			req:       models.CreatePlanRequest{PlanDate: "2024/03/01", Title: "x"},
			wantError: true,
			errorMsg:  "plan_date must be a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_PlanPatchRejectsEmptyTitle(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&models.PlanPatch{Description: strPtr("")}))

	err := v.Validate(&models.PlanPatch{Title: strPtr("")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must be at least 1 characters")
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-15"))
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("2024-1-15"))
	assert.False(t, ValidDate(""))
}
