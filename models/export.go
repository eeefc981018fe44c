package models

// Export is a full snapshot of the store, archived memos included
type Export struct {
	ExportedTs int64       `json:"exported_ts"`
	MemoCount  int         `json:"memo_count"`
	PlanCount  int         `json:"plan_count"`
	Memos      []Memo      `json:"memos"`
	Plans      []DailyPlan `json:"plans"`
}
