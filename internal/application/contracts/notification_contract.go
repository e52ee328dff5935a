package contracts

import "context"

// ScanSummary 扫描完成后的通知摘要
type ScanSummary struct {
	TaskName     string `json:"task_name,omitempty"`
	Directory    string `json:"directory"`
	FileCount    int    `json:"file_count"`
	SeriesCount  int    `json:"series_count"`
	BangumiCount int    `json:"bangumi_count"`
	DurationMs   int64  `json:"duration_ms"`
	Err          string `json:"error,omitempty"`
}

// NotificationService 通知业务契约
type NotificationService interface {
	// NotifyScanCompleted 推送扫描完成摘要，通知渠道不可用时静默跳过
	NotifyScanCompleted(ctx context.Context, summary ScanSummary) error
}
