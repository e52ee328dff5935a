package contracts

import (
	"context"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

// ScanRequest 目录扫描请求
type ScanRequest struct {
	Directory string `json:"directory" validate:"required"`
	Merge     bool   `json:"merge"`
}

// ScanResponse 目录扫描响应
type ScanResponse struct {
	Directory string                  `json:"directory"`
	FileCount int                     `json:"file_count"`
	Series    []*entities.SeriesInfo  `json:"series"`
	Bangumi   []*entities.BangumiInfo `json:"bangumi,omitempty"`
	Stats     CatalogStats            `json:"stats"`
}

// CatalogStats 识别结果统计
type CatalogStats struct {
	TotalFiles      int `json:"total_files"`
	SeriesCount     int `json:"series_count"`
	BangumiCount    int `json:"bangumi_count,omitempty"`
	IdentifiedFiles int `json:"identified_files"`
	UnknownSeries   int `json:"unknown_series"`
	WithReleaseGroup int `json:"with_release_group"`
	WithSeason      int `json:"with_season"`
}

// ExportFormat 导出格式
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// ExportRequest 扫描结果导出请求
type ExportRequest struct {
	Directory  string       `json:"directory" validate:"required"`
	Format     ExportFormat `json:"format"`
	Merge      bool         `json:"merge"`
	OutputPath string       `json:"output_path,omitempty"`
	Playlist   bool         `json:"playlist"`
}

// ExportResponse 导出响应
type ExportResponse struct {
	Format     ExportFormat `json:"format"`
	OutputPath string       `json:"output_path,omitempty"`
	Playlists  []string     `json:"playlists,omitempty"`
	ItemCount  int          `json:"item_count"`
}

// RulesResponse 当前生效的解析规则
type RulesResponse struct {
	Rules entities.RuleSet `json:"rules"`
}

// CatalogService 媒体目录识别业务契约
type CatalogService interface {
	// ScanDirectory 扫描目录并识别剧集分组
	ScanDirectory(ctx context.Context, req ScanRequest) (*ScanResponse, error)
	// Export 扫描并导出识别结果
	Export(ctx context.Context, req ExportRequest) (*ExportResponse, error)
	// EffectiveRules 返回当前生效的规则集
	EffectiveRules(ctx context.Context) (*RulesResponse, error)
}
