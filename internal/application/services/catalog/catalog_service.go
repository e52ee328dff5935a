package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/parser"
	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// DirectoryScanner 目录扫描依赖
type DirectoryScanner interface {
	ScanDirectory(root string) ([]string, error)
}

// Exporter 导出依赖
type Exporter interface {
	Export(req contracts.ExportRequest, series []*entities.SeriesInfo, bangumi []*entities.BangumiInfo) (*contracts.ExportResponse, error)
}

// AppCatalogService 媒体目录识别服务，串联扫描、分组、分析与合并流水线
type AppCatalogService struct {
	rules    *parser.Rules
	scanner  DirectoryScanner
	exporter Exporter
}

func NewAppCatalogService(rules *parser.Rules, scanner DirectoryScanner, exporter Exporter) contracts.CatalogService {
	return &AppCatalogService{
		rules:    rules,
		scanner:  scanner,
		exporter: exporter,
	}
}

// ScanDirectory 扫描目录并识别剧集分组
func (s *AppCatalogService) ScanDirectory(ctx context.Context, req contracts.ScanRequest) (*contracts.ScanResponse, error) {
	if req.Directory == "" {
		return nil, contracts.NewServiceError(contracts.ErrorCodeInvalidRequest, "扫描目录不能为空")
	}
	if err := ctx.Err(); err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "请求已取消", err)
	}

	start := time.Now()
	files, err := s.scanner.ScanDirectory(req.Directory)
	if err != nil {
		return nil, err
	}

	groups := s.rules.GroupSeries(files)
	collection := s.rules.AnalyzeSeries(groups)

	resp := &contracts.ScanResponse{
		Directory: req.Directory,
		FileCount: len(files),
	}

	if req.Merge {
		merged := parser.MergeSameSeason(collection)
		bangumi := parser.MergeCrossSeason(merged)
		resp.Series = merged.List()
		resp.Bangumi = bangumi.List()
	} else {
		resp.Series = collection.List()
	}
	resp.Stats = buildStats(len(files), resp.Series, resp.Bangumi)

	logger.Info("目录扫描完成",
		"directory", req.Directory,
		"files", resp.FileCount,
		"series", resp.Stats.SeriesCount,
		"bangumi", resp.Stats.BangumiCount,
		"duration", time.Since(start))

	return resp, nil
}

// Export 扫描并导出识别结果
func (s *AppCatalogService) Export(ctx context.Context, req contracts.ExportRequest) (*contracts.ExportResponse, error) {
	scan, err := s.ScanDirectory(ctx, contracts.ScanRequest{
		Directory: req.Directory,
		Merge:     req.Merge,
	})
	if err != nil {
		return nil, err
	}

	return s.exporter.Export(req, scan.Series, scan.Bangumi)
}

// EffectiveRules 返回当前生效的规则集
func (s *AppCatalogService) EffectiveRules(ctx context.Context) (*contracts.RulesResponse, error) {
	return &contracts.RulesResponse{Rules: s.rules.Source()}, nil
}

func buildStats(fileCount int, series []*entities.SeriesInfo, bangumi []*entities.BangumiInfo) contracts.CatalogStats {
	stats := contracts.CatalogStats{
		TotalFiles:   fileCount,
		SeriesCount:  len(series),
		BangumiCount: len(bangumi),
	}

	for _, info := range series {
		if info.SeriesName == parser.UnknownSeriesName {
			stats.UnknownSeries++
		}
		if info.ReleaseGroup != "" {
			stats.WithReleaseGroup++
		}
		if info.Season > 0 {
			stats.WithSeason++
		}
		for key := range info.Episodes {
			if key != "00" && !strings.HasPrefix(key, "unknown-") {
				stats.IdentifiedFiles++
			}
		}
	}

	return stats
}
