package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// AppExportService 识别结果导出服务
type AppExportService struct{}

func NewAppExportService() *AppExportService {
	return &AppExportService{}
}

// Export 按请求的格式落盘。OutputPath 为空时只生成内容不落盘，
// Playlist 开启时为每个分组额外生成 M3U8 播放列表。
func (s *AppExportService) Export(req contracts.ExportRequest, series []*entities.SeriesInfo, bangumi []*entities.BangumiInfo) (*contracts.ExportResponse, error) {
	resp := &contracts.ExportResponse{
		Format:    req.Format,
		ItemCount: len(series),
	}

	if req.OutputPath != "" {
		var data []byte
		var err error

		switch req.Format {
		case contracts.ExportFormatCSV:
			data, err = s.MarshalCSV(series)
		case contracts.ExportFormatJSON, "":
			if req.Merge && len(bangumi) > 0 {
				data, err = s.MarshalBangumiJSON(bangumi)
				resp.ItemCount = len(bangumi)
			} else {
				data, err = s.MarshalJSON(series)
			}
		default:
			return nil, contracts.NewServiceError(contracts.ErrorCodeInvalidRequest,
				"不支持的导出格式: "+string(req.Format))
		}
		if err != nil {
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "导出序列化失败", err)
		}

		if err := os.WriteFile(req.OutputPath, data, 0644); err != nil {
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "导出写入失败", err)
		}
		resp.OutputPath = req.OutputPath
		logger.Info("识别结果已导出", "path", req.OutputPath, "format", req.Format)
	}

	if req.Playlist {
		dir := filepath.Dir(req.OutputPath)
		if req.OutputPath == "" {
			dir = "."
		}
		playlists, err := s.WritePlaylists(dir, series)
		if err != nil {
			return nil, err
		}
		resp.Playlists = playlists
	}

	return resp, nil
}

// MarshalJSON 以分组键为键导出所有剧集分组
func (s *AppExportService) MarshalJSON(series []*entities.SeriesInfo) ([]byte, error) {
	out := make(map[string]*entities.SeriesInfo, len(series))
	for _, info := range series {
		out[info.Pattern] = info
	}
	return json.MarshalIndent(out, "", "  ")
}

// MarshalBangumiJSON 以剧名为键导出跨季聚合结果
func (s *AppExportService) MarshalBangumiJSON(bangumi []*entities.BangumiInfo) ([]byte, error) {
	out := make(map[string]*entities.BangumiInfo, len(bangumi))
	for _, info := range bangumi {
		out[info.SeriesName] = info
	}
	return json.MarshalIndent(out, "", "  ")
}

// MarshalCSV 导出扁平的分组摘要表
func (s *AppExportService) MarshalCSV(series []*entities.SeriesInfo) ([]byte, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{"series_name", "season", "release_group", "tags", "episode_count", "dir_name", "sample_file"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, info := range series {
		record := []string{
			info.SeriesName,
			strconv.Itoa(info.Season),
			info.ReleaseGroup,
			strings.Join(info.Tags, ";"),
			strconv.Itoa(info.EpisodeCount),
			info.DirName,
			info.SampleFile,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// WritePlaylists 为每个分组生成按集号排序的 M3U8 播放列表
func (s *AppExportService) WritePlaylists(dir string, series []*entities.SeriesInfo) ([]string, error) {
	var written []string
	for _, info := range series {
		name := playlistFileName(info)
		path := filepath.Join(dir, name)

		var buf strings.Builder
		buf.WriteString("#EXTM3U\n")
		for _, key := range info.SortedEpisodeKeys() {
			buf.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", info.SeriesName, key))
			buf.WriteString(info.Episodes[key])
			buf.WriteString("\n")
		}

		if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError,
				"播放列表写入失败: "+name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// playlistFileName 由剧名和季号生成安全的播放列表文件名
func playlistFileName(info *entities.SeriesInfo) string {
	name := info.SeriesName
	if info.Season > 0 {
		name = fmt.Sprintf("%s S%02d", name, info.Season)
	}
	name = sanitizeFileName(name)
	return name + ".m3u8"
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_",
	"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

func sanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// Statistics 生成控制台报告用的统计摘要
func (s *AppExportService) Statistics(series []*entities.SeriesInfo) map[string]int {
	stats := map[string]int{
		"series":   len(series),
		"episodes": 0,
	}
	for _, info := range series {
		stats["episodes"] += info.EpisodeCount
		if info.ReleaseGroup != "" {
			stats["with_release_group"]++
		}
		if info.Season > 0 {
			stats["with_season"]++
		}
	}
	return stats
}
