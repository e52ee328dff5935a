package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

func sampleSeries() []*entities.SeriesInfo {
	return []*entities.SeriesInfo{
		{
			Pattern:      "Mono/Mono  {EP_NUM} ",
			SeriesName:   "Mono",
			DirName:      "Mono",
			Season:       1,
			ReleaseGroup: "LoliHouse",
			Tags:         []string{"WebRip", "1080p"},
			EpisodeCount: 2,
			SampleFile:   "Mono/Mono - 01.mkv",
			Episodes: map[string]string{
				"01": "Mono/Mono - 01.mkv",
				"02": "Mono/Mono - 02.mkv",
			},
		},
	}
}

func TestMarshalJSON(t *testing.T) {
	svc := NewAppExportService()

	data, err := svc.MarshalJSON(sampleSeries())
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	var out map[string]*entities.SeriesInfo
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("输出不是合法 JSON: %v", err)
	}
	info, ok := out["Mono/Mono  {EP_NUM} "]
	if !ok {
		t.Fatalf("缺少分组键, got keys %v", out)
	}
	if info.SeriesName != "Mono" || info.EpisodeCount != 2 {
		t.Errorf("info = %+v", info)
	}
}

func TestMarshalBangumiJSON(t *testing.T) {
	svc := NewAppExportService()

	b := entities.NewBangumiInfo("Mono")
	b.AddSeason(sampleSeries()[0])

	data, err := svc.MarshalBangumiJSON([]*entities.BangumiInfo{b})
	if err != nil {
		t.Fatalf("MarshalBangumiJSON failed: %v", err)
	}

	var out map[string]map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("输出不是合法 JSON: %v", err)
	}
	mono := out["Mono"]
	if mono == nil {
		t.Fatalf("缺少剧名键, got %v", out)
	}
	seasons, ok := mono["seasons"].(map[string]interface{})
	if !ok {
		t.Fatalf("seasons 字段缺失: %v", mono)
	}
	if _, ok := seasons["season_1"]; !ok {
		t.Errorf("seasons = %v, want season_1 键", seasons)
	}
}

func TestMarshalCSV(t *testing.T) {
	svc := NewAppExportService()

	data, err := svc.MarshalCSV(sampleSeries())
	if err != nil {
		t.Fatalf("MarshalCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("行数 = %d, want 表头加一条记录", len(lines))
	}
	if !strings.HasPrefix(lines[0], "series_name,") {
		t.Errorf("表头 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mono,1,LoliHouse,WebRip;1080p,2") {
		t.Errorf("记录 = %q", lines[1])
	}
}

func TestExportWritesFile(t *testing.T) {
	svc := NewAppExportService()
	out := filepath.Join(t.TempDir(), "catalog.json")

	resp, err := svc.Export(contracts.ExportRequest{
		Directory:  "/media",
		Format:     contracts.ExportFormatJSON,
		OutputPath: out,
	}, sampleSeries(), nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if resp.OutputPath != out {
		t.Errorf("OutputPath = %q", resp.OutputPath)
	}
	if resp.ItemCount != 1 {
		t.Errorf("ItemCount = %d, want 1", resp.ItemCount)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("导出文件不存在: %v", err)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewAppExportService()

	_, err := svc.Export(contracts.ExportRequest{
		Format:     "xml",
		OutputPath: filepath.Join(t.TempDir(), "out.xml"),
	}, sampleSeries(), nil)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWritePlaylists(t *testing.T) {
	svc := NewAppExportService()
	dir := t.TempDir()

	paths, err := svc.WritePlaylists(dir, sampleSeries())
	if err != nil {
		t.Fatalf("WritePlaylists failed: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("播放列表数 = %d, want 1", len(paths))
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("读取播放列表失败: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Errorf("缺少 M3U 头: %q", content)
	}
	// 条目按集号升序排列
	first := strings.Index(content, "Mono - 01.mkv")
	second := strings.Index(content, "Mono - 02.mkv")
	if first == -1 || second == -1 || first > second {
		t.Errorf("条目顺序错误: %q", content)
	}
	if filepath.Base(paths[0]) != "Mono S01.m3u8" {
		t.Errorf("文件名 = %q, want Mono S01.m3u8", filepath.Base(paths[0]))
	}
}
