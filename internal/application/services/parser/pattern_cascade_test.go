package parser

import (
	"testing"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

func defaultRules(t *testing.T) *Rules {
	t.Helper()
	r, err := Compile(entities.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return r
}

func TestExtractEpisode(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name        string
		path        string
		wantEpisode int
		wantPattern string
	}{
		{
			name:        "横线加扩展名格式",
			path:        "Show/Show - 01.mkv",
			wantEpisode: 1,
			wantPattern: "Show/Show  {EP_NUM} ",
		},
		{
			name:        "同一剧集不同集数得到相同分组键",
			path:        "Show/Show - 02.mkv",
			wantEpisode: 2,
			wantPattern: "Show/Show  {EP_NUM} ",
		},
		{
			name:        "EP格式",
			path:        "Show/ShowEP05.mkv",
			wantEpisode: 5,
			wantPattern: "Show/Show {EP_NUM} .mkv",
		},
		{
			name:        "中文话数格式",
			path:        "番剧/某番剧 第08话 (1080p).mkv",
			wantEpisode: 8,
			wantPattern: "番剧/某番剧  {EP_NUM}  (1080p).mkv",
		},
		{
			name:        "方括号集数",
			path:        "Show/[Sub] Show [03].mkv",
			wantEpisode: 3,
			wantPattern: "Show/[Sub] Show  {EP_NUM} .mkv",
		},
		{
			name:        "未命中任何模式时返回原路径与0",
			path:        "Show/special.mkv",
			wantEpisode: 0,
			wantPattern: "Show/special.mkv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, episode := rules.ExtractEpisode(tt.path)
			if episode != tt.wantEpisode {
				t.Errorf("episode = %d, want %d", episode, tt.wantEpisode)
			}
			if pattern != tt.wantPattern {
				t.Errorf("pattern = %q, want %q", pattern, tt.wantPattern)
			}
		})
	}
}

func TestExtractEpisodeMatchesBasenameOnly(t *testing.T) {
	rules := defaultRules(t)

	// 目录名中的数字不参与匹配判定，判定只看文件名
	pattern, episode := rules.ExtractEpisode("2024/opening.mkv")
	if episode != 0 {
		t.Errorf("episode = %d, want 0", episode)
	}
	if pattern != "2024/opening.mkv" {
		t.Errorf("pattern = %q, want unchanged path", pattern)
	}
}

func TestExtractSeason(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "Season目录", path: "Show/Season 2/Show - 01.mkv", want: 2},
		{name: "S01E01文件名", path: "Show/Show.S03E01.mkv", want: 3},
		{name: "中文季度", path: "某番剧/第2季/某番剧 第01话.mkv", want: 2},
		{name: "中文期数目录", path: "第3期/某番剧 01.mkv", want: 3},
		{name: "无季度信息", path: "Show/Show - 01.mkv", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.ExtractSeason(tt.path); got != tt.want {
				t.Errorf("ExtractSeason(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtractEpisodeChineseNumeralPattern(t *testing.T) {
	// 自定义规则可以捕获中文数字，默认规则只捕获阿拉伯数字
	rs := entities.DefaultRuleSet()
	rs.EpisodePatterns = append(rs.EpisodePatterns, `第([一二三四五六七八九十]+)話`)
	rules, err := Compile(rs)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	_, episode := rules.ExtractEpisode("番剧/番剧 第十一話.mkv")
	if episode != 11 {
		t.Errorf("episode = %d, want 11", episode)
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	rs := entities.DefaultRuleSet()
	rs.EpisodePatterns = append(rs.EpisodePatterns, `([`)
	if _, err := Compile(rs); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestFormatEpisodeKey(t *testing.T) {
	tests := []struct {
		episode int
		want    string
	}{
		{0, "00"},
		{5, "05"},
		{12, "12"},
		{112, "112"}, // 三位集数按实际位数输出，不截断
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatEpisodeKey(tt.episode); got != tt.want {
				t.Errorf("FormatEpisodeKey(%d) = %q, want %q", tt.episode, got, tt.want)
			}
		})
	}
}
