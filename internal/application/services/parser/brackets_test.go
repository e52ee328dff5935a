package parser

import (
	"reflect"
	"testing"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

func TestExtractBracketTokens(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name     string
		filename string
		want     []string
	}{
		{
			name:     "方括号",
			filename: "[LoliHouse] Show - 01 [WebRip 1080p HEVC-10bit AAC].mkv",
			want:     []string{"LoliHouse", "WebRip 1080p HEVC-10bit AAC"},
		},
		{
			name:     "混合括号样式按模式顺序排列",
			filename: "[GroupX] Show (2013) 【简中】 - 01.mkv",
			want:     []string{"GroupX", "2013", "简中"},
		},
		{
			name:     "全角书名号与花括号",
			filename: "『SweetSub』Show {720p} - 02.mkv",
			want:     []string{"SweetSub", "720p"},
		},
		{
			name:     "无括号",
			filename: "Show - 01.mkv",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.ExtractBracketTokens(tt.filename)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractBracketTokens(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestIdentifyReleaseGroup(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "词表命中",
			tokens: []string{"LoliHouse", "WebRip 1080p"},
			want:   "LoliHouse",
		},
		{
			name:   "子串包含即命中",
			tokens: []string{"Sakurato.sub"},
			want:   "Sakurato",
		},
		{
			name:   "参数顺序优先于词表顺序",
			tokens: []string{"SweetSub", "LoliHouse"},
			want:   "SweetSub",
		},
		{
			name:   "未知发布组",
			tokens: []string{"GroupX", "1080p"},
			want:   "",
		},
		{
			name:   "空参数列表",
			tokens: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.IdentifyReleaseGroup(tt.tokens); got != tt.want {
				t.Errorf("IdentifyReleaseGroup(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestIdentifyReleaseGroupCustomVocabulary(t *testing.T) {
	rs := entities.DefaultRuleSet()
	rs.ReleaseGroups = append(rs.ReleaseGroups, "GroupX")
	rules, err := Compile(rs)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if got := rules.IdentifyReleaseGroup([]string{"GroupX"}); got != "GroupX" {
		t.Errorf("IdentifyReleaseGroup = %q, want GroupX", got)
	}
}

func TestExtractTags(t *testing.T) {
	rules := defaultRules(t)

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "保留变体拼写的原词",
			tokens: []string{"WebRip 1080p HEVC10bit AAC"},
			want:   []string{"WebRip", "1080p", "HEVC10bit", "AAC"},
		},
		{
			name:   "跨参数去重保持首见顺序",
			tokens: []string{"1080p HEVC", "HEVC 10bit"},
			want:   []string{"1080p", "HEVC", "10bit"},
		},
		{
			name:   "非标签词被忽略",
			tokens: []string{"LoliHouse", "Fansub Edition"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.ExtractTags(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}
