package entities

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SeriesInfo 单个剧集分组的识别结果。由分析阶段创建，仅同季合并阶段会修改，
// 并入 BangumiInfo 之后视为冻结。
type SeriesInfo struct {
	DirName      string            `json:"dir_name"`                // 样本文件所在目录
	SeriesName   string            `json:"series_name"`             // 剧名
	Season       int               `json:"season,omitempty"`        // 季号，0 表示未识别
	ReleaseGroup string            `json:"release_group,omitempty"` // 发布组，空表示未识别
	Tags         []string          `json:"tags"`                    // 标签，保持首见顺序
	EpisodeCount int               `json:"episode_count"`           // 恒等于 len(Episodes)
	SampleFile   string            `json:"sample_file"`             // 分组内首个文件
	Episodes     map[string]string `json:"episodes"`                // 集号键 -> 文件路径
	Pattern      string            `json:"pattern"`                 // 占位符替换后的分组键
}

// SeasonOrDefault 未识别季号时按第 1 季处理
func (s *SeriesInfo) SeasonOrDefault() int {
	if s.Season > 0 {
		return s.Season
	}
	return 1
}

// SortedEpisodeKeys 返回按字典序排列的集号键。
// 两位补零的数字键天然有序，unknown-N 合成键排在其后。
func (s *SeriesInfo) SortedEpisodeKeys() []string {
	keys := make([]string, 0, len(s.Episodes))
	for k := range s.Episodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasSpecificEpisodes 是否含有至少一个非 "00" 的真实集号
func (s *SeriesInfo) HasSpecificEpisodes() bool {
	for k := range s.Episodes {
		if k != "00" {
			return true
		}
	}
	return false
}

// BangumiInfo 同名番剧的跨季聚合结果
type BangumiInfo struct {
	SeriesName    string              `json:"series_name"`
	SeasonCount   int                 `json:"season_count"`
	TotalEpisodes int                 `json:"total_episodes"`
	ReleaseGroups []string            `json:"release_groups"`
	Tags          []string            `json:"tags"`
	Seasons       map[int]*SeriesInfo `json:"-"`
}

// NewBangumiInfo 创建空的番剧聚合
func NewBangumiInfo(name string) *BangumiInfo {
	return &BangumiInfo{
		SeriesName: name,
		Seasons:    make(map[int]*SeriesInfo),
	}
}

// AddSeason 将一季并入番剧。同一季号已被占用时合并集数表，已有条目在键冲突时保留；
// 每次插入后重新计算季数与总集数，总集数永远由成员重新求和而来。
func (b *BangumiInfo) AddSeason(info *SeriesInfo) {
	num := info.SeasonOrDefault()

	if existing, ok := b.Seasons[num]; ok {
		for key, path := range info.Episodes {
			if _, dup := existing.Episodes[key]; !dup {
				existing.Episodes[key] = path
			}
		}
		existing.EpisodeCount = len(existing.Episodes)
	} else {
		b.Seasons[num] = info
	}

	if info.ReleaseGroup != "" && !containsString(b.ReleaseGroups, info.ReleaseGroup) {
		b.ReleaseGroups = append(b.ReleaseGroups, info.ReleaseGroup)
	}
	for _, tag := range info.Tags {
		if !containsString(b.Tags, tag) {
			b.Tags = append(b.Tags, tag)
		}
	}

	b.SeasonCount = len(b.Seasons)
	b.TotalEpisodes = 0
	for _, season := range b.Seasons {
		b.TotalEpisodes += season.EpisodeCount
	}

	if b.SeriesName == "" {
		b.SeriesName = info.SeriesName
	}
}

// SortedSeasonNumbers 返回升序季号列表
func (b *BangumiInfo) SortedSeasonNumbers() []int {
	nums := make([]int, 0, len(b.Seasons))
	for n := range b.Seasons {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// ToMap 转换为可序列化的嵌套结构，季以 "season_N" 为键
func (b *BangumiInfo) ToMap() map[string]interface{} {
	seasons := make(map[string]*SeriesInfo, len(b.Seasons))
	for num, info := range b.Seasons {
		seasons[fmt.Sprintf("season_%d", num)] = info
	}
	return map[string]interface{}{
		"series_name":    b.SeriesName,
		"season_count":   b.SeasonCount,
		"total_episodes": b.TotalEpisodes,
		"release_groups": b.ReleaseGroups,
		"tags":           b.Tags,
		"seasons":        seasons,
	}
}

// MarshalJSON 使用 ToMap 的结构输出 JSON
func (b *BangumiInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToMap())
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
