package parser

import (
	"fmt"
	"sort"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// BangumiCollection 保持首见顺序的番剧聚合集合
type BangumiCollection struct {
	Order []string
	Items map[string]*entities.BangumiInfo
}

// List 按首见顺序返回所有番剧
func (c *BangumiCollection) List() []*entities.BangumiInfo {
	out := make([]*entities.BangumiInfo, 0, len(c.Order))
	for _, name := range c.Order {
		out = append(out, c.Items[name])
	}
	return out
}

type seasonKey struct {
	name   string
	dir    string
	season int
}

// MergeSameSeason 同季合并：把 (剧名, 目录, 季号) 相同的碎片分组并入一条。
// 单元素分组原样通过，因此对已合并结果再次执行是幂等的。
// 多元素分组按 (集数多者优先, 含真实集号者优先) 稳定降序排出合并基底：
//   - "00" 集重命名为 unknown-N 合成键，N 从 1 起向上探测空位，绝不覆盖；
//   - 其余集号仅在基底缺失时插入，键冲突时基底胜出；
//   - 标签按优先级顺序求并集，发布组仅在基底为空时回填；
//   - 集数在全部折叠完成后按集数表大小重新计算。
func MergeSameSeason(in *SeriesCollection) *SeriesCollection {
	groups := make(map[seasonKey][]*entities.SeriesInfo)
	var keyOrder []seasonKey

	for _, pattern := range in.Order {
		info := in.Items[pattern]
		key := seasonKey{
			name:   info.SeriesName,
			dir:    info.DirName,
			season: info.SeasonOrDefault(),
		}
		if _, ok := groups[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], info)
	}

	out := NewSeriesCollection()

	for _, key := range keyOrder {
		members := groups[key]
		if len(members) == 1 {
			out.Add(members[0].Pattern, members[0])
			continue
		}

		sort.SliceStable(members, func(i, j int) bool {
			if members[i].EpisodeCount != members[j].EpisodeCount {
				return members[i].EpisodeCount > members[j].EpisodeCount
			}
			return members[i].HasSpecificEpisodes() && !members[j].HasSpecificEpisodes()
		})

		base := members[0]
		for _, info := range members[1:] {
			logger.Debug("合并同季碎片分组",
				"series", info.SeriesName,
				"episodes", info.EpisodeCount,
				"into", base.EpisodeCount)
			foldInto(base, info)
		}
		base.EpisodeCount = len(base.Episodes)
		out.Add(base.Pattern, base)
	}

	return out
}

// foldInto 把 info 的内容折叠进基底 base
func foldInto(base, info *entities.SeriesInfo) {
	for _, key := range info.SortedEpisodeKeys() {
		filePath := info.Episodes[key]
		if key == "00" {
			base.Episodes[nextSyntheticKey(base.Episodes)] = filePath
			continue
		}
		if _, exists := base.Episodes[key]; !exists {
			base.Episodes[key] = filePath
		}
	}

	for _, tag := range info.Tags {
		if !tagPresent(base.Tags, tag) {
			base.Tags = append(base.Tags, tag)
		}
	}

	if base.ReleaseGroup == "" && info.ReleaseGroup != "" {
		base.ReleaseGroup = info.ReleaseGroup
	}
}

// nextSyntheticKey 线性探测最小可用的 unknown-N 合成键
func nextSyntheticKey(episodes map[string]string) string {
	for n := 1; ; n++ {
		key := fmt.Sprintf("unknown-%02d", n)
		if _, taken := episodes[key]; !taken {
			return key
		}
	}
}

func tagPresent(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MergeCrossSeason 跨季合并：按剧名折叠为 BangumiInfo，
// 各 SeriesInfo 按遭遇顺序以 season-or-1 插入季槽位。
func MergeCrossSeason(in *SeriesCollection) *BangumiCollection {
	out := &BangumiCollection{
		Items: make(map[string]*entities.BangumiInfo),
	}

	for _, pattern := range in.Order {
		info := in.Items[pattern]
		name := info.SeriesName

		bangumi, ok := out.Items[name]
		if !ok {
			bangumi = entities.NewBangumiInfo(name)
			out.Items[name] = bangumi
			out.Order = append(out.Order, name)
		}
		bangumi.AddSeason(info)
	}

	return out
}
