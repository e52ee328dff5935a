package parser

import (
	"fmt"
	"path"
	"sort"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

// GroupedFile 分组内的单个文件
type GroupedFile struct {
	Episode int
	Path    string
}

// SeriesGroups 按分组键归类的候选文件，Order 保持分组的发现顺序
type SeriesGroups struct {
	Order  []string
	Groups map[string][]GroupedFile
}

// SeriesCollection 保持发现顺序的 SeriesInfo 集合。
// 合并阶段依赖这个顺序做确定性的优先级判定。
type SeriesCollection struct {
	Order []string
	Items map[string]*entities.SeriesInfo
}

// NewSeriesCollection 创建空集合
func NewSeriesCollection() *SeriesCollection {
	return &SeriesCollection{
		Items: make(map[string]*entities.SeriesInfo),
	}
}

// Add 追加一条记录，键已存在时覆盖且不重复记序
func (c *SeriesCollection) Add(pattern string, info *entities.SeriesInfo) {
	if _, ok := c.Items[pattern]; !ok {
		c.Order = append(c.Order, pattern)
	}
	c.Items[pattern] = info
}

// List 按发现顺序返回所有记录
func (c *SeriesCollection) List() []*entities.SeriesInfo {
	out := make([]*entities.SeriesInfo, 0, len(c.Order))
	for _, pattern := range c.Order {
		out = append(out, c.Items[pattern])
	}
	return out
}

// Len 记录数
func (c *SeriesCollection) Len() int {
	return len(c.Order)
}

// GroupSeries 把候选文件按占位符分组键归类。
// 每组内按集数升序稳定排序：集数相同的文件保持输入顺序，
// 这决定了后续哪个文件成为分组的样本文件。
func (r *Rules) GroupSeries(files []string) *SeriesGroups {
	groups := &SeriesGroups{
		Groups: make(map[string][]GroupedFile),
	}

	for _, file := range files {
		pattern, episode := r.ExtractEpisode(file)
		if _, ok := groups.Groups[pattern]; !ok {
			groups.Order = append(groups.Order, pattern)
		}
		groups.Groups[pattern] = append(groups.Groups[pattern], GroupedFile{
			Episode: episode,
			Path:    file,
		})
	}

	for _, pattern := range groups.Order {
		list := groups.Groups[pattern]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Episode < list[j].Episode
		})
	}

	return groups
}

// AnalyzeSeries 为每个分组构建 SeriesInfo：以组内首个文件为样本，
// 提取目录、括号参数、发布组、标签、季号与剧名，并生成集数表。
func (r *Rules) AnalyzeSeries(groups *SeriesGroups) *SeriesCollection {
	collection := NewSeriesCollection()

	for _, pattern := range groups.Order {
		videos := groups.Groups[pattern]
		sample := videos[0].Path
		baseName := path.Base(sample)

		tokens := r.ExtractBracketTokens(baseName)

		info := &entities.SeriesInfo{
			Pattern:      pattern,
			SampleFile:   sample,
			DirName:      dirOf(sample),
			ReleaseGroup: r.IdentifyReleaseGroup(tokens),
			Tags:         r.ExtractTags(tokens),
			Season:       r.ExtractSeason(sample),
			SeriesName:   r.ResolveSeriesName(sample, baseName, tokens),
			Episodes:     make(map[string]string, len(videos)),
		}

		for _, v := range videos {
			info.Episodes[FormatEpisodeKey(v.Episode)] = v.Path
		}
		info.EpisodeCount = len(info.Episodes)

		collection.Add(pattern, info)
	}

	return collection
}

// FormatEpisodeKey 集号键格式：两位补零，超过两位时按实际位数输出，
// 绝不截断（如 5 -> "05"，112 -> "112"）。
func FormatEpisodeKey(episode int) string {
	return fmt.Sprintf("%02d", episode)
}

func dirOf(filePath string) string {
	dir := path.Dir(filePath)
	if dir == "." {
		return ""
	}
	return dir
}
