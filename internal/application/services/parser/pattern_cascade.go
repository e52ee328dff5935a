package parser

import (
	"path"
	"strconv"

	"github.com/leafmoes/bangumi-catalog/pkg/utils/strutil"
)

// EpisodePlaceholder 集数占位符。同一剧集的不同集替换后得到相同的分组键。
const EpisodePlaceholder = " {EP_NUM} "

// ExtractEpisode 按优先级级联匹配集数模式。
// 匹配判定针对文件名本身进行；命中后在完整路径上把该模式的所有命中片段
// 替换为占位符，返回 (分组键, 集数)。全部未命中时返回 (原路径, 0)。
func (r *Rules) ExtractEpisode(filePath string) (string, int) {
	base := path.Base(filePath)

	for _, re := range r.episode {
		m := re.FindStringSubmatch(base)
		if len(m) < 2 {
			continue
		}
		episode := parseNumber(m[1])
		return re.ReplaceAllLiteralString(filePath, EpisodePlaceholder), episode
	}

	return filePath, 0
}

// ExtractSeason 从路径中提取季号。先查完整路径再查文件名，
// 每段文本内按模式顺序短路匹配。未命中返回 0。
func (r *Rules) ExtractSeason(filePath string) int {
	for _, text := range []string{filePath, path.Base(filePath)} {
		for _, re := range r.season {
			if m := re.FindStringSubmatch(text); len(m) > 1 {
				return parseNumber(m[1])
			}
		}
	}
	return 0
}

// parseNumber 解析捕获组数值。十进制优先；非纯数字时尝试中文数字
// （默认规则只捕获 \d，自定义规则可捕获「第三季」类写法）。
func parseNumber(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return strutil.ChineseToNumber(s)
}
