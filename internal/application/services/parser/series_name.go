package parser

import (
	"path"
	"regexp"
	"strings"
)

// UnknownSeriesName 所有推导手段都失败时的固定回退剧名
const UnknownSeriesName = "Unknown Series"

// 括号样式对，用于从文件名中剥离已提取的括号参数
var bracketPairs = [][2]string{
	{"[", "]"},
	{"(", ")"},
	{"【", "】"},
	{"『", "』"},
	{"{", "}"},
}

// 分隔符折叠：连续的 - _ 空白合并为单个空格
var separatorRun = regexp.MustCompile(`[-_\s]+`)

// ResolveSeriesName 推导剧名。
// 优先取目录结构：从最深层目录向上找第一个不匹配排除模式（纯季度目录）的
// 目录名；目录不可用时回退到文件名清洗：剥离集数模式、括号参数、
// 清理模式，折叠分隔符。两条路都落空时返回 UnknownSeriesName。
func (r *Rules) ResolveSeriesName(filePath, baseName string, tokens []string) string {
	if name := r.nameFromDirectory(filePath); name != "" {
		return name
	}
	if name := r.nameFromFilename(baseName, tokens); name != "" {
		return name
	}
	return UnknownSeriesName
}

func (r *Rules) nameFromDirectory(filePath string) string {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == "" {
		return ""
	}

	parts := strings.Split(dir, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		if part == "" {
			continue
		}
		if r.isIgnoredDirectory(part) {
			continue
		}
		return part
	}
	return ""
}

func (r *Rules) isIgnoredDirectory(name string) bool {
	for _, re := range r.ignoreDir {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func (r *Rules) nameFromFilename(baseName string, tokens []string) string {
	clean := baseName

	// 剥离所有集数模式命中片段
	for _, re := range r.episode {
		clean = re.ReplaceAllLiteralString(clean, " ")
	}

	// 按每种括号样式剥离已提取的参数原文
	for _, token := range tokens {
		for _, pair := range bracketPairs {
			clean = strings.ReplaceAll(clean, pair[0]+token+pair[1], "")
		}
	}

	// 应用清理模式（扩展名、年份、季度标记）
	for _, re := range r.cleanup {
		clean = re.ReplaceAllLiteralString(clean, "")
	}

	clean = separatorRun.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}
