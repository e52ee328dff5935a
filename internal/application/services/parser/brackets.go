package parser

import "strings"

// ExtractBracketTokens 提取文件名中所有括号包裹的参数。
// 每种括号模式独立扫描，结果按「模式顺序 + 出现顺序」排列；
// 此阶段不去重，标签去重在分类时完成。
func (r *Rules) ExtractBracketTokens(name string) []string {
	var tokens []string
	for _, re := range r.bracket {
		for _, m := range re.FindAllStringSubmatch(name, -1) {
			if len(m) > 1 {
				tokens = append(tokens, m[1])
			}
		}
	}
	return tokens
}

// IdentifyReleaseGroup 从括号参数中识别发布组。
// 外层按参数顺序、内层按词表顺序做子串匹配，首个命中即返回；
// 每个文件至多识别出一个发布组，未命中返回空串。
func (r *Rules) IdentifyReleaseGroup(tokens []string) string {
	for _, token := range tokens {
		for _, group := range r.releaseGroups {
			if strings.Contains(token, group) {
				return group
			}
		}
	}
	return ""
}

// ExtractTags 从括号参数中提取标签。参数按空白切词，
// 词中含有任一词表条目即视为标签；保留原词而非词表条目
// （"HEVC10bit" 这类变体拼写按原样归为一个标签），按首见顺序去重。
func (r *Rules) ExtractTags(tokens []string) []string {
	var tags []string
	seen := make(map[string]struct{})

	for _, token := range tokens {
		for _, word := range strings.Fields(token) {
			if !r.wordIsTag(word) {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			tags = append(tags, word)
		}
	}
	return tags
}

func (r *Rules) wordIsTag(word string) bool {
	for _, tag := range r.tags {
		if strings.Contains(word, tag) {
			return true
		}
	}
	return false
}
