package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

// Rules 编译后的规则集。模式在构造时一次性编译，运行期间只读，
// 可被多个 goroutine 并发使用。
type Rules struct {
	episode   []*regexp.Regexp
	season    []*regexp.Regexp
	bracket   []*regexp.Regexp
	cleanup   []*regexp.Regexp
	ignoreDir []*regexp.Regexp

	releaseGroups []string
	tags          []string

	source entities.RuleSet
}

// Compile 编译规则集。集数/季度/清理/目录排除模式统一按忽略大小写编译，
// 括号模式保持原样。任何一条模式非法都会返回错误。
func Compile(rs entities.RuleSet) (*Rules, error) {
	r := &Rules{
		releaseGroups: rs.ReleaseGroups,
		tags:          rs.Tags,
		source:        rs,
	}

	var err error
	if r.episode, err = compileAll(rs.EpisodePatterns, true); err != nil {
		return nil, fmt.Errorf("episode pattern: %w", err)
	}
	if r.season, err = compileAll(rs.SeasonPatterns, true); err != nil {
		return nil, fmt.Errorf("season pattern: %w", err)
	}
	if r.bracket, err = compileAll(rs.BracketPatterns, false); err != nil {
		return nil, fmt.Errorf("bracket pattern: %w", err)
	}
	if r.cleanup, err = compileAll(rs.CleanupPatterns, true); err != nil {
		return nil, fmt.Errorf("cleanup pattern: %w", err)
	}
	if r.ignoreDir, err = compileAll(rs.IgnoreDirPatterns, true); err != nil {
		return nil, fmt.Errorf("ignore directory pattern: %w", err)
	}
	return r, nil
}

// MustCompile 编译默认规则集，仅供测试与默认路径使用
func MustCompile(rs entities.RuleSet) *Rules {
	r, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return r
}

// Source 返回编译前的规则集
func (r *Rules) Source() entities.RuleSet {
	return r.source
}

func compileAll(patterns []string, caseInsensitive bool) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		expr := p
		if caseInsensitive && !strings.HasPrefix(p, "(?i)") {
			expr = "(?i)" + p
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
