package entities

// RuleSet 解析规则集。模式列表按优先级排序，首个匹配生效；
// 词表（发布组、标签）为无序词汇，按配置顺序做子串匹配。
// 每次运行期间不可变，由配置层构造后显式传入各组件。
type RuleSet struct {
	EpisodePatterns   []string `json:"episode_patterns" mapstructure:"episode_patterns"`
	SeasonPatterns    []string `json:"season_patterns" mapstructure:"season_patterns"`
	BracketPatterns   []string `json:"bracket_patterns" mapstructure:"bracket_patterns"`
	CleanupPatterns   []string `json:"cleanup_patterns" mapstructure:"cleanup_patterns"`
	IgnoreDirPatterns []string `json:"ignore_directory_patterns" mapstructure:"ignore_directory_patterns"`
	ReleaseGroups     []string `json:"known_release_groups" mapstructure:"known_release_groups"`
	Tags              []string `json:"common_tags" mapstructure:"common_tags"`
}

// DefaultRuleSet 返回内置默认规则集
func DefaultRuleSet() RuleSet {
	return RuleSet{
		EpisodePatterns: []string{
			`[ \-_\[](\d{1,2})[ \-_\]]`,  // - 01, [01], _01_
			`[Ee][Pp]?(\d{1,2})`,         // EP01, E01, ep01
			`第(\d{1,2})[话話集]`,            // 第01话, 第01集
			`(\d{1,2})[话話集]`,             // 01话, 01集
			`- (\d{1,2})\.(?:mkv|mp4|avi|mov|wmv|flv|webm)`, // Series Name - 01.mkv
			`S\d+E(\d{1,2})`,             // S01E01, S1E1
			`\.(\d{1,2})\.(?:mkv|mp4|avi|mov|wmv|flv|webm)`, // Series.01.mkv
			`_(\d{1,2})_`,                // Series_01_
			`\s(\d{1,2})\s`,              // Series 01
			`(?:第|Episode|Ep)(\d{1,2})`,  // 第01, Episode01, Ep01
		},
		SeasonPatterns: []string{
			`S(\d{1,2})`,         // S01, S1
			`Season\s*(\d{1,2})`, // Season 01, Season 1
			`第(\d{1,2})[季期]`,     // 第1季, 第1期
			`(\d{1,2})[季期]`,      // 1季, 1期
		},
		BracketPatterns: []string{
			`\[(.*?)\]`, // 方括号
			`\((.*?)\)`, // 圆括号
			`【(.*?)】`,   // 全角方括号
			`『(.*?)』`,   // 全角书名号
			`\{(.*?)\}`, // 花括号
		},
		CleanupPatterns: []string{
			`\.mkv|\.mp4|\.avi|\.mov|\.wmv|\.flv|\.webm`, // 扩展名
			`\(\d{4}\)`,      // 括号年份，如 (2013)
			`\d{4}`,          // 裸年份
			`Season\s*\d+`,   // Season 标记
			`第\d+[季期]`,       // 中文季度标记
			`\d+[季期]`,        // 无「第」的中文季度标记
		},
		IgnoreDirPatterns: []string{
			`^Season\s*\d+$`, // "Season 01"、"Season 1" 等纯季度目录
			`^S\d+$`,         // "S01"、"S1"
			`^第\d+[季期]$`,     // "第1季"、"第1期"
			`^\d+[季期]$`,      // "1季"、"1期"
		},
		ReleaseGroups: []string{
			"LoliHouse", "Sakurato", "Nekomoe kissaten", "ANi", "NC-Raws",
			"Leopard-Raws", "VCB-Studio", "SweetSub", "Lilith-Raws",
			"GM-Team", "MCE", "KTXP", "Crimson", "Philosophy-Raws",
		},
		Tags: []string{
			"WebRip", "BDRip", "HEVC", "AVC", "x264", "x265",
			"10bit", "8bit", "1080p", "720p", "480p", "4K",
			"AAC", "FLAC", "AC3", "DTS", "SRTx2", "ASSx2",
			"CHS", "CHT", "JP", "ENG", "GB", "BIG5",
		},
	}
}

// Extend 在默认规则基础上追加自定义条目。列表型配置采用追加语义：
// 自定义条目排在默认条目之后，不替换默认值。
func (r RuleSet) Extend(custom RuleSet) RuleSet {
	r.EpisodePatterns = append(r.EpisodePatterns, custom.EpisodePatterns...)
	r.SeasonPatterns = append(r.SeasonPatterns, custom.SeasonPatterns...)
	r.BracketPatterns = append(r.BracketPatterns, custom.BracketPatterns...)
	r.CleanupPatterns = append(r.CleanupPatterns, custom.CleanupPatterns...)
	r.IgnoreDirPatterns = append(r.IgnoreDirPatterns, custom.IgnoreDirPatterns...)
	r.ReleaseGroups = append(r.ReleaseGroups, custom.ReleaseGroups...)
	r.Tags = append(r.Tags, custom.Tags...)
	return r
}
