package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/catalog"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/export"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/parser"
	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/config"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/scanner"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	output := flag.String("output", "", "结果输出文件")
	format := flag.String("format", "json", "输出格式: json 或 csv")
	playlist := flag.Bool("playlist", false, "为每个分组生成 M3U8 播放列表")
	stats := flag.Bool("stats", false, "显示统计信息")
	merge := flag.Bool("merge", false, "执行同季与跨季合并")
	quiet := flag.Bool("quiet", false, "安静模式，只输出错误与导出结果")
	logLevel := flag.String("log-level", "warn", "日志级别")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bangumi [flags] <directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	directory := flag.Arg(0)

	if err := logger.Init(logger.Options{Level: *logLevel, Output: "console", Format: "text"}); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logger:", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfigFrom(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if *configPath != "" && !*quiet {
		fmt.Printf("Loaded configuration from %s\n", *configPath)
	}

	rules, err := parser.Compile(cfg.EffectiveRuleSet())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error compiling rules:", err)
		os.Exit(1)
	}

	dirScanner := scanner.NewScanner(cfg.EffectiveVideoExtensions())
	exporter := export.NewAppExportService()
	svc := catalog.NewAppCatalogService(rules, dirScanner, exporter)

	if !*quiet {
		fmt.Printf("Scanning directory: %s\n", directory)
	}

	scan, err := svc.ScanDirectory(context.Background(), contracts.ScanRequest{
		Directory: directory,
		Merge:     *merge,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during parsing:", err)
		os.Exit(1)
	}

	if !*quiet {
		printAnalysisResults(scan)
		if *merge {
			printBangumiResults(scan.Bangumi)
		}
	}

	if *stats {
		printStatistics(scan.Series)
	}

	if *output != "" || *playlist {
		resp, err := exporter.Export(contracts.ExportRequest{
			Directory:  directory,
			Format:     contracts.ExportFormat(*format),
			Merge:      *merge,
			OutputPath: *output,
			Playlist:   *playlist,
		}, scan.Series, scan.Bangumi)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error exporting results:", err)
			os.Exit(1)
		}
		if !*quiet {
			if resp.OutputPath != "" {
				fmt.Printf("\nResults exported to %s\n", resp.OutputPath)
			}
			for _, p := range resp.Playlists {
				fmt.Printf("Playlist written: %s\n", p)
			}
		}
	}
}

func printAnalysisResults(scan *contracts.ScanResponse) {
	fmt.Println("=== Bangumi Parser Analysis Results ===")
	fmt.Printf("Found %d series with %d total files\n\n", len(scan.Series), scan.FileCount)

	for _, info := range scan.Series {
		fmt.Printf("Series: %s\n", info.SeriesName)
		if info.Season > 0 {
			fmt.Printf("Season: %d\n", info.Season)
		}
		fmt.Printf("Directory: %s\n", info.DirName)
		fmt.Printf("Release Group: %s\n", orNone(info.ReleaseGroup))
		fmt.Printf("Tags: %s\n", joinOrNone(info.Tags))
		fmt.Printf("Episodes: %d\n", info.EpisodeCount)
		fmt.Printf("Sample file: %s\n", path.Base(info.SampleFile))

		fmt.Println("\nEpisode map:")
		printEpisodePreview(info, "  ")
		fmt.Println(strings.Repeat("-", 50))
	}
}

func printBangumiResults(bangumi []*entities.BangumiInfo) {
	fmt.Println("=== Final Bangumi Analysis Results ===")

	totalEpisodes := 0
	totalSeasons := 0
	for _, b := range bangumi {
		totalEpisodes += b.TotalEpisodes
		totalSeasons += b.SeasonCount
	}
	fmt.Printf("Found %d bangumi series with %d seasons and %d total episodes\n\n",
		len(bangumi), totalSeasons, totalEpisodes)

	for _, b := range bangumi {
		fmt.Printf("Bangumi: %s\n", b.SeriesName)
		fmt.Printf("Seasons: %d\n", b.SeasonCount)
		fmt.Printf("Total Episodes: %d\n", b.TotalEpisodes)
		fmt.Printf("Release Groups: %s\n", joinOrNone(b.ReleaseGroups))
		fmt.Printf("Tags: %s\n", joinOrNone(b.Tags))

		fmt.Println("\nSeason Details:")
		for _, num := range b.SortedSeasonNumbers() {
			season := b.Seasons[num]
			fmt.Printf("  Season %d: %d episodes\n", num, season.EpisodeCount)
			fmt.Printf("    Directory: %s\n", season.DirName)
			fmt.Printf("    Sample: %s\n", path.Base(season.SampleFile))
			printEpisodePreview(season, "      ")
		}
		fmt.Println(strings.Repeat("-", 60))
	}
}

// printEpisodePreview 预览前三集，多余的以计数折叠
func printEpisodePreview(info *entities.SeriesInfo, indent string) {
	keys := info.SortedEpisodeKeys()
	preview := keys
	if len(preview) > 3 {
		preview = preview[:3]
	}
	for _, key := range preview {
		fmt.Printf("%s%s: %s\n", indent, key, path.Base(info.Episodes[key]))
	}
	if len(keys) > 3 {
		fmt.Printf("%s... and %d more episodes\n", indent, len(keys)-3)
	}
}

func printStatistics(series []*entities.SeriesInfo) {
	totalEpisodes := 0
	releaseGroups := make(map[string]int)
	tags := make(map[string]int)

	for _, info := range series {
		totalEpisodes += info.EpisodeCount
		if info.ReleaseGroup != "" {
			releaseGroups[info.ReleaseGroup]++
		}
		for _, tag := range info.Tags {
			tags[tag]++
		}
	}

	fmt.Println("\n=== Statistics ===")
	fmt.Printf("Total series: %d\n", len(series))
	fmt.Printf("Total episodes: %d\n", totalEpisodes)
	if len(series) > 0 {
		fmt.Printf("Average episodes per series: %.1f\n", float64(totalEpisodes)/float64(len(series)))
	}

	if len(releaseGroups) > 0 {
		fmt.Println("\nRelease groups:")
		names := make([]string, 0, len(releaseGroups))
		for name := range releaseGroups {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s: %d series\n", name, releaseGroups[name])
		}
	}

	if len(tags) > 0 {
		fmt.Println("\nMost common tags:")
		type tagCount struct {
			tag   string
			count int
		}
		counts := make([]tagCount, 0, len(tags))
		for tag, count := range tags {
			counts = append(counts, tagCount{tag, count})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].count != counts[j].count {
				return counts[i].count > counts[j].count
			}
			return counts[i].tag < counts[j].tag
		})
		if len(counts) > 10 {
			counts = counts[:10]
		}
		for _, tc := range counts {
			fmt.Printf("  %s: %d\n", tc.tag, tc.count)
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func joinOrNone(list []string) string {
	if len(list) == 0 {
		return "None"
	}
	return strings.Join(list, ", ")
}
