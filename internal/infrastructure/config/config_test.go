package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Errorf("Server.Mode = %q, want debug", cfg.Server.Mode)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Scheduler.Enabled {
		t.Error("Scheduler.Enabled = true, want false")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: release
scan:
  video_extensions:
    - mkv
    - ts
`)

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	exts := cfg.EffectiveVideoExtensions()
	if len(exts) != 2 || exts[0] != "mkv" || exts[1] != "ts" {
		t.Errorf("EffectiveVideoExtensions = %v, want [mkv ts]", exts)
	}
}

func TestEffectiveRuleSetAppendsCustomEntries(t *testing.T) {
	path := writeConfigFile(t, `
rules:
  episode_patterns:
    - '第([一二三四五六七八九十]+)話'
  known_release_groups:
    - GroupX
`)

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}

	defaults := entities.DefaultRuleSet()
	rs := cfg.EffectiveRuleSet()

	// 追加语义：默认条目在前，自定义条目在后
	if len(rs.EpisodePatterns) != len(defaults.EpisodePatterns)+1 {
		t.Fatalf("EpisodePatterns 长度 = %d, want %d",
			len(rs.EpisodePatterns), len(defaults.EpisodePatterns)+1)
	}
	if got := rs.EpisodePatterns[len(rs.EpisodePatterns)-1]; got != "第([一二三四五六七八九十]+)話" {
		t.Errorf("追加的模式 = %q", got)
	}
	if got := rs.ReleaseGroups[len(rs.ReleaseGroups)-1]; got != "GroupX" {
		t.Errorf("追加的发布组 = %q", got)
	}
	if rs.EpisodePatterns[0] != defaults.EpisodePatterns[0] {
		t.Errorf("默认模式被改写: %q", rs.EpisodePatterns[0])
	}
}

func TestLoadConfigMalformedFallsBackToDefaults(t *testing.T) {
	path := writeConfigFile(t, "server: [not: a: mapping\n")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 默认 8080", cfg.Server.Port)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 默认 8080", cfg.Server.Port)
	}
}
