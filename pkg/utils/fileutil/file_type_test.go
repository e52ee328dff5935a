package fileutil

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		exts     []string
		expected bool
	}{
		{name: "mkv文件", filename: "Show - 01.mkv", expected: true},
		{name: "大写扩展名", filename: "movie.MP4", expected: true},
		{name: "字幕文件", filename: "Show - 01.ass", expected: false},
		{name: "无扩展名", filename: "README", expected: false},
		{name: "点号结尾", filename: "broken.", expected: false},
		{name: "自定义扩展名", filename: "clip.rmvb", exts: []string{"rmvb"}, expected: true},
		{name: "自定义列表不含mkv", filename: "clip.mkv", exts: []string{"rmvb"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVideoFile(tt.filename, tt.exts); got != tt.expected {
				t.Errorf("IsVideoFile(%q, %v) = %v, want %v", tt.filename, tt.exts, got, tt.expected)
			}
		})
	}
}

func TestExtractExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"video.mp4", "mp4"},
		{"movie.MKV", "mkv"},
		{"/path/to/file.AVI", "avi"},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractExtension(tt.input); got != tt.expected {
				t.Errorf("ExtractExtension(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
