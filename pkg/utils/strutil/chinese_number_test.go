package strutil

import "testing"

func TestChineseToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "阿拉伯数字", input: "12", expected: 12},
		{name: "单个中文数字", input: "三", expected: 3},
		{name: "十", input: "十", expected: 10},
		{name: "十一", input: "十一", expected: 11},
		{name: "十九", input: "十九", expected: 19},
		{name: "二十", input: "二十", expected: 20},
		{name: "二十三", input: "二十三", expected: 23},
		{name: "九十九", input: "九十九", expected: 99},
		{name: "空字符串", input: "", expected: 0},
		{name: "非数字", input: "abc", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChineseToNumber(tt.input); got != tt.expected {
				t.Errorf("ChineseToNumber(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
