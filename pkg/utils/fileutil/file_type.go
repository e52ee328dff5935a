package fileutil

import "strings"

// DefaultVideoExtensions 默认支持的视频扩展名列表
var DefaultVideoExtensions = []string{
	"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm",
}

// IsVideoFile 检查文件是否为视频文件
// filename: 文件名或完整路径
// videoExts: 视频扩展名列表，为空时使用默认列表
func IsVideoFile(filename string, videoExts []string) bool {
	ext := ExtractExtension(filename)
	if ext == "" {
		return false
	}

	exts := videoExts
	if len(exts) == 0 {
		exts = DefaultVideoExtensions
	}

	for _, videoExt := range exts {
		if strings.EqualFold(ext, videoExt) {
			return true
		}
	}
	return false
}

// ExtractExtension 从文件名中提取扩展名（不带点号，小写）
// 例如："video.mp4" -> "mp4"，"movie.MKV" -> "mkv"
func ExtractExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
