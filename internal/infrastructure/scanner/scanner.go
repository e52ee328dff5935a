package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
	"github.com/leafmoes/bangumi-catalog/pkg/utils/fileutil"
)

// Scanner 遍历目录收集视频文件
type Scanner struct {
	videoExts []string
}

// NewScanner 创建扫描器，exts 为空时使用内置默认扩展名
func NewScanner(exts []string) *Scanner {
	return &Scanner{videoExts: exts}
}

// ScanDirectory 递归遍历 root，返回相对于 root 的视频文件路径列表。
// 路径统一使用正斜杠分隔并按字典序排序，保证跨平台结果一致。
// root 不存在或不是目录时返回 NOT_FOUND 业务错误。
func (s *Scanner) ScanDirectory(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(
			contracts.ErrorCodeNotFound, "扫描目录不存在: "+root, err)
	}
	if !info.IsDir() {
		return nil, contracts.NewServiceError(
			contracts.ErrorCodeInvalidRequest, "扫描路径不是目录: "+root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 子目录不可读时跳过而非中断整个扫描
			logger.Warn("目录不可读，已跳过", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.IsVideoFile(d.Name(), s.videoExts) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(
			contracts.ErrorCodeInternalError, "目录遍历失败: "+root, err)
	}

	sort.Strings(files)
	logger.Debug("目录扫描完成", "root", root, "files", len(files))
	return files, nil
}
