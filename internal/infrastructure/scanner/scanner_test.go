package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
)

func makeTree(t *testing.T, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("建目录失败: %v", err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("建文件失败: %v", err)
		}
	}
	return root
}

func TestScanDirectory(t *testing.T) {
	root := makeTree(t, []string{
		"Show/Season 1/Show - 01.mkv",
		"Show/Season 1/Show - 02.mkv",
		"Show/Season 1/Show - 01.ass",
		"Show/poster.jpg",
		"Other/Other - 01.mp4",
	})

	s := NewScanner(nil)
	files, err := s.ScanDirectory(root)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	want := []string{
		"Other/Other - 01.mp4",
		"Show/Season 1/Show - 01.mkv",
		"Show/Season 1/Show - 02.mkv",
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestScanDirectoryCustomExtensions(t *testing.T) {
	root := makeTree(t, []string{
		"Show/Show - 01.mkv",
		"Show/Show - 02.ts",
	})

	s := NewScanner([]string{"ts"})
	files, err := s.ScanDirectory(root)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if len(files) != 1 || files[0] != "Show/Show - 02.ts" {
		t.Errorf("files = %v, want 仅 ts 文件", files)
	}
}

func TestScanDirectoryMissingRoot(t *testing.T) {
	s := NewScanner(nil)
	_, err := s.ScanDirectory(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}

	var serr *contracts.ServiceError
	if !errors.As(err, &serr) || serr.Code != contracts.ErrorCodeNotFound {
		t.Errorf("error = %v, want NOT_FOUND 业务错误", err)
	}
}

func TestScanDirectoryNotADirectory(t *testing.T) {
	root := makeTree(t, []string{"file.mkv"})

	s := NewScanner(nil)
	_, err := s.ScanDirectory(filepath.Join(root, "file.mkv"))
	if err == nil {
		t.Fatal("expected error for non-directory root")
	}

	var serr *contracts.ServiceError
	if !errors.As(err, &serr) || serr.Code != contracts.ErrorCodeInvalidRequest {
		t.Errorf("error = %v, want INVALID_REQUEST 业务错误", err)
	}
}
