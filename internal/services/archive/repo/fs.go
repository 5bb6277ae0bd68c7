// Package repo persists artifact pairs on the local filesystem
package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	perr "draftforge/internal/platform/errors"
	"draftforge/internal/services/archive/domain"
)

// maxSuffix bounds the per-date probe; two-digit suffixes only
const maxSuffix = 99

// FS is the filesystem archive
type FS struct {
	baseDir string
}

// NewFS constructs the filesystem archive rooted at baseDir
func NewFS(baseDir string) *FS {
	return &FS{baseDir: baseDir}
}

// Allocate claims the smallest free YYYYMMDD-NN slot for date. Claiming IS
// the directory creation: os.Mkdir fails with ErrExist on a taken suffix, so
// two concurrent allocators can never both win the same slot
func (f *FS) Allocate(date time.Time) (domain.Slot, error) {
	if err := os.MkdirAll(f.baseDir, 0o755); err != nil {
		return domain.Slot{}, perr.Wrap(err, perr.ErrorCodeArchive, "archive base dir create failed")
	}
	day := date.Format("20060102")
	for nn := 1; nn <= maxSuffix; nn++ {
		name := fmt.Sprintf("%s-%02d", day, nn)
		path := filepath.Join(f.baseDir, name)
		err := os.Mkdir(path, 0o755)
		if err == nil {
			return domain.Slot{FolderName: name, FolderPath: path, FileBase: name}, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return domain.Slot{}, perr.Wrapf(err, perr.ErrorCodeArchive, "archive mkdir %s failed", name)
	}
	return domain.Slot{}, perr.Archivef("archive date %s exhausted all %d slots", day, maxSuffix)
}

// WritePair writes both artifact files into slot. Callers finish code
// generation before allocating, so a write failure here can only leave a
// partial pair behind on I/O error, which is surfaced as a persistence
// failure
func (f *FS) WritePair(slot domain.Slot, specJSON []byte, code, ext string) error {
	jsonPath := filepath.Join(slot.FolderPath, slot.FileBase+".json")
	if err := os.WriteFile(jsonPath, specJSON, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeArchive, "archive write %s failed", jsonPath)
	}
	codePath := filepath.Join(slot.FolderPath, slot.FileBase+"."+ext)
	if err := os.WriteFile(codePath, []byte(code), 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeArchive, "archive write %s failed", codePath)
	}
	return nil
}
