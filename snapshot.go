package backdrop

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultSnapshotDir is where hosts write snapshots unless told otherwise.
const DefaultSnapshotDir = "snapshots"

// SnapshotPath returns dir/<stamp>_<label>.png for a capture taken at t.
func SnapshotPath(dir, label string, t time.Time) string {
	stamp := t.Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, SanitizeLabel(label)))
}

// WriteSnapshot encodes img as PNG under dir with a timestamped, labeled file
// name, creating dir if needed. It returns the written path. An existing file
// is never overwritten: a repeated name gets a _2, _3, ... suffix.
func WriteSnapshot(dir, label string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("backdrop: snapshot: mkdir %s: %w", dir, err)
	}
	path := uniquePath(SnapshotPath(dir, label, time.Now()))
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	logger.Info("snapshot written", zap.String("path", path))
	return path, nil
}

// uniquePath returns path, or the first free variant of it with a numeric suffix
// before the extension.
func uniquePath(path string) string {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("backdrop: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("backdrop: encode %s: %w", path, err)
	}
	return f.Close()
}

// SanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
