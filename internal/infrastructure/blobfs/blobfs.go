// Package blobfs stores photo payloads on the local filesystem under a fixed
// root, addressed by logical URLs of the form /uploads/<subfolder>/<filename>.
package blobfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fotolio/internal/domain/repository/blob"
	"fotolio/pkg/logger"
)

const urlPrefix = "/uploads"

type Config struct {
	Root string `yaml:"root"`
}

type Store struct {
	root string
	log  *logger.Logger
}

func New(cfg Config, log *logger.Logger) (*Store, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving blob root: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob root %s: %w", root, err)
	}

	return &Store{
		root: root,
		log:  log,
	}, nil
}

// URL returns the logical URL Save would produce for the pair.
func (s *Store) URL(subfolder, filename string) string {
	return path.Join(urlPrefix, subfolder, filename)
}

// Save writes the payload to root/subfolder/filename and returns the logical
// URL. The write goes through a uniquely named temp file and a rename, so a
// concurrent reader never observes a half-written blob. An existing file with
// the same name is silently overwritten.
func (s *Store) Save(_ context.Context, data []byte, filename, subfolder string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", errors.New("blob filename must not be empty")
	}

	dir, err := s.physicalPath(path.Join(urlPrefix, subfolder))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error("failed to create blob directory", "dir", dir, "err", err)

		return "", fmt.Errorf("creating blob directory: %w", err)
	}

	target := filepath.Join(dir, filepath.Base(filename))
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.log.Error("failed to write blob", "path", tmp, "err", err)

		return "", fmt.Errorf("writing blob: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		s.log.Error("failed to commit blob", "path", target, "err", err)

		return "", fmt.Errorf("committing blob: %w", err)
	}

	url := s.URL(subfolder, filepath.Base(filename))
	s.log.Info("blob saved", "url", url, "bytes", len(data))

	return url, nil
}

// Load returns the payload stored at the logical URL, or blob.ErrNotFound
// when no such file exists.
func (s *Store) Load(_ context.Context, url string) ([]byte, error) {
	p, err := s.physicalPath(url)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, blob.ErrNotFound
		}
		s.log.Error("failed to read blob", "url", url, "err", err)

		return nil, fmt.Errorf("reading blob: %w", err)
	}

	return data, nil
}

// Delete removes the file at the logical URL. A missing file reports false
// without error; any other failure propagates.
func (s *Store) Delete(_ context.Context, url string) (bool, error) {
	p, err := s.physicalPath(url)
	if err != nil {
		return false, err
	}

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("blob already absent", "url", url)

			return false, nil
		}
		s.log.Error("failed to delete blob", "url", url, "err", err)

		return false, fmt.Errorf("deleting blob: %w", err)
	}

	s.log.Info("blob deleted", "url", url)

	return true, nil
}

// physicalPath maps a logical URL to a location under the store root. The
// result must stay inside the root.
func (s *Store) physicalPath(url string) (string, error) {
	rel := strings.TrimPrefix(url, urlPrefix)
	rel = strings.TrimPrefix(rel, "/")

	p := filepath.Join(s.root, filepath.FromSlash(rel))
	if p != s.root && !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("blob url %q escapes the storage root", url)
	}

	return p, nil
}
