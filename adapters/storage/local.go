package storage

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/serenoapp/server/domain/repositories"
)

// LocalStore is a filesystem-backed AudioStore. Artifacts live flat under
// a root directory and are exposed at a URL path mirroring the filename.
type LocalStore struct {
	root      string
	urlPrefix string
	logger    *zap.Logger
}

var _ repositories.AudioStore = (*LocalStore)(nil)

// NewLocalStore creates the root directory if needed and returns a store
// serving URLs under urlPrefix (e.g. "/uploads").
func NewLocalStore(root string, urlPrefix string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio storage root: %w", err)
	}
	return &LocalStore{
		root:      root,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		logger:    logger,
	}, nil
}

func (s *LocalStore) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.root, filename))
	return err == nil
}

func (s *LocalStore) Save(filename string, data []byte) error {
	dest := filepath.Join(s.root, filename)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	s.logger.Info("Audio file saved",
		zap.String("filename", filename),
		zap.Int("bytes", len(data)))
	return nil
}

func (s *LocalStore) RandomExisting() (string, bool) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Error("Failed to list audio storage root", zap.Error(err))
		return "", false
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".mp3") {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return "", false
	}
	return files[rand.Intn(len(files))], true
}

func (s *LocalStore) URL(filename string) string {
	return path.Join(s.urlPrefix, filename)
}
