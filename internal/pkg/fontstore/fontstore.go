package fontstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akshara-fonts/akshara/app/models"
)

// Store resolves font binaries on local disk. The directory layout is one
// folder per font id holding the webfont weights and a download archive:
//
//	fonts/hind/hind-400.woff2
//	fonts/hind/hind-700.woff2
//	fonts/hind/hind.zip
type Store struct {
	dir string
}

var ErrFileMissing = errors.New("font file missing from store")

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// WebfontPath returns the on-disk path of a single weight, for @font-face
// serving.
func (s *Store) WebfontPath(fontID string, weight int) (string, error) {
	path := filepath.Join(s.dir, fontID, fmt.Sprintf("%s-%d.woff2", fontID, weight))
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileMissing
	}
	return path, nil
}

// DownloadPath returns the on-disk path of the font's download archive.
func (s *Store) DownloadPath(fontID string) (string, error) {
	path := filepath.Join(s.dir, fontID, fontID+".zip")
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileMissing
	}
	return path, nil
}

// DownloadFilename is the attachment name presented to the client.
func (s *Store) DownloadFilename(font *models.Font) string {
	return font.ID + ".zip"
}
