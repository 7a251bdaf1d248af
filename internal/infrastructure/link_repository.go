package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/igor-tools/igor-install/internal/domain"
)

type SymlinkRepository struct {
	logger domain.Logger
}

// NewSymlinkRepository creates a link repository backed by the host
// filesystem's symbolic-link primitive.
func NewSymlinkRepository(logger domain.Logger) domain.LinkRepository {
	return &SymlinkRepository{
		logger: logger,
	}
}

func (s *SymlinkRepository) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListChildren enumerates the immediate children of dir. Nested content is
// not walked: linking a directory carries its whole subtree. Children that
// are neither regular files nor directories are skipped with a warning.
func (s *SymlinkRepository) ListChildren(dir string) ([]domain.Child, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", dir, err)
	}

	var children []domain.Child
	for _, entry := range entries {
		child := domain.Child{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		}

		switch {
		case entry.Type().IsRegular():
			child.Kind = domain.LinkFile
		case entry.IsDir():
			child.Kind = domain.LinkDirectory
		default:
			s.logger.Warning("Skipping %s: not a regular file or directory", child.Path)
			continue
		}

		children = append(children, child)
	}

	return children, nil
}

// CreateLink creates a symbolic link at dest pointing back at source. The
// kind is accepted for interface symmetry with hosts whose file and directory
// link primitives differ; os.Symlink covers both here.
func (s *SymlinkRepository) CreateLink(source, dest string, kind domain.LinkKind) error {
	if err := os.Symlink(source, dest); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", source, dest, err)
	}
	return nil
}
