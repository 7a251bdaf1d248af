package infrastructure

import (
	"fmt"
	"os"

	"github.com/igor-tools/igor-install/internal/domain"
)

type DirVersionRepository struct {
	logger domain.Logger
	env    domain.HostEnvironment
}

// NewDirVersionRepository creates a version repository that discovers
// installed Igor Pro versions as subdirectories of the install root.
func NewDirVersionRepository(logger domain.Logger, env domain.HostEnvironment) domain.VersionRepository {
	return &DirVersionRepository{
		logger: logger,
		env:    env,
	}
}

func (r *DirVersionRepository) ListVersions() ([]string, error) {
	root, err := r.env.InstallRoot()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read install root %s: %w", root, err)
	}

	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions = append(versions, entry.Name())
	}

	r.logger.Debug("Discovered %d Igor Pro version(s) under %s", len(versions), root)
	return versions, nil
}
