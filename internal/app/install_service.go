package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/igor-tools/igor-install/internal/domain"
)

type InstallServiceImpl struct {
	logger   domain.Logger
	env      domain.HostEnvironment
	sources  domain.SourceRepository
	versions domain.VersionRepository
	links    domain.LinkRepository
	input    io.Reader
}

// NewInstallService creates a new install service
func NewInstallService(
	logger domain.Logger,
	env domain.HostEnvironment,
	sources domain.SourceRepository,
	versions domain.VersionRepository,
	links domain.LinkRepository,
) domain.InstallService {
	return &InstallServiceImpl{
		logger:   logger,
		env:      env,
		sources:  sources,
		versions: versions,
		links:    links,
		input:    os.Stdin,
	}
}

// NewInstallServiceWithInput is like NewInstallService but reads interactive
// version input from the given reader instead of stdin.
func NewInstallServiceWithInput(
	logger domain.Logger,
	env domain.HostEnvironment,
	sources domain.SourceRepository,
	versions domain.VersionRepository,
	links domain.LinkRepository,
	input io.Reader,
) domain.InstallService {
	return &InstallServiceImpl{
		logger:   logger,
		env:      env,
		sources:  sources,
		versions: versions,
		links:    links,
		input:    input,
	}
}

func (s *InstallServiceImpl) ValidateConfig(config *domain.InstallConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if config.GitURL == "" && config.LocalPath == "" {
		return fmt.Errorf("please provide a valid path or git repository")
	}

	if config.GitURL != "" && config.LocalPath != "" {
		s.logger.Warning("Both --git and --path provided, using --git")
	}

	return nil
}

// Install runs the full pipeline: resolve the source, validate its structure,
// select a version and link both procedure folders. The first failed link
// aborts the run; links already created stay in place, so the result carries
// every link made so far even on error.
func (s *InstallServiceImpl) Install(ctx context.Context, config *domain.InstallConfig) (*domain.InstallResult, error) {
	if err := s.ValidateConfig(config); err != nil {
		return nil, err
	}

	repoDir, err := s.sources.Resolve(ctx, config.Source())
	if err != nil {
		return nil, err
	}

	if err := s.validateRepoStructure(repoDir); err != nil {
		return nil, err
	}

	version, err := s.selectVersion(config)
	if err != nil {
		return nil, err
	}

	result := &domain.InstallResult{
		Version: version,
		RepoDir: repoDir,
	}

	for _, role := range domain.Roles {
		destDir, err := s.destinationFor(version, role)
		if err != nil {
			return result, err
		}

		sourceDir := filepath.Join(repoDir, role.SourceDir())
		s.logger.Info("Linking %s into %s...", sourceDir, destDir)

		if err := s.linkChildren(sourceDir, destDir, result); err != nil {
			return result, err
		}
	}

	s.logger.Success("Successfully installed procedures for Igor Pro %s", version)
	return result, nil
}

// validateRepoStructure enforces the required repository layout before any
// destination path is computed.
func (s *InstallServiceImpl) validateRepoStructure(repoDir string) error {
	userDir := filepath.Join(repoDir, domain.UserProcedures.SourceDir())
	igorDir := filepath.Join(repoDir, domain.IgorProcedures.SourceDir())

	if !s.links.DirExists(userDir) || !s.links.DirExists(igorDir) {
		return fmt.Errorf("the required 'user' and 'igor' directories are missing in %s, please modify the repository structure", repoDir)
	}

	return nil
}

func (s *InstallServiceImpl) selectVersion(config *domain.InstallConfig) (string, error) {
	// An explicit version is trusted as-is, without checking the install root.
	if config.Version != "" {
		s.logger.Info("Using requested Igor Pro version %s", config.Version)
		return config.Version, nil
	}

	candidates, err := s.versions.ListVersions()
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no installed Igor Pro versions found")
	}

	if config.Interactive {
		return s.promptVersion(candidates)
	}

	version := latestVersion(candidates)
	s.logger.Info("Auto-selected Igor Pro version %s", version)
	return version, nil
}

// promptVersion prints the candidates and blocks on one line of console
// input. The entered text is trimmed but not matched against the candidates.
func (s *InstallServiceImpl) promptVersion(candidates []string) (string, error) {
	fmt.Println("Available Igor Pro Versions:")
	for _, version := range candidates {
		fmt.Println(version)
	}
	fmt.Println("Please enter the desired version:")

	reader := bufio.NewReader(s.input)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read version input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// latestVersion picks the maximal candidate under plain string ordering.
// Note "9" sorts above "10"; double-digit major versions are a known
// limitation of this heuristic.
func latestVersion(candidates []string) string {
	latest := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate > latest {
			latest = candidate
		}
	}
	return latest
}

// destinationFor composes the Igor Pro user-files path for a role. The path
// is not checked for existence: Igor Pro's own installer provisions it.
func (s *InstallServiceImpl) destinationFor(version string, role domain.FolderRole) (string, error) {
	docs, err := s.env.DocumentsDir()
	if err != nil {
		return "", err
	}

	userFiles := fmt.Sprintf("%s %s User Files", s.env.ApplicationName(), version)
	return filepath.Join(docs, "WaveMetrics", userFiles, role.DestDir()), nil
}

// linkChildren materializes one link per immediate child of sourceDir. The
// first failure stops the batch; successfully created links are recorded in
// result so a failed run can be reversed by hand.
func (s *InstallServiceImpl) linkChildren(sourceDir, destDir string, result *domain.InstallResult) error {
	children, err := s.links.ListChildren(sourceDir)
	if err != nil {
		return err
	}

	for _, child := range children {
		entry := domain.LinkEntry{
			Source: child.Path,
			Dest:   filepath.Join(destDir, child.Name),
			Kind:   child.Kind,
		}

		if err := s.links.CreateLink(entry.Source, entry.Dest, entry.Kind); err != nil {
			return err
		}

		result.Linked = append(result.Linked, entry)
		s.logger.Info("Linked %s -> %s", entry.Dest, entry.Source)
	}

	return nil
}

func (s *InstallServiceImpl) ListVersions() ([]string, error) {
	return s.versions.ListVersions()
}
