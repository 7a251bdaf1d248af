package infrastructure

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/igor-tools/igor-install/internal/domain"
)

// fallbackRepoName is used when a URL yields no usable final path segment.
const fallbackRepoName = "repository"

// GitRunner clones url into dest. Injectable so resolution can be tested
// without a network or a git binary.
type GitRunner func(ctx context.Context, url, dest string) error

type GitSourceRepository struct {
	logger domain.Logger
	env    domain.HostEnvironment
	runner GitRunner
}

// NewGitSourceRepository creates a source repository that clones remote specs
// with the system git binary and uses local specs in place.
func NewGitSourceRepository(logger domain.Logger, env domain.HostEnvironment) domain.SourceRepository {
	return &GitSourceRepository{
		logger: logger,
		env:    env,
		runner: gitClone,
	}
}

// NewGitSourceRepositoryWithRunner is like NewGitSourceRepository but with a
// caller-supplied clone function.
func NewGitSourceRepositoryWithRunner(logger domain.Logger, env domain.HostEnvironment, runner GitRunner) domain.SourceRepository {
	return &GitSourceRepository{
		logger: logger,
		env:    env,
		runner: runner,
	}
}

func (g *GitSourceRepository) Resolve(ctx context.Context, spec domain.SourceSpec) (string, error) {
	if spec.IsRemote() {
		return g.cloneIntoCache(ctx, spec.Raw)
	}
	return g.canonicalLocalPath(spec.Raw)
}

// cloneIntoCache clones url under <home>/.igor, reusing an existing clone of
// the same name without any freshness check.
func (g *GitSourceRepository) cloneIntoCache(ctx context.Context, url string) (string, error) {
	home, err := g.env.HomeDir()
	if err != nil {
		return "", err
	}

	cacheRoot := filepath.Join(home, ".igor")
	if _, err := os.Stat(cacheRoot); os.IsNotExist(err) {
		if err := os.MkdirAll(cacheRoot, 0o755); err != nil {
			return "", fmt.Errorf("failed to create cache directory %s: %w", cacheRoot, err)
		}
		g.logger.Info("Created cache directory at %s", cacheRoot)
	}

	repoDir := filepath.Join(cacheRoot, repoNameFromURL(url))
	if _, err := os.Stat(repoDir); err == nil {
		g.logger.Info("Repository already exists at %s, reusing it", repoDir)
		return repoDir, nil
	}

	g.logger.Info("Cloning %s into %s...", url, repoDir)
	if err := g.runner(ctx, url, repoDir); err != nil {
		return "", err
	}

	return repoDir, nil
}

func (g *GitSourceRepository) canonicalLocalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source path %s: %w", path, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("source path %s is not accessible: %w", path, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("source path %s is not accessible: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source path %s is not a directory", path)
	}

	return canonical, nil
}

// repoNameFromURL derives the cache directory name from the final path
// segment of the URL.
func repoNameFromURL(url string) string {
	name := url
	if i := strings.LastIndex(url, "/"); i >= 0 {
		name = url[i+1:]
	}
	if name == "" {
		return fallbackRepoName
	}
	return name
}

// gitClone performs a full clone with the system git binary. Clone output is
// kept in the returned error so transport failures surface verbatim.
func gitClone(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w\nOutput: %s", url, err, string(output))
	}

	return nil
}
