package domain

import "context"

// Logger defines the logging interface
type Logger interface {
	Info(msg string, args ...interface{})
	Success(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// HostEnvironment resolves platform-specific directories. It is an interface
// so the install pipeline can be tested against a fake host instead of the
// real machine.
type HostEnvironment interface {
	// HomeDir returns the user's home directory.
	HomeDir() (string, error)
	// DocumentsDir returns the user's documents directory. There is no
	// fallback: if it cannot be determined the install fails.
	DocumentsDir() (string, error)
	// InstallRoot returns the directory under which all installed Igor Pro
	// versions live, each as a named subdirectory.
	InstallRoot() (string, error)
	// ApplicationName returns the application name used when composing
	// user-files paths, normally "Igor Pro".
	ApplicationName() string
}

// SourceRepository resolves a source spec into a local directory holding the
// procedure tree. Remote specs are cloned into a cache; local specs are
// canonicalized in place.
type SourceRepository interface {
	Resolve(ctx context.Context, spec SourceSpec) (string, error)
}

// VersionRepository discovers installed Igor Pro versions.
type VersionRepository interface {
	ListVersions() ([]string, error)
}

// LinkRepository handles the filesystem side of link materialization.
type LinkRepository interface {
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool
	// ListChildren enumerates the immediate children of dir. Entries that
	// are neither regular files nor directories are skipped.
	ListChildren(dir string) ([]Child, error)
	// CreateLink creates a symbolic link at dest pointing back at source.
	CreateLink(source, dest string, kind LinkKind) error
}

// InstallService defines the main service interface
type InstallService interface {
	Install(ctx context.Context, config *InstallConfig) (*InstallResult, error)
	ListVersions() ([]string, error)
	ValidateConfig(config *InstallConfig) error
}
