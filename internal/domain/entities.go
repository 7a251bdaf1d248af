package domain

import "strings"

// SourceSpec identifies where procedure files come from: either a remote
// repository URL or a local directory path.
type SourceSpec struct {
	Raw string
}

// IsRemote reports whether the spec should be cloned rather than used as a
// local path. Anything starting with "http" or "git" is treated as a remote
// repository reference; no further scheme validation is performed.
func (s SourceSpec) IsRemote() bool {
	return strings.HasPrefix(s.Raw, "http") || strings.HasPrefix(s.Raw, "git")
}

// FolderRole is one of the two fixed installation targets inside an Igor Pro
// user-files directory.
type FolderRole int

const (
	UserProcedures FolderRole = iota
	IgorProcedures
)

// Roles lists the folder roles in the order they are installed.
var Roles = []FolderRole{UserProcedures, IgorProcedures}

// SourceDir returns the subdirectory name the role reads from inside a
// resolved repository.
func (r FolderRole) SourceDir() string {
	if r == IgorProcedures {
		return "igor"
	}
	return "user"
}

// DestDir returns the folder name Igor Pro expects under its user-files
// directory for this role.
func (r FolderRole) DestDir() string {
	if r == IgorProcedures {
		return "Igor Procedures"
	}
	return "User Procedures"
}

func (r FolderRole) String() string {
	return r.DestDir()
}

// LinkKind distinguishes file links from directory links for platforms whose
// symlink primitives differ between the two.
type LinkKind int

const (
	LinkFile LinkKind = iota
	LinkDirectory
)

// Child describes one immediate child of a role's source directory.
type Child struct {
	Name string
	Path string
	Kind LinkKind
}

// LinkEntry records one symbolic link created on behalf of the run. Entries
// are logged so a failed run can be reversed by hand; the installer itself
// never rolls back.
type LinkEntry struct {
	Source string
	Dest   string
	Kind   LinkKind
}

// InstallConfig carries the options of a single install run.
type InstallConfig struct {
	GitURL      string
	LocalPath   string
	Version     string
	Interactive bool
}

// Source returns the source spec the config selects. When both flags are
// given the git URL wins.
func (c *InstallConfig) Source() SourceSpec {
	if c.GitURL != "" {
		return SourceSpec{Raw: c.GitURL}
	}
	return SourceSpec{Raw: c.LocalPath}
}

// InstallResult summarizes a completed (or aborted) install run.
type InstallResult struct {
	Version string
	RepoDir string
	Linked  []LinkEntry
}
