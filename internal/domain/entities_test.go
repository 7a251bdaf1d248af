package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceSpecClassification(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		remote bool
	}{
		{"https url", "https://github.com/example/procedures", true},
		{"http url", "http://example.com/procedures.git", true},
		{"git scheme", "git://example.com/procedures", true},
		{"git ssh shorthand", "git@github.com:example/procedures.git", true},
		// The prefix rule deliberately captures schemeless github.com/...
		// paths: they start with "git".
		{"github path matches git prefix", "github.com/example/procedures", true},
		{"relative path", "./procedures", false},
		{"absolute path", "/home/user/procedures", false},
		{"windows path", `C:\procedures`, false},
		{"uppercase scheme is not remote", "HTTP://example.com/repo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := SourceSpec{Raw: tt.raw}
			assert.Equal(t, tt.remote, spec.IsRemote())
		})
	}
}

func TestFolderRoleNames(t *testing.T) {
	assert.Equal(t, "user", UserProcedures.SourceDir())
	assert.Equal(t, "igor", IgorProcedures.SourceDir())
	assert.Equal(t, "User Procedures", UserProcedures.DestDir())
	assert.Equal(t, "Igor Procedures", IgorProcedures.DestDir())
	assert.Len(t, Roles, 2)
}

func TestInstallConfigSource(t *testing.T) {
	config := InstallConfig{
		GitURL:    "https://github.com/example/procedures",
		LocalPath: "/tmp/procedures",
	}

	// Git wins when both are set.
	assert.Equal(t, "https://github.com/example/procedures", config.Source().Raw)

	config.GitURL = ""
	assert.Equal(t, "/tmp/procedures", config.Source().Raw)
}

func TestInstallResult(t *testing.T) {
	entry := LinkEntry{
		Source: "/repo/user/a.ipf",
		Dest:   "/docs/WaveMetrics/Igor Pro 9.0 User Files/User Procedures/a.ipf",
		Kind:   LinkFile,
	}

	result := InstallResult{
		Version: "9.0",
		RepoDir: "/repo",
		Linked:  []LinkEntry{entry},
	}

	assert.Equal(t, "9.0", result.Version)
	assert.Len(t, result.Linked, 1)
	assert.Equal(t, entry, result.Linked[0])
}
