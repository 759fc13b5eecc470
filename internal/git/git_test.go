package git

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and serves canned output for git queries.
type fakeRunner struct {
	calls  [][]string
	out    string
	outErr error
}

func (f *fakeRunner) Run(dir string, stdio bool, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return nil
}

func (f *fakeRunner) Output(dir, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.outErr
}

// scriptedPrompter answers confirmations without a terminal.
type scriptedPrompter struct {
	answer bool
	err    error
	asked  bool
}

func (p *scriptedPrompter) Confirm(message string) (bool, error) {
	p.asked = true
	return p.answer, p.err
}

func TestGuardCleanTreeProceedsWithoutPrompt(t *testing.T) {
	r := &fakeRunner{out: ""}
	p := &scriptedPrompter{}

	assert.True(t, Guard(r, ".", p))
	assert.False(t, p.asked, "clean tree must not prompt")
}

func TestGuardDirtyTreePromptDeclined(t *testing.T) {
	r := &fakeRunner{out: " M docs/index.md"}
	p := &scriptedPrompter{answer: false}

	assert.False(t, Guard(r, ".", p))
	assert.True(t, p.asked)
}

func TestGuardDirtyTreePromptAccepted(t *testing.T) {
	r := &fakeRunner{out: "?? newfile.md\n M docs/index.md"}
	p := &scriptedPrompter{answer: true}

	assert.True(t, Guard(r, ".", p))
}

func TestGuardStatusFailureIsAdvisory(t *testing.T) {
	// Not a repository: the guard warns and lets the deploy continue.
	r := &fakeRunner{outErr: errors.New("exit status 128")}
	p := &scriptedPrompter{}

	assert.True(t, Guard(r, ".", p))
	assert.False(t, p.asked)
}

func TestGuardPromptReadFailureCancels(t *testing.T) {
	r := &fakeRunner{out: " M mkdocs.yml"}
	p := &scriptedPrompter{err: errors.New("stdin closed")}

	assert.False(t, Guard(r, ".", p))
}

func TestGuardQueriesPorcelainStatus(t *testing.T) {
	r := &fakeRunner{}
	Guard(r, "root", &scriptedPrompter{})

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"git", "status", "--porcelain"}, r.calls[0])
}

func TestRemoteURL(t *testing.T) {
	r := &fakeRunner{out: "git@github.com:alice/proj.git"}
	url, err := RemoteURL(r, ".")

	require.NoError(t, err)
	assert.Equal(t, "git@github.com:alice/proj.git", url)
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"git", "config", "--get", "remote.origin.url"}, r.calls[0])
}

func TestPagesURL(t *testing.T) {
	tests := []struct {
		remote string
		want   string
		ok     bool
	}{
		{"git@github.com:alice/proj.git", "https://alice.github.io/proj/", true},
		{"https://github.com/bob/site.git", "https://bob.github.io/site/", true},
		{"https://github.com/bob/site", "https://bob.github.io/site/", true},
		{"ssh://git@github.com/carol/docs.git", "https://carol.github.io/docs/", true},
		{"git@gitlab.com:alice/proj.git", "", false},
		{"https://example.org/alice/proj.git", "", false},
		{"https://github.com/", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			got, ok := PagesURL(tt.remote)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPagesURLKeepsNestedRepoPath(t *testing.T) {
	// Only the first separator splits account from repository.
	got, ok := PagesURL("https://github.com/org/group/repo.git")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(got, "https://org.github.io/"))
	assert.Equal(t, "https://org.github.io/group/repo/", got)
}
