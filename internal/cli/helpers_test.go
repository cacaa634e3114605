package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/databeans/internal/document"
)

// testEnv runs beans commands in-process against an isolated config
// directory and work directory.
type testEnv struct {
	t         *testing.T
	configDir string
	workDir   string
}

// cmdResult holds the captured output of one command.
type cmdResult struct {
	Stdout string
	Err    error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("BEANS_LOG_LEVEL", "")
	t.Setenv("BEANS_DEFAULT_SCOPE", "")
	t.Cleanup(func() {
		closeLogger()
		closeLogger = func() {}
	})
	return &testEnv{
		t:         t,
		configDir: filepath.Join(t.TempDir(), "config"),
		workDir:   t.TempDir(),
	}
}

// run executes one command line and captures stdout and the error.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--no-color"}, args...))
	err := root.Execute()
	return cmdResult{Stdout: out.String(), Err: err}
}

// mustRun executes a command line and fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	res := e.run(args...)
	require.NoError(e.t, res.Err, "beans %s", strings.Join(args, " "))
	return res.Stdout
}

// path returns a path inside the work directory.
func (e *testEnv) path(name string) string {
	return filepath.Join(e.workDir, name)
}

// newDoc creates a document and returns its path.
func (e *testEnv) newDoc(name string) string {
	e.t.Helper()
	p := e.path(name + ".json")
	e.mustRun("new", p, "--name", name)
	return p
}

func (e *testEnv) load(path string) *document.Document {
	e.t.Helper()
	d, err := document.Load(path)
	require.NoError(e.t, err)
	return d
}

func (e *testEnv) writeFile(name, content string) string {
	e.t.Helper()
	p := e.path(name)
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
