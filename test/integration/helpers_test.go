//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	buildErr  error
	binary    string
)

// buildBinary compiles the mkproject binary once per test run and
// returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "mkproject-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		binary = filepath.Join(dir, "mkproject")
		cmd := exec.Command("go", "build", "-o", binary, "../..")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("go build output:\n%s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building binary: %v", buildErr)
	}
	return binary
}

// testEnv holds the isolated directories for one e2e run.
type testEnv struct {
	BinDir  string // the only PATH entry; tests drop stub tools here
	WorkDir string // where projects get created
}

// setupTestEnv builds the binary and isolates PATH so only stub tools
// are visible to it.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools use shell scripts")
	}

	buildBinary(t)

	env := &testEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	return env
}

// writeStub installs an executable shell script into the env's bin dir.
func (e *testEnv) writeStub(t *testing.T, name, body string) {
	t.Helper()
	script := "#!/bin/sh\nPATH=/usr/bin:/bin\n" + body
	if err := os.WriteFile(filepath.Join(e.BinDir, name), []byte(script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
}

// run invokes the built binary with the env's private PATH and returns
// combined output plus the exit code.
func (e *testEnv) run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binary, args...)
	cmd.Dir = e.WorkDir
	cmd.Env = append(os.Environ(), "PATH="+e.BinDir)

	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return string(out), exitErr.ExitCode()
	}
	t.Fatalf("running %v: %v", args, err)
	return "", 0
}
