package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubPath creates an empty directory, makes it the entire PATH for the
// duration of the test, and returns it. Tests then drop stub tools into
// it with writeStub.
func stubPath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools use shell scripts")
	}
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

// writeStub installs an executable shell script named name into dir.
// The PATH of the test process points only at the stub directory, so
// the script restores a standard PATH for its own utility calls.
func writeStub(t *testing.T, dir, name, body string) {
	t.Helper()
	script := "#!/bin/sh\nPATH=/usr/bin:/bin\n" + body
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", name, err)
	}
}
