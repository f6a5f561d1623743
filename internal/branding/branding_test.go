package branding

import "testing"

func TestIdentity(t *testing.T) {
	if got := CLIName(); got != "mkproject" {
		t.Errorf("CLIName() = %q, want %q", got, "mkproject")
	}
	if got := DisplayName(); got != "MkProject" {
		t.Errorf("DisplayName() = %q, want %q", got, "MkProject")
	}
	if got := EnvPrefix(); got != "MKPROJECT" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "MKPROJECT")
	}
	if Description() == "" {
		t.Error("Description() is empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("verbose"); got != "MKPROJECT_VERBOSE" {
		t.Errorf("EnvVar(verbose) = %q, want %q", got, "MKPROJECT_VERBOSE")
	}
}
