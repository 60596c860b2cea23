package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "v1.0.0", "unknown", "unknown"
	if got := GetFullVersion(); got != "v1.0.0" {
		t.Errorf("Expected v1.0.0, got %s", got)
	}

	GitCommit = "abc123"
	if got := GetFullVersion(); got != "v1.0.0 (abc123)" {
		t.Errorf("Expected v1.0.0 (abc123), got %s", got)
	}

	BuildDate = "2026-01-02"
	if got := GetFullVersion(); got != "v1.0.0 (abc123, built 2026-01-02)" {
		t.Errorf("Expected full version, got %s", got)
	}
}
