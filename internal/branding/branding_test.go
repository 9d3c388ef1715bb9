package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "layerkit" {
		t.Errorf("CLIName() = %q, want %q", got, "layerkit")
	}
	if got := HomeDir(); got != ".layerkit" {
		t.Errorf("HomeDir() = %q, want %q", got, ".layerkit")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"HOME", "LAYERKIT_HOME"},
		{"base_dir", "LAYERKIT_BASE_DIR"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
