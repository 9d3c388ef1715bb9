package layout

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantValid bool
		keyword   string
	}{
		{
			name:      "minimal",
			yaml:      "format_version: \"1.0.0\"\nname: app\nfolders: [src]\n",
			wantValid: true,
		},
		{
			name:      "with files",
			yaml:      "format_version: \"1.4.2\"\nname: app\nfolders: [src]\nfiles: [src/main.go]\n",
			wantValid: true,
		},
		{
			name:      "v prefix tolerated",
			yaml:      "format_version: v1.0.0\nname: app\nfolders: [src]\n",
			wantValid: true,
		},
		{
			name:      "dot-dot inside base is fine",
			yaml:      "format_version: \"1.0.0\"\nname: app\nfolders: [src/../lib]\n",
			wantValid: true,
		},
		{
			name:    "missing folders",
			yaml:    "format_version: \"1.0.0\"\nname: app\n",
			keyword: "required",
		},
		{
			name:    "empty folders",
			yaml:    "format_version: \"1.0.0\"\nname: app\nfolders: []\n",
			keyword: "minItems",
		},
		{
			name:    "bad name",
			yaml:    "format_version: \"1.0.0\"\nname: Bad Name\nfolders: [src]\n",
			keyword: "pattern",
		},
		{
			name:    "absolute folder",
			yaml:    "format_version: \"1.0.0\"\nname: app\nfolders: [/src]\n",
			keyword: "pattern",
		},
		{
			name:    "escaping file",
			yaml:    "format_version: \"1.0.0\"\nname: app\nfolders: [src]\nfiles: [../x.txt]\n",
			keyword: "relative",
		},
		{
			name:    "not semver",
			yaml:    "format_version: banana\nname: app\nfolders: [src]\n",
			keyword: "format_version",
		},
		{
			name:    "unsupported major",
			yaml:    "format_version: \"2.1.0\"\nname: app\nfolders: [src]\n",
			keyword: "format_version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if tt.wantValid {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q in %v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("folders: [unterminated\n"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCheckPaths(t *testing.T) {
	issues := checkPaths("/folders", []string{"lib", "lib/../..", "a/b/../../c"})
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Path != "/folders/1" {
		t.Errorf("issue path = %q, want %q", issues[0].Path, "/folders/1")
	}
}
