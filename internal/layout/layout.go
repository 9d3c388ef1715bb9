package layout

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed layouts/*.yaml
var layoutFS embed.FS

// DefaultName is the name of the layout used when none is configured.
const DefaultName = "flutter-layered"

// Layout is an ordered list of folders and placeholder files to scaffold.
// Order is creation order and log order.
type Layout struct {
	FormatVersion string   `yaml:"format_version"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Folders       []string `yaml:"folders"`
	Files         []string `yaml:"files,omitempty"`
}

// InvalidError is returned by Parse when a layout fails validation.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("invalid layout %s: %s", e.Source, strings.Join(msgs, "; "))
}

// Default returns the embedded default layout. It panics if the embedded
// file is broken, which can only happen at build time.
func Default() *Layout {
	l, err := Builtin(DefaultName)
	if err != nil {
		panic(err)
	}
	return l
}

// Builtin returns the embedded layout with the given name.
func Builtin(name string) (*Layout, error) {
	data, err := layoutFS.ReadFile("layouts/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("built-in layout %q not found: %w", name, err)
	}
	return parse(data, "builtin:"+name)
}

// Parse validates raw YAML bytes and decodes them into a Layout.
func Parse(data []byte) (*Layout, error) {
	return parse(data, "<input>")
}

// LoadFile reads, validates and decodes a layout file.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return parse(data, path)
}

// Resolve returns the layout stored at path, or the default layout when
// path is empty.
func Resolve(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Marshal encodes the layout back to YAML.
func (l *Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

func parse(data []byte, source string) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating layout %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", source, err)
	}
	return &l, nil
}
