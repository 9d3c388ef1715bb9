package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/layout.schema.json
var schemaBytes []byte

// SupportedFormat is the semver constraint a layout's format_version must satisfy.
const SupportedFormat = "^1.0.0"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a layout validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single problem found in a layout document.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/folders/3")
	Message string
	Keyword string // Schema keyword or semantic rule that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("layout.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("layout.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw YAML bytes against the layout schema, then applies the
// path and format-version rules. The error return is for YAML or schema
// compilation failures; validation problems are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-compatible types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		return &ValidationResult{Valid: false, Issues: extractIssues(ve)}, nil
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	issues := checkFormatVersion(l.FormatVersion)
	issues = append(issues, checkPaths("/folders", l.Folders)...)
	issues = append(issues, checkPaths("/files", l.Files)...)
	if len(issues) > 0 {
		return &ValidationResult{Valid: false, Issues: issues}, nil
	}
	return &ValidationResult{Valid: true}, nil
}

func checkFormatVersion(v string) []ValidationIssue {
	version, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return []ValidationIssue{{
			Path:    "/format_version",
			Message: fmt.Sprintf("%q is not a semantic version", v),
			Keyword: "format_version",
		}}
	}
	constraint, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		panic(err)
	}
	if !constraint.Check(version) {
		return []ValidationIssue{{
			Path:    "/format_version",
			Message: fmt.Sprintf("format version %s is not supported (want %s)", version, SupportedFormat),
			Keyword: "format_version",
		}}
	}
	return nil
}

// checkPaths rejects absolute paths and paths that climb out of the base
// directory once cleaned.
func checkPaths(prefix string, paths []string) []ValidationIssue {
	var issues []ValidationIssue
	for i, p := range paths {
		loc := fmt.Sprintf("%s/%d", prefix, i)
		if filepath.IsAbs(p) {
			issues = append(issues, ValidationIssue{
				Path:    loc,
				Message: fmt.Sprintf("absolute path %q is not allowed", p),
				Keyword: "relative",
			})
			continue
		}
		clean := filepath.ToSlash(filepath.Clean(p))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			issues = append(issues, ValidationIssue{
				Path:    loc,
				Message: fmt.Sprintf("path %q escapes the base directory", p),
				Keyword: "relative",
			})
		}
	}
	return issues
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	// Container keywords carry no information of their own.
	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: msg,
		Keyword: keyword,
	})
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
