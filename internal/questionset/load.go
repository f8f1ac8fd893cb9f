// Package questionset loads and validates question sets and candidate
// submissions from JSON or YAML documents.
package questionset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/placement/internal/answer"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format by file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates a question set file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	return parse(data, FormatFromPath(path), path)
}

// Parse decodes and validates a question set document.
// Structural problems are returned together as a *ConfigError.
func Parse(data []byte, format Format) (*Set, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, source string) (*Set, error) {
	invalid := func(problems ...string) error {
		return &ConfigError{Source: source, Problems: problems}
	}

	raw, err := toJSON(data, format)
	if err != nil {
		return nil, invalid(err.Error())
	}

	if err := validateDocument(questionSetSchema, raw); err != nil {
		return nil, invalid(splitLines(err.Error())...)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, invalid(fmt.Sprintf("decode question set: %v", err))
	}

	if problems := validateStructure(&doc); len(problems) > 0 {
		return nil, invalid(problems...)
	}
	return doc.build(), nil
}

// Submission is one candidate's answers keyed by item ID.
type Submission struct {
	Candidate string                     `json:"candidate"`
	Answers   map[string]answer.Response `json:"answers"`
}

// LoadSubmission reads a submission file.
func LoadSubmission(path string) (*Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}
	sub, err := ParseSubmission(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load submission %s: %w", path, err)
	}
	return sub, nil
}

// ParseSubmission decodes a submission document. Answer values that are
// neither strings nor lists of strings decode as absent.
func ParseSubmission(data []byte, format Format) (*Submission, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(submissionSchema, raw); err != nil {
		return nil, err
	}

	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	if sub.Answers == nil {
		sub.Answers = map[string]answer.Response{}
	}
	return &sub, nil
}

// toJSON returns data as JSON, converting YAML documents.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		out, err := json.Marshal(jsonCompatible(v))
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// jsonCompatible rewrites YAML maps with non-string keys so they marshal.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = jsonCompatible(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = jsonCompatible(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = jsonCompatible(e)
		}
		return t
	default:
		return v
	}
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
