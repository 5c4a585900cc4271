// Package schemaload is a convenience layer decoding a YAML document
// into the schema.PatternSource values schema.New accepts. It sits
// outside the core entirely: callers who don't want a YAML document can
// call schema.New directly.
package schemaload

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/logsurgeon/logsurgeon-go/schema"
)

// Document is the YAML shape this package decodes:
//
//	delimiters: " \t\r\n:,"
//	timestamps:
//	  - id: rfc3339ish
//	    pattern: '\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}'
//	variables:
//	  - id: loglevel
//	    name: loglevel
//	    pattern: '(INFO|DEBUG|WARN|ERROR)'
//
// timestamp/variable `id` fields are strings in the document for
// readability; Decode assigns them integer PatternSource.ID values in
// document order, which is also their priority order.
type Document struct {
	Delimiters string          `yaml:"delimiters"`
	Timestamps []patternEntry  `yaml:"timestamps"`
	Variables  []variableEntry `yaml:"variables"`
}

type patternEntry struct {
	ID      string `yaml:"id"`
	Pattern string `yaml:"pattern"`
}

type variableEntry struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Decode parses a YAML document into the inputs schema.New takes.
func Decode(data []byte) (delims []byte, timestamps, variables []schema.PatternSource, err error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, nil, err
	}
	delims = []byte(doc.Delimiters)
	for i, t := range doc.Timestamps {
		timestamps = append(timestamps, schema.PatternSource{ID: i, Pattern: t.Pattern})
	}
	for i, v := range doc.Variables {
		name := v.Name
		if name == "" {
			name = v.ID
		}
		variables = append(variables, schema.PatternSource{ID: i, Name: name, Pattern: v.Pattern})
	}
	return delims, timestamps, variables, nil
}

// Load reads path and decodes it via Decode.
func Load(path string) (delims []byte, timestamps, variables []schema.PatternSource, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	return Decode(data)
}

// New is Load followed by schema.New, for the common case of compiling
// a schema straight from a YAML file.
func New(path string, opts ...schema.Option) (*schema.Schema, error) {
	delims, timestamps, variables, err := Load(path)
	if err != nil {
		return nil, err
	}
	return schema.New(delims, timestamps, variables, opts...)
}
