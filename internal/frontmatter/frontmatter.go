package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Meta holds the recognized keys of a project metadata header.
//
// Unrecognized keys are ignored rather than rejected so that content authors
// can annotate projects freely. The date is opaque text; it is displayed,
// never parsed.
type Meta struct {
	Title     string     `yaml:"title"`
	Date      string     `yaml:"date"`
	Materials string     `yaml:"materials"`
	Vimeo     StringList `yaml:"vimeo"`
	YouTube   StringList `yaml:"youtube"`
}

// StringList accepts either a single YAML scalar or a sequence of scalars and
// normalizes both into one ordered slice. Downstream code never sees the
// single/list ambiguity.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
			return nil
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = StringList(items)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got yaml kind %d", value.Kind)
	}
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input. Both `\n` and `\r\n` documents are handled.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		return []byte{}, content[start+len(closeLine):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	rawEnd := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:rawEnd], content[bodyStart:], true, nil
}

// Decode parses raw YAML frontmatter (without --- delimiters) into Meta.
func Decode(raw []byte) (Meta, error) {
	var m Meta
	if len(raw) == 0 {
		return m, nil
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Meta{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	return m, nil
}

// Parse splits a document and decodes its header in one step.
func Parse(content []byte) (Meta, []byte, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Meta{}, nil, err
	}
	if !had {
		return Meta{}, body, nil
	}
	m, err := Decode(raw)
	if err != nil {
		return Meta{}, nil, err
	}
	return m, body, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
