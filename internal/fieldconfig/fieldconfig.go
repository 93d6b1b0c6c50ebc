// Package fieldconfig loads the two optional JSON documents that shape a
// dataset: custom field definitions and per-field masking rules.
//
// Loading never fails. A missing file yields an empty config; an
// unreadable or malformed one is logged and also yields an empty config.
package fieldconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"github.com/zarlcorp/zfake/internal/mask"
)

// TypeNumber is the only custom field type tag with its own generator.
// Every other tag produces a word.
const TypeNumber = "number"

// FileReader is the read side of a zfilesystem filesystem.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// FailureCounter is told about every config file that had to be dropped.
type FailureCounter interface {
	ConfigLoadFailed(file string)
}

// CustomField declares one extra field added to every record.
type CustomField struct {
	Name string
	Type string
}

// IsNumber reports whether the field holds a 4-digit integer.
func (f CustomField) IsNumber() bool {
	return f.Type == TypeNumber
}

// CustomFields keeps the declaration order of the source document.
type CustomFields []CustomField

// LoadError describes a config file that could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads config documents, downgrading every failure to an empty config.
type Loader struct {
	log      *zap.Logger
	failures FailureCounter
}

// NewLoader creates a loader. failures may be nil.
func NewLoader(log *zap.Logger, failures FailureCounter) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log, failures: failures}
}

// CustomFields reads a flat JSON object mapping field name to type tag.
// A non-string tag is kept and treated like any other non-number tag.
func (l *Loader) CustomFields(fsys FileReader, name string) CustomFields {
	entries, ok := l.load(fsys, name)
	if !ok {
		return CustomFields{}
	}

	out := make(CustomFields, 0, len(entries))
	for _, e := range entries {
		var tag string
		if err := json.Unmarshal(e.value, &tag); err != nil {
			l.log.Warn("custom field type is not a string, using word",
				zap.String("file", name), zap.String("field", e.key))
		}
		out = append(out, CustomField{Name: e.key, Type: tag})
	}
	return out
}

// MaskRules reads a flat JSON object mapping field name to strategy name.
// Entries whose value is not a string are skipped.
func (l *Loader) MaskRules(fsys FileReader, name string) mask.Rules {
	entries, ok := l.load(fsys, name)
	if !ok {
		return mask.Rules{}
	}

	rules := make(mask.Rules, len(entries))
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e.value, &s); err != nil {
			l.log.Warn("masking strategy is not a string, skipping",
				zap.String("file", name), zap.String("field", e.key))
			continue
		}
		strategy := mask.Strategy(s)
		if !strategy.Valid() {
			l.log.Warn("unknown masking strategy, values pass through",
				zap.String("file", name), zap.String("field", e.key), zap.String("strategy", s))
		}
		rules[e.key] = strategy
	}
	return rules
}

func (l *Loader) load(fsys FileReader, name string) ([]entry, bool) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("config file not found, using empty config", zap.String("file", name))
			return nil, false
		}
		l.fail(&LoadError{Path: name, Err: err})
		return nil, false
	}

	entries, err := parseObject(data)
	if err != nil {
		l.fail(&LoadError{Path: name, Err: err})
		return nil, false
	}

	l.log.Debug("config file loaded", zap.String("file", name), zap.Int("entries", len(entries)))
	return entries, true
}

func (l *Loader) fail(err *LoadError) {
	l.log.Warn("config file ignored, using empty config",
		zap.String("file", err.Path), zap.Error(err.Err))
	if l.failures != nil {
		l.failures.ConfigLoadFailed(err.Path)
	}
}

type entry struct {
	key   string
	value json.RawMessage
}

// parseObject decodes a JSON object keeping key order. A repeated key keeps
// its first position and its last value.
func parseObject(data []byte) ([]entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("parse json: top-level value is not an object")
	}

	var entries []entry
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		key := tok.(string) // object keys are always strings

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse json: field %q: %w", key, err)
		}

		if i, ok := index[key]; ok {
			entries[i].value = v
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entry{key: key, value: v})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parse json: trailing data after object")
	}
	return entries, nil
}
