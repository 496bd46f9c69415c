package auditlog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/aiguide/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyFile indicates a log file with no usable entries.
var ErrEmptyFile = errors.New("log file has no entries")

// File is the YAML shape accepted by `aiguide declare --file`:
//
//	context: assignment
//	entries:
//	  - prompt: "Explain the difference between..."
//	    output: "A table with 5 key differences"
//	    refinement: "Checked against the textbook"
type File struct {
	Context string  `yaml:"context"`
	Entries []Draft `yaml:"entries"`
}

// Decode reads a log file from r and validates its context.
func Decode(r io.Reader) (*File, domain.LogContext, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, "", ErrEmptyFile
		}
		return nil, "", fmt.Errorf("decoding log file: %w", err)
	}
	ctx, err := domain.ParseLogContext(f.Context)
	if err != nil {
		return nil, "", fmt.Errorf("decoding log file: %w", err)
	}
	if len(f.Entries) == 0 {
		return nil, "", ErrEmptyFile
	}
	return &f, ctx, nil
}

// ReadFile opens path and decodes it with Decode.
func ReadFile(path string) (*File, domain.LogContext, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening log file: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Load appends every draft in f to l, skipping blank prompts the same way
// interactive entry does. It returns the number of entries accepted.
func (f *File) Load(l *Log) int {
	n := 0
	for _, d := range f.Entries {
		if _, ok := l.Append(d); ok {
			n++
		}
	}
	return n
}
