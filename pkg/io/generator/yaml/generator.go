// Package yamlgenerator generates YAML files from API models.
package yamlgenerator

import (
	"fmt"

	"github.com/testrig-dev/testrig/pkg/fsutil"
	"github.com/testrig-dev/testrig/pkg/io/marshaller"
	yamlmarshaller "github.com/testrig-dev/testrig/pkg/io/marshaller/yaml"
)

// Options controls where generated content is written.
type Options struct {
	// Output is the file path to write to. Empty keeps the content in memory.
	Output string
	// Force overwrites an existing file at Output.
	Force bool
}

// Generator marshals a model to YAML and optionally writes it to a file.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// NewGenerator creates and returns a new YAML generator for models of type T.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{
		Marshaller: yamlmarshaller.NewMarshaller[T](),
	}
}

// Generate marshals the model and writes it to opts.Output when set.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal model: %w", err)
	}

	if opts.Output != "" {
		result, err := fsutil.TryWriteFile(out, opts.Output, opts.Force)
		if err != nil {
			return "", fmt.Errorf("write model: %w", err)
		}

		return result, nil
	}

	return out, nil
}
