// Package yamlmarshaller provides YAML serialization for API models.
package yamlmarshaller

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/testrig-dev/testrig/pkg/io/marshaller"
)

// Marshaller serializes models to YAML using their JSON struct tags.
type Marshaller[T any] struct{}

// NewMarshaller creates a new YAML marshaller for models of type T.
func NewMarshaller[T any]() marshaller.Marshaller[T] {
	return Marshaller[T]{}
}

// Marshal encodes the model as a YAML document.
func (Marshaller[T]) Marshal(model T) (string, error) {
	out, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return string(out), nil
}

// Unmarshal decodes a YAML document into the model.
func (Marshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.Unmarshal(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}

// UnmarshalString decodes a YAML document into the model.
func (m Marshaller[T]) UnmarshalString(data string, model *T) error {
	return m.Unmarshal([]byte(data), model)
}
