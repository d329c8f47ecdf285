// Package marshaller defines the serialization interface shared by the
// generators and scaffolders.
package marshaller

// Marshaller converts models of type T to and from their textual encoding.
type Marshaller[T any] interface {
	// Marshal encodes the model and returns the encoded document.
	Marshal(model T) (string, error)

	// Unmarshal decodes data into the model.
	Unmarshal(data []byte, model *T) error

	// UnmarshalString decodes data into the model.
	UnmarshalString(data string, model *T) error
}
