package product

import (
	"errors"
	"fmt"
	"sort"

	"proctools/internal/label"
)

// ErrUnrecognizedType reports a label that declares no product type, or a
// type with no registered constructor.
var ErrUnrecognizedType = errors.New("unrecognized product type")

// Product is a single parsed data-product record.
type Product interface {
	// Type returns the product type tag; stable for the product's lifetime.
	Type() string
	// Identity returns the unique logical identifier used for duplicate
	// detection, equality, and reporting.
	Identity() string
	// Precedes reports whether the product sorts before other. Products of
	// the same type are totally ordered; ordering across types falls back
	// to identity comparison.
	Precedes(other Product) bool
	// IsApplicable reports coarse, class-level compatibility with other.
	IsApplicable(other Product) bool
	// Matches reports specific, instance-level compatibility with other.
	Matches(other Product) bool
}

// Factory builds a typed product from a parsed label document.
type Factory func(doc *label.Document) (Product, error)

// Registry is the explicit product type name to constructor table.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register installs a factory for typeName. Re-registering a type is a
// programming error and is rejected.
func (r *Registry) Register(typeName string, factory Factory) error {
	if typeName == "" {
		return errors.New("product type name is required")
	}
	if factory == nil {
		return fmt.Errorf("product type %q: factory is required", typeName)
	}
	if _, exists := r.factories[typeName]; exists {
		return fmt.Errorf("product type %q already registered", typeName)
	}
	r.factories[typeName] = factory
	return nil
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromFile parses the label at path and instantiates the product variant
// registered for its declared type.
//
// Failures are classified: a document that cannot be decoded matches
// label.ErrMalformed, and a missing or unregistered type name matches
// ErrUnrecognizedType. Anything else is an I/O error from opening the
// file.
func (r *Registry) FromFile(path string) (Product, error) {
	doc, err := label.Parse(path)
	if err != nil {
		return nil, err
	}
	if doc.ProductTypeName == "" {
		return nil, fmt.Errorf("%w: product loaded from %s does not declare a type", ErrUnrecognizedType, doc.SourceFile)
	}
	factory, ok := r.factories[doc.ProductTypeName]
	if !ok {
		return nil, fmt.Errorf("%w: product %q loaded from %s does not match any known type", ErrUnrecognizedType, doc.ProductTypeName, doc.SourceFile)
	}
	prod, err := factory(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", label.ErrMalformed, doc.SourceFile, err)
	}
	return prod, nil
}
