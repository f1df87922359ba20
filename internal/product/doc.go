// Package product defines the data-product contract consumed by the depot
// and the loader that turns label files into typed products.
//
// Every product exposes a stable type tag, a unique identity, a total
// order within its type, and two compatibility tests: IsApplicable is the
// coarse class-level check, Matches the specific instance-level one. The
// Registry maps declared product type names to constructors in one
// explicit table; there is no runtime discovery of types.
//
// FromFile classifies its failures so callers can distinguish files that
// simply are not recognizable products (ErrUnrecognizedType, or a
// malformed document from the label package) from genuine I/O problems.
package product
