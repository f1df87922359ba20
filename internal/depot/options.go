package depot

import "proctools/internal/product"

// Filter is a predicate over a product. Filters never see or alter usage
// status; they only narrow a selection.
type Filter func(product.Product) bool

type loadOptions struct {
	recursive        bool
	rejectDuplicates bool
}

// LoadOption adjusts how Load scans directories. The defaults are a
// recursive search that rejects duplicates.
type LoadOption func(*loadOptions)

// NonRecursive limits the scan to the top level of each directory.
func NonRecursive() LoadOption {
	return func(o *loadOptions) { o.recursive = false }
}

// AllowDuplicates registers products even when one with the same type and
// identity is already present.
func AllowDuplicates() LoadOption {
	return func(o *loadOptions) { o.rejectDuplicates = false }
}

func applyLoadOptions(opts []LoadOption) loadOptions {
	options := loadOptions{recursive: true, rejectDuplicates: true}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type retrieveOptions struct {
	statuses []Status
	filter   Filter
	noMark   bool
}

// RetrieveOption narrows or adjusts a retrieval.
type RetrieveOption func(*retrieveOptions)

// WithStatuses restricts the candidate set to products currently in one
// of the given usage statuses.
func WithStatuses(statuses ...Status) RetrieveOption {
	return func(o *retrieveOptions) { o.statuses = append(o.statuses, statuses...) }
}

// WithFilter restricts the candidate set with a predicate, applied after
// any status restriction.
func WithFilter(filter Filter) RetrieveOption {
	return func(o *retrieveOptions) { o.filter = filter }
}

// WithoutMarking returns the selection without promoting loaded products
// to retrieved.
func WithoutMarking() RetrieveOption {
	return func(o *retrieveOptions) { o.noMark = true }
}

func applyRetrieveOptions(opts []RetrieveOption) retrieveOptions {
	var options retrieveOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type countOptions struct {
	statuses       []Status
	ignoreReleased bool
}

// CountOption narrows a count.
type CountOption func(*countOptions)

// CountStatuses restricts the count to products currently in one of the
// given usage statuses.
func CountStatuses(statuses ...Status) CountOption {
	return func(o *countOptions) { o.statuses = append(o.statuses, statuses...) }
}

// IgnoreReleased documents the caller's intent to exclude released
// products. Released products are removed from the registry outright, so
// the option changes nothing; it exists so call sites can state the
// expectation explicitly.
func IgnoreReleased() CountOption {
	return func(o *countOptions) { o.ignoreReleased = true }
}

func applyCountOptions(opts []CountOption) countOptions {
	var options countOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
