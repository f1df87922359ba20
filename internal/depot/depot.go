package depot

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"proctools/internal/label"
	"proctools/internal/logging"
	"proctools/internal/product"
)

// Loader turns a product label file into a typed product. It is satisfied
// by product.Registry.
type Loader interface {
	FromFile(path string) (product.Product, error)
}

// entry pairs a registered product with its usage status so ordering and
// bookkeeping can never drift apart.
type entry struct {
	product product.Product
	status  Status
}

// Depot is a type-indexed registry of loaded products with per-product
// usage tracking.
//
// A type tag, once populated, stays known for the life of the depot even
// after every product of that type has been released; queries against an
// emptied type yield zero results rather than ErrUnknownType.
type Depot struct {
	loader  Loader
	logger  *slog.Logger
	entries map[string][]*entry
}

// New creates an empty depot that loads products through loader. A nil
// logger disables logging.
func New(loader Loader, logger *slog.Logger) *Depot {
	return &Depot{
		loader:  loader,
		logger:  logging.NewComponentLogger(logger, "depot"),
		entries: make(map[string][]*entry),
	}
}

// Types returns the tags of all product types that have ever been loaded,
// in sorted order.
func (d *Depot) Types() []string {
	types := make([]string, 0, len(d.entries))
	for typeName := range d.entries {
		types = append(types, typeName)
	}
	sort.Strings(types)
	return types
}

// Load scans one or more directories for product label files and registers
// every product the loader recognizes, with initial status loaded.
//
// Files that declare no recognized type or cannot be parsed are logged
// and skipped. When duplicate rejection is active (the default), products
// whose type and identity are already registered are logged and skipped
// as well. Neither kind of skip affects the returned count, which is the
// number of products newly added by this call.
//
// After the scan, each affected type's sequence is stably re-sorted by
// the product order relation so incremental loads merge into one ordered
// sequence.
func (d *Depot) Load(dirs []string, opts ...LoadOption) (int, error) {
	options := applyLoadOptions(opts)
	added := 0
	affected := make(map[string]struct{})

	for _, dir := range dirs {
		d.logger.Debug("loading products", logging.String(logging.FieldPath, dir))
		paths, err := candidateFiles(dir, options.recursive)
		if err != nil {
			return added, fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, path := range paths {
			prod, err := d.loader.FromFile(path)
			if err != nil {
				if errors.Is(err, product.ErrUnrecognizedType) || errors.Is(err, label.ErrMalformed) {
					d.logger.Warn("ignoring file",
						logging.String(logging.FieldPath, path),
						logging.Error(err))
					continue
				}
				return added, err
			}
			typeName := prod.Type()
			if options.rejectDuplicates && d.find(typeName, prod.Identity()) != nil {
				d.logger.Warn("product already loaded; ignoring",
					logging.String(logging.FieldProductType, typeName),
					logging.String(logging.FieldProductID, prod.Identity()))
				continue
			}
			d.entries[typeName] = append(d.entries[typeName], &entry{product: prod, status: StatusLoaded})
			affected[typeName] = struct{}{}
			added++
		}
	}

	for typeName := range affected {
		bucket := d.entries[typeName]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].product.Precedes(bucket[j].product)
		})
	}
	return added, nil
}

// Retrieve returns the registered products of typeName in their sorted
// order, narrowed by any options.
//
// Unless WithoutMarking is given, every selected product still in status
// loaded is promoted to retrieved. Products already retrieved or
// processed are returned unchanged; retrieval never downgrades a status.
func (d *Depot) Retrieve(typeName string, opts ...RetrieveOption) ([]product.Product, error) {
	options := applyRetrieveOptions(opts)
	if err := validateStatuses(options.statuses); err != nil {
		return nil, err
	}
	bucket, ok := d.entries[typeName]
	if !ok {
		return nil, unknownType(typeName)
	}
	return d.retrieveBucket(bucket, options), nil
}

// RetrieveAll performs Retrieve across every known type and returns the
// results keyed by type tag.
func (d *Depot) RetrieveAll(opts ...RetrieveOption) (map[string][]product.Product, error) {
	options := applyRetrieveOptions(opts)
	if err := validateStatuses(options.statuses); err != nil {
		return nil, err
	}
	selection := make(map[string][]product.Product, len(d.entries))
	for typeName, bucket := range d.entries {
		selection[typeName] = d.retrieveBucket(bucket, options)
	}
	return selection, nil
}

func (d *Depot) retrieveBucket(bucket []*entry, options retrieveOptions) []product.Product {
	selected := make([]product.Product, 0, len(bucket))
	for _, ent := range bucket {
		if !statusSelected(ent.status, options.statuses) {
			continue
		}
		if options.filter != nil && !options.filter(ent.product) {
			continue
		}
		selected = append(selected, ent.product)
		if ent.status == StatusLoaded && !options.noMark {
			ent.status = StatusRetrieved
		}
	}
	return selected
}

// Next returns the first product of typeName still in status loaded,
// promoting it to retrieved, or nil when none remain.
func (d *Depot) Next(typeName string) (product.Product, error) {
	bucket, ok := d.entries[typeName]
	if !ok {
		return nil, unknownType(typeName)
	}
	for _, ent := range bucket {
		if ent.status == StatusLoaded {
			ent.status = StatusRetrieved
			return ent.product, nil
		}
	}
	return nil, nil
}

// Match returns the first product of typeName whose Matches accepts
// target, promoting it from loaded to retrieved, or nil when no candidate
// matches.
//
// Candidates are tested in their stored order regardless of usage status,
// so repeated calls with the same target keep returning the same product
// until it is released.
func (d *Depot) Match(typeName string, target product.Product) (product.Product, error) {
	bucket, ok := d.entries[typeName]
	if !ok {
		return nil, unknownType(typeName)
	}
	for _, ent := range bucket {
		if ent.product.Matches(target) {
			if ent.status == StatusLoaded {
				ent.status = StatusRetrieved
			}
			return ent.product, nil
		}
	}
	return nil, nil
}

// Mark sets the usage status of prod and reports whether it was present.
//
// An absent product, whether never loaded, recorded under a different
// type, or already released, is a normal outcome: Mark returns false
// without error. An unenumerated status is a hard failure.
func (d *Depot) Mark(prod product.Product, status Status) (bool, error) {
	if !status.Valid() {
		return false, invalidStatus(status)
	}
	ent := d.find(prod.Type(), prod.Identity())
	if ent == nil {
		return false, nil
	}
	ent.status = status
	return true, nil
}

// Count returns the number of currently registered products of typeName,
// narrowed by any options. Released products are already absent from the
// registry and are never counted.
func (d *Depot) Count(typeName string, opts ...CountOption) (int, error) {
	options := applyCountOptions(opts)
	if err := validateStatuses(options.statuses); err != nil {
		return 0, err
	}
	bucket, ok := d.entries[typeName]
	if !ok {
		return 0, unknownType(typeName)
	}
	if len(options.statuses) == 0 {
		return len(bucket), nil
	}
	count := 0
	for _, ent := range bucket {
		if statusSelected(ent.status, options.statuses) {
			count++
		}
	}
	return count, nil
}

// UsageSummary groups the identities of typeName's registered products by
// their current usage status. Identities keep their registry order, and
// the totals across all statuses always equal Count(typeName).
func (d *Depot) UsageSummary(typeName string) (map[Status][]string, error) {
	bucket, ok := d.entries[typeName]
	if !ok {
		return nil, unknownType(typeName)
	}
	return summarize(bucket), nil
}

// UsageSummaryAll returns UsageSummary for every known type, keyed by
// type tag.
func (d *Depot) UsageSummaryAll() map[string]map[Status][]string {
	summary := make(map[string]map[Status][]string, len(d.entries))
	for typeName, bucket := range d.entries {
		summary[typeName] = summarize(bucket)
	}
	return summary
}

func summarize(bucket []*entry) map[Status][]string {
	statuses := make(map[Status][]string)
	for _, ent := range bucket {
		statuses[ent.status] = append(statuses[ent.status], ent.product.Identity())
	}
	return statuses
}

// Release permanently removes prod from the depot, by identity, and
// reports whether it was present. Releasing a product whose type was
// never loaded is a hard failure; releasing one that is merely absent
// (already released, never loaded) returns false.
//
// The type tag itself stays known after its last product is released.
func (d *Depot) Release(prod product.Product) (bool, error) {
	typeName := prod.Type()
	bucket, ok := d.entries[typeName]
	if !ok {
		return false, unknownType(typeName)
	}
	for i, ent := range bucket {
		if ent.product.Identity() == prod.Identity() {
			d.entries[typeName] = append(bucket[:i], bucket[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (d *Depot) find(typeName, identity string) *entry {
	for _, ent := range d.entries[typeName] {
		if ent.product.Identity() == identity {
			return ent
		}
	}
	return nil
}
