// Package depot owns the collections of data products a pipeline run
// works through.
//
// The Depot loads product label files from directories, groups the
// resulting products by type, and tracks a usage status for each one so
// pipeline stages can ask "what have I not consumed yet" without keeping
// their own books. Within a type, products stay sorted by their type's
// natural order across incremental loads. Retrieval, matching, and
// counting can be restricted by status or by arbitrary predicate; marking
// and releasing report absence as a boolean rather than an error, while
// querying a type that was never loaded or passing an unknown status is
// always a hard failure.
//
// A Depot is exclusively owned by one pipeline run. No internal locking
// is provided; callers must not share an instance across goroutines.
package depot
