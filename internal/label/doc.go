// Package label reads product label documents into a flat metadata record.
//
// A label is an XML document describing a single instrument data product:
// its logical identifier, declared product type, observation time window,
// and acquisition parameters such as sub-instrument, optical filter, and
// exposure duration. Only the attributes the processing tools consume are
// extracted; the rest of the document is ignored.
//
// Parsing is tolerant of element nesting and namespace prefixes so labels
// produced by different writers resolve to the same Document. A document
// that cannot be decoded at all yields an error matching ErrMalformed;
// callers decide whether a missing attribute matters.
package label
