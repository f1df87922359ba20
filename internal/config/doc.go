// Package config loads, normalizes, and validates proctools configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PROCTOOLS_PRODUCT_DIR. The Config type centralizes every knob the CLI
// needs: product search directories, depot loading behaviour, the manifest
// digest cache, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
