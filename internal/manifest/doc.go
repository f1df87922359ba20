// Package manifest produces checksum manifests of product archive trees.
//
// A manifest records the MD5 digest of every file under one or more
// directories, the format archive deliveries are verified against.
// Digests of unchanged files are served from a SQLite cache keyed by path
// and invalidated on size or mtime change, so re-running over a large
// archive only hashes what moved. The cache stores derived file digests
// only; it holds no depot or pipeline state.
package manifest
