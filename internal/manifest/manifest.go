package manifest

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"proctools/internal/fileutil"
	"proctools/internal/logging"
)

// Record is one manifest line: a file and its digest. Cached reports
// whether the digest was served from the cache instead of re-hashed.
type Record struct {
	Path    string
	Size    int64
	ModTime time.Time
	Digest  string
	Cached  bool
}

// Builder walks directories and assembles manifest records.
type Builder struct {
	cache  *Cache
	logger *slog.Logger
}

// NewBuilder creates a builder. A nil cache disables caching (every file
// is hashed); a nil logger disables logging.
func NewBuilder(cache *Cache, logger *slog.Logger) *Builder {
	return &Builder{
		cache:  cache,
		logger: logging.NewComponentLogger(logger, "manifest"),
	}
}

// Build hashes every regular file under the given directories and returns
// the records sorted by path.
func (b *Builder) Build(ctx context.Context, dirs []string) ([]Record, error) {
	var records []Record
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, dirent fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if dirent.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := b.record(ctx, path, dirent)
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, nil
}

func (b *Builder) record(ctx context.Context, path string, dirent fs.DirEntry) (Record, error) {
	info, err := dirent.Info()
	if err != nil {
		return Record{}, err
	}
	record := Record{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	mtimeNS := info.ModTime().UnixNano()

	if b.cache != nil {
		digest, ok, err := b.cache.Lookup(ctx, path, info.Size(), mtimeNS)
		if err != nil {
			b.logger.Warn("digest cache lookup failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
		} else if ok {
			record.Digest = digest
			record.Cached = true
			return record, nil
		}
	}

	digest, err := fileutil.MD5Sum(path)
	if err != nil {
		return Record{}, err
	}
	record.Digest = digest

	if b.cache != nil {
		if err := b.cache.Store(ctx, path, info.Size(), mtimeNS, digest); err != nil {
			b.logger.Warn("digest cache store failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err))
		}
	}
	return record, nil
}
