package catalog

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/mholt/archives"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/model"
)

// FileSource reads the catalog from a snapshot file on disk. Compressed
// snapshots (catalog.json.gz and friends, the way packaging systems ship
// their index files) are decompressed transparently. The snapshot is parsed
// once and cached for the lifetime of the source; filter requests share the
// cached slice read-only.
type FileSource struct {
	path string

	once     sync.Once
	packages []*model.Package
	err      error
}

var _ Source = (*FileSource)(nil)

// NewFileSource creates a FileSource for the given snapshot path. The file
// is not touched until the first Packages call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Packages implements Source. Any read or parse failure surfaces as
// ErrCatalogUnavailable: filtering is meaningless without a catalog.
func (fs *FileSource) Packages(ctx context.Context) ([]*model.Package, error) {
	fs.once.Do(func() {
		snapshot, err := fs.load(ctx)
		if err != nil {
			fs.err = errors.Wrapf(errors.ErrCatalogUnavailable, "%s: %v", fs.path, err)
			return
		}
		fs.packages = snapshot.ToPackages()
	})
	return fs.packages, fs.err
}

func (fs *FileSource) load(ctx context.Context) (*Snapshot, error) {
	file, err := os.Open(fs.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader, closer, err := decompress(ctx, fs.path, file)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	return ParseSnapshotFromReader(reader)
}

// decompress wraps the stream in a decompressor when the file is in a
// recognized compression format; plain files pass through unchanged.
func decompress(ctx context.Context, path string, file io.Reader) (io.Reader, io.Closer, error) {
	format, stream, err := archives.Identify(ctx, path, file)
	if err != nil {
		if err == archives.NoMatch {
			return stream, nil, nil
		}
		return nil, nil, err
	}

	decompressor, ok := format.(archives.Decompressor)
	if !ok {
		return stream, nil, nil
	}
	rc, err := decompressor.OpenReader(stream)
	if err != nil {
		return nil, nil, err
	}
	return rc, rc, nil
}
