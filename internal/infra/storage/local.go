package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnknownBucket = errors.New("unknown bucket")

// Buckets are the storage namespaces uploads may target.
var Buckets = []string{"profile-images", "product-images", "general-assets"}

func ValidBucket(name string) bool {
	for _, b := range Buckets {
		if b == name {
			return true
		}
	}
	return false
}

// Object describes a stored file.
type Object struct {
	Bucket string
	Name   string
	Path   string
	URL    string
	Size   int64
}

// Local stores objects under root/<bucket>/ and serves them from
// baseURL/uploads/<bucket>/.
type Local struct {
	root    string
	baseURL string
}

func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Root() string { return l.root }

// Save writes r into bucket under a name derived from filename.
func (l *Local) Save(bucket, filename string, r io.Reader) (Object, error) {
	if !ValidBucket(bucket) {
		return Object{}, fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}

	dir := filepath.Join(l.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, fmt.Errorf("storage: create bucket dir: %w", err)
	}

	name := ObjectName(filename)
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return Object{}, fmt.Errorf("storage: create object: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("storage: write object: %w", err)
	}

	return Object{
		Bucket: bucket,
		Name:   name,
		Path:   path,
		URL:    l.baseURL + "/uploads/" + bucket + "/" + name,
		Size:   n,
	}, nil
}

// Remove deletes a stored object. A missing file is not an error.
func (l *Local) Remove(obj Object) error {
	if err := os.Remove(obj.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove object: %w", err)
	}
	return nil
}
