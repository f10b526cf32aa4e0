package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalFileStore writes uploads below a root directory that the router serves
// under URLPrefix
type LocalFileStore struct {
	root      string
	urlPrefix string
}

// NewLocalFileStore creates a file store rooted at root
func NewLocalFileStore(root, urlPrefix string) *LocalFileStore {
	return &LocalFileStore{
		root:      root,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Save writes r to root/dir/name and returns the public URL of the file
func (s *LocalFileStore) Save(dir, name string, r io.Reader) (string, error) {
	dir = filepath.Base(filepath.Clean("/" + dir))
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return "", fmt.Errorf("invalid file name")
	}

	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	file, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(s.urlPrefix, dir, name), nil
}

// Remove deletes a file previously returned by Save. Missing files are ignored.
func (s *LocalFileStore) Remove(url string) error {
	rel := strings.TrimPrefix(url, s.urlPrefix+"/")
	if rel == url {
		return fmt.Errorf("url %q is not managed by this store", url)
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(filepath.Clean("/" + rel))))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
