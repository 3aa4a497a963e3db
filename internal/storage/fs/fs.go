// Package fs implements the media object store on the local filesystem.
// Keys map to files under a single root directory and public URLs are the
// key appended to a configured URL prefix.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct {
	rootPath  string
	urlPrefix string
}

func New(rootPath, urlPrefix string) (*Storage, error) {
	// filepath.Clean prevents traversal like "media/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media root directory %s: %w", p, err)
	}

	return &Storage{rootPath: p, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Root returns the filesystem root the store writes under, for serving
// media over HTTP with a file server.
func (s *Storage) Root() string {
	return s.rootPath
}

// Save writes an object under the given key and returns its public URL.
func (s *Storage) Save(key string, data io.Reader) (string, error) {
	cleanKey := filepath.Base(filepath.Clean(key))
	fullPath := filepath.Join(s.rootPath, cleanKey)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		os.Remove(fullPath) // best effort cleanup of the partial file
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return s.PublicURL(cleanKey), nil
}

// PublicURL returns the URL a stored object is served under.
func (s *Storage) PublicURL(key string) string {
	return s.urlPrefix + "/" + key
}

// Read opens a stored object for reading.
func (s *Storage) Read(key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filepath.Clean(key)))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("media object not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}

	return file, nil
}

// Delete removes a stored object. Deleting a missing object is not an error.
func (s *Storage) Delete(key string) error {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filepath.Clean(key)))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	return nil
}
