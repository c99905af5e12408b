package blob

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore menulis objek ke disk lokal. Dipakai untuk dev & test;
// produksi pakai OSSStore.
type LocalStore struct {
	Root    string // direktori dasar, mis. "./storage"
	BaseURL string // prefix URL publik, mis. "/storage"
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.Root, filepath.FromSlash(key))
}

func (s *LocalStore) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(s.path(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *LocalStore) Put(_ context.Context, key string, r io.Reader, _ string) error {
	p := s.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *LocalStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) PublicURL(key string) string {
	return s.BaseURL + "/" + path.Clean(key)
}

func (s *LocalStore) KeyFromPublicURL(publicURL string) string {
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(publicURL, prefix)
}
