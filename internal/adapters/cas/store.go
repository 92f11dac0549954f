// Package cas implements a content-addressed store for code requests.
package cas

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/codereq/internal/core/codec"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
)

// idLength is the length of a hex encoded xxhash64 digest.
const idLength = 16

var _ ports.RequestStore = (*Store)(nil)

// Store implements ports.RequestStore with one JSON record per request,
// named after the digest of its content.
type Store struct {
	codec *codec.Codec
}

// NewStore creates a Store using the default codec.
func NewStore() *Store {
	return &Store{codec: codec.Default()}
}

// IsID reports whether s has the shape of a request id.
func IsID(s string) bool {
	if len(s) != idLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Put stores req under root and returns its id.
func (s *Store) Put(root string, req domain.Request) (string, error) {
	data, err := s.codec.ToJSON(req)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	id := fmt.Sprintf("%016x", xxhash.Sum64(data))
	filename := s.filename(root, id)

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is built from the store directory and a hex digest
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return id, nil
}

// Get retrieves the request stored under id. It returns nil, nil when no such
// request exists, including when id is not a valid request id.
func (s *Store) Get(root, id string) (domain.Request, error) {
	if !IsID(id) {
		return nil, nil
	}

	//nolint:gosec // Path is built from the store directory and a hex digest
	data, err := os.ReadFile(s.filename(root, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	e, err := s.codec.FromJSON(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "id", id)
	}
	req, ok := e.(domain.Request)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnexpectedVariant, domain.ErrStoreReadFailed.Error()), "id", id)
	}

	return req, nil
}

func (s *Store) filename(root, id string) string {
	return filepath.Join(root, domain.DefaultStorePath(), id+".json")
}
