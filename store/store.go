// Package store keeps named images and runs transform requests between them.
//
// A Store is owned by its caller and safe for concurrent use. Results are
// published under their destination alias only when a request succeeds, so
// a failed request never replaces or corrupts a stored image.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	imagecore "github.com/mrjoshuak/go-imagecore"
)

// ErrUnknownAlias is returned when no image is stored under an alias.
var ErrUnknownAlias = errors.New("unknown alias")

// Store maps aliases to images.
type Store struct {
	mu     sync.RWMutex
	images map[string]*imagecore.Image
}

// New returns an empty store.
func New() *Store {
	return &Store{images: make(map[string]*imagecore.Image)}
}

// Put stores img under alias, replacing any previous image.
func (s *Store) Put(alias string, img *imagecore.Image) error {
	if alias == "" {
		return fmt.Errorf("%w: empty alias", imagecore.ErrInvalidArgument)
	}
	if img == nil {
		return fmt.Errorf("%w: nil image for %q", imagecore.ErrInvalidArgument, alias)
	}
	s.mu.Lock()
	s.images[alias] = img
	s.mu.Unlock()
	return nil
}

// Get returns the image stored under alias.
func (s *Store) Get(alias string) (*imagecore.Image, error) {
	s.mu.RLock()
	img, ok := s.images[alias]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	return img, nil
}

// Delete removes alias and reports whether it was present.
func (s *Store) Delete(alias string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.images[alias]
	delete(s.images, alias)
	return ok
}

// Aliases returns the stored aliases in sorted order.
func (s *Store) Aliases() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Run applies req to the image under src and stores the result under dst.
// src and dst may be the same alias.
func (s *Store) Run(src, dst string, req imagecore.Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", imagecore.ErrUnknownRequest)
	}
	img, err := s.Get(src)
	if err != nil {
		return err
	}
	out, err := imagecore.Apply(img, req)
	if err != nil {
		return fmt.Errorf("%s %q: %w", req.Name(), src, err)
	}
	return s.Put(dst, out)
}

// Merge combines the red channel of red, the green channel of green and the
// blue channel of blue into a new image stored under dst.
func (s *Store) Merge(dst, red, green, blue string) error {
	var srcs [3]*imagecore.Image
	for i, alias := range [3]string{red, green, blue} {
		img, err := s.Get(alias)
		if err != nil {
			return err
		}
		srcs[i] = img
	}
	out, err := imagecore.Merge(srcs[0], srcs[1], srcs[2])
	if err != nil {
		return fmt.Errorf("merge into %q: %w", dst, err)
	}
	return s.Put(dst, out)
}
