// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"fmt"

	"github.com/archdiff/archdiff/internal/hashing"
	"github.com/archdiff/archdiff/internal/listing"
	"github.com/archdiff/archdiff/internal/log"
)

// ErrFormat marks a path that a handler (or the whole dispatcher) does not
// recognize. Compare with errors.Is.
var ErrFormat = errors.New("unsupported archive format")

// Handler lists one archive kind. Supports must be cheap and side-effect
// free; List enumerates every declared member, hashing file members and
// yielding digest-less records for directory members. List fails with
// ErrFormat when Supports would return false for the path.
type Handler interface {
	Name() string
	Supports(path string) bool
	List(path string) listing.Seq
}

// Option configures the dispatcher's handlers.
type Option func(*options)

type options struct {
	password string
}

// WithPassword supplies the password used for encrypted 7z archives.
func WithPassword(password string) Option {
	return func(o *options) { o.password = password }
}

// Dispatcher tries handlers in a fixed priority order and delegates to the
// first whose sniffer accepts the path. First match wins; the order is part
// of the contract.
type Dispatcher struct {
	handlers []Handler
}

// NewDispatcher builds the standard handler chain: zip, tar, directory, 7z.
func NewDispatcher(hasher *hashing.Hasher, opts ...Option) *Dispatcher {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{
		handlers: []Handler{
			&zipHandler{hasher: hasher},
			&tarHandler{hasher: hasher},
			&dirHandler{hasher: hasher},
			&sevenZipHandler{hasher: hasher, password: o.password},
		},
	}
}

// HandlerFor returns the first handler supporting the path.
func (d *Dispatcher) HandlerFor(path string) (Handler, error) {
	for _, h := range d.handlers {
		if h.Supports(path) {
			log.Debugf("handler matched: handler=%s path=%s", h.Name(), path)
			return h, nil
		}
	}
	return nil, fmt.Errorf("%s: no handler supports this archive type: %w", path, ErrFormat)
}

// Supports reports whether any registered handler accepts the path.
func (d *Dispatcher) Supports(path string) bool {
	_, err := d.HandlerFor(path)
	return err == nil
}

// List enumerates the archive at path through the first matching handler.
func (d *Dispatcher) List(path string) listing.Seq {
	return func(yield func(listing.Record, error) bool) {
		h, err := d.HandlerFor(path)
		if err != nil {
			yield(listing.Record{}, err)
			return
		}
		for record, err := range h.List(path) {
			if !yield(record, err) {
				return
			}
		}
	}
}
