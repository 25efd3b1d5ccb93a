//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
)

// Item is an identifier with its 1-based position in the batch
type Item struct {
	Identifier string
	Position   int
}

// NewItems numbers identifiers starting from 1, preserving their order.
func NewItems(identifiers []string) []Item {
	items := make([]Item, len(identifiers))
	for i, id := range identifiers {
		items[i] = Item{Identifier: id, Position: i + 1}
	}
	return items
}

// FileName returns "<prefix>-NN<ext>" where NN is the zero-padded position.
func (i Item) FileName(prefix, ext string) string {
	return fmt.Sprintf("%s-%02d%s", prefix, i.Position, ext)
}

// ItemFetcher returns the content for an identifier.
type ItemFetcher interface {
	Fetch(ctx context.Context, identifier string) ([]byte, error)
}

// Driver saves a batch of identifiers, one after the other, into the
// output directory.
type Driver struct {
	fetcher ItemFetcher
	config  Config
}

// NewDriver returns a Driver fetching through fetcher. Zero fields of
// config are replaced with the values of DefaultConfig.
func NewDriver(fetcher ItemFetcher, config Config) *Driver {
	return &Driver{
		fetcher: fetcher,
		config:  config.withDefaults(),
	}
}

// Path returns the output file path for item.
func (d *Driver) Path(item Item) string {
	return filepath.Join(d.config.OutputDir, item.FileName(d.config.FilePrefix, d.config.FileExt))
}

// Run fetches identifiers in order and writes each one to its indexed
// output file, overwriting existing files. It waits Config.PacingDelay
// after every saved item. The first error stops the batch: files saved
// before it are left in place and the remaining identifiers are not
// fetched.
func (d *Driver) Run(ctx context.Context, identifiers []string) error {
	if err := os.MkdirAll(d.config.OutputDir, 0755); err != nil {
		return errors.Annotatef(err, "creating output directory %s", d.config.OutputDir)
	}

	for _, item := range NewItems(identifiers) {
		data, err := d.fetcher.Fetch(ctx, item.Identifier)
		if err != nil {
			return errors.Annotatef(err, "item %02d", item.Position)
		}

		path := d.Path(item)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.Annotatef(err, "writing %s", path)
		}
		logger.Infof("Saved %s <- %s (%s)", path, item.Identifier, humanize.Bytes(uint64(len(data))))

		select {
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		case <-d.config.Clock.After(d.config.PacingDelay):
		}
	}
	return nil
}
