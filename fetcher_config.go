//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

import (
	"net/http"
	"time"

	"github.com/juju/clock"
)

// Config contains the configuration for the Fetcher and the Driver
type Config struct {
	// HttpClient to use to perform HTTP requests. Redirects are followed
	// according to its CheckRedirect policy (the default follows up to 10).
	HttpClient http.Client
	// BaseURL is the endpoint the identifiers are appended to.
	BaseURL string
	// Width is sent as the "width" query parameter.
	Width int
	// UserAgent is sent with every request.
	UserAgent string
	// ExtraHeaders to add to the HTTP requests.
	ExtraHeaders map[string]string
	// Attempts is the maximum number of requests issued for one identifier.
	Attempts int
	// Timeout is the inactivity timeout of a single attempt: the attempt
	// is aborted if no response or body data is received for this long.
	Timeout time.Duration
	// Backoff returns the wait before retrying after the failed attempt k
	// (0-indexed).
	Backoff func(k int) time.Duration
	// Clock is used for backoff and pacing waits.
	Clock clock.Clock

	// OutputDir is the directory the Driver writes files into.
	OutputDir string
	// FilePrefix and FileExt build the output file names: <prefix>-NN<ext>.
	FilePrefix string
	FileExt    string
	// PacingDelay is the wait after each successfully saved item.
	PacingDelay time.Duration
}

// DefaultConfig returns the configuration used to fetch the trusted logos.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "https://en.wikipedia.org/wiki/Special:FilePath",
		Width:       420,
		UserAgent:   "AideTrustedLogosBot/1.0",
		Attempts:    7,
		Timeout:     60 * time.Second,
		Backoff:     ExponentialBackoff(time.Second, 20*time.Second),
		Clock:       clock.WallClock,
		OutputDir:   "public/trusted-logos",
		FilePrefix:  "logo",
		FileExt:     ".png",
		PacingDelay: 1250 * time.Millisecond,
	}
}

// withDefaults returns a copy of c where every zero field is taken from
// DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Attempts == 0 {
		c.Attempts = def.Attempts
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.Backoff == nil {
		c.Backoff = def.Backoff
	}
	if c.Clock == nil {
		c.Clock = def.Clock
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.FilePrefix == "" {
		c.FilePrefix = def.FilePrefix
	}
	if c.FileExt == "" {
		c.FileExt = def.FileExt
	}
	if c.PacingDelay == 0 {
		c.PacingDelay = def.PacingDelay
	}
	return c
}

// ExponentialBackoff returns a backoff function yielding base*2^k, capped
// at maxDelay.
func ExponentialBackoff(base, maxDelay time.Duration) func(k int) time.Duration {
	return func(k int) time.Duration {
		if k < 0 {
			k = 0
		}
		if k > 30 {
			return maxDelay
		}
		d := base << uint(k)
		if d > maxDelay || d <= 0 {
			return maxDelay
		}
		return d
	}
}
