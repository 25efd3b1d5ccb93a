//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jujuerrors "github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/retry"
)

var logger = loggo.GetLogger("logofetch")

// Fetcher downloads single images, retrying rate-limited requests.
// A Fetcher owns its HTTP client: call Close when done.
type Fetcher struct {
	client *http.Client
	config Config
}

// NewFetcher returns a Fetcher using the given configuration. Zero fields
// of config are replaced with the values of DefaultConfig.
func NewFetcher(config Config) *Fetcher {
	config = config.withDefaults()
	client := config.HttpClient
	return &Fetcher{
		client: &client,
		config: config,
	}
}

// Close releases the idle connections kept by the Fetcher's client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// URL returns the address requested for identifier.
func (f *Fetcher) URL(identifier string) string {
	query := url.Values{"width": {strconv.Itoa(f.config.Width)}}
	return strings.TrimSuffix(f.config.BaseURL, "/") + "/" + url.PathEscape(identifier) + "?" + query.Encode()
}

// Fetch downloads the image named identifier and returns its content.
//
// Responses with status 429 or 503 are retried, waiting Config.Backoff(k)
// after the failed attempt k, up to Config.Attempts requests in total.
// Any other response that is not a 200 with an image/* content type fails
// immediately. Every failure is reported as a *FetchError; when all
// attempts were rate limited it wraps ErrRetriesExhausted.
func (f *Fetcher) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	reqURL := f.URL(identifier)

	var data []byte
	var last *FetchError
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			var err error
			data, err = f.fetchOnce(ctx, identifier, reqURL)
			if err != nil {
				_ = errors.As(err, &last)
			}
			return err
		},
		IsFatalError: func(err error) bool {
			var fetchErr *FetchError
			return !errors.As(err, &fetchErr) || !fetchErr.Transient()
		},
		NotifyFunc: func(err error, attempt int) {
			logger.Debugf("attempt %d/%d: %v", attempt, f.config.Attempts, err)
		},
		Attempts: f.config.Attempts,
		// Replaced by BackoffFunc before the first wait.
		Delay: time.Second,
		BackoffFunc: func(_ time.Duration, attempt int) time.Duration {
			delay := f.config.Backoff(attempt - 1)
			logger.Warningf("Rate limited for %s. Retrying in %s...", identifier, delay)
			return delay
		},
		Clock: f.config.Clock,
		Stop:  ctx.Done(),
	})
	switch {
	case err == nil:
		return data, nil
	case retry.IsRetryStopped(err):
		return nil, &FetchError{Identifier: identifier, Err: ctx.Err()}
	case retry.IsAttemptsExceeded(err):
		exhausted := &FetchError{Identifier: identifier, Err: ErrRetriesExhausted}
		if last != nil {
			exhausted.StatusCode = last.StatusCode
			exhausted.ContentType = last.ContentType
		}
		return nil, exhausted
	case last != nil:
		return nil, last
	default:
		return nil, jujuerrors.Annotatef(err, "fetching %s", identifier)
	}
}

// fetchOnce performs a single GET request for identifier.
func (f *Fetcher) fetchOnce(ctx context.Context, identifier, reqURL string) ([]byte, error) {
	ctx, wd := newWatchdog(ctx, f.config.Timeout)
	defer wd.Cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Identifier: identifier, Err: fmt.Errorf("setting up HTTP request: %w", err)}
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	for k, v := range f.config.ExtraHeaders {
		req.Header.Set(k, v)
	}

	logger.Debugf("GET %s", reqURL)
	resp, err := f.client.Do(req)
	if err != nil {
		if cause := wd.Err(); cause != nil {
			err = cause
		}
		return nil, &FetchError{Identifier: identifier, Err: fmt.Errorf("performing HTTP request: %w", err)}
	}
	defer resp.Body.Close()
	wd.Kick()

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(contentType, "image/") {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, &FetchError{
			Identifier:  identifier,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
		}
	}

	data, err := readBody(resp.Body, wd)
	if err != nil {
		if cause := wd.Err(); cause != nil {
			err = cause
		}
		return nil, &FetchError{
			Identifier:  identifier,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Err:         fmt.Errorf("reading response body: %w", err),
		}
	}
	return data, nil
}

// readBody reads in until EOF, kicking the watchdog on every chunk.
func readBody(in io.Reader, wd *watchdog) ([]byte, error) {
	var out bytes.Buffer
	buff := [4096]byte{}
	for {
		n, err := in.Read(buff[:])
		if n > 0 {
			out.Write(buff[:n])
			wd.Kick()
		}
		if err == io.EOF {
			return out.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
