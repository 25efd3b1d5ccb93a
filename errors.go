//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRetriesExhausted is wrapped by a FetchError when every attempt got a
// transient response.
var ErrRetriesExhausted = errors.New("exceeded retry attempts")

// FetchError is returned by Fetcher.Fetch when an identifier could not be
// downloaded.
type FetchError struct {
	// Identifier that failed.
	Identifier string
	// StatusCode and ContentType of the last response received, if any.
	StatusCode  int
	ContentType string
	// Err is the underlying cause: ErrRetriesExhausted, a transport error,
	// or nil for an unexpected response.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		contentType := e.ContentType
		if contentType == "" {
			contentType = "unknown type"
		}
		return fmt.Sprintf("failed to fetch %s: HTTP %d (%s)", e.Identifier, e.StatusCode, contentType)
	}
	if errors.Is(e.Err, ErrRetriesExhausted) && e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: %s (last response HTTP %d)", e.Identifier, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.Identifier, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Transient reports whether the failure is a rate-limit or temporary
// unavailability response that may succeed if retried.
func (e *FetchError) Transient() bool {
	if e.Err != nil {
		return false
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusServiceUnavailable
}
