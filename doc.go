//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package logofetch downloads a fixed, ordered list of images from an
// HTTP file endpoint, retrying rate-limited requests with exponential
// backoff, and stores them locally under sequential file names.
package logofetch
