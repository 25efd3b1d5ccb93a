//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command fetch-trusted-logos downloads the trusted university logos into
// public/trusted-logos/logo-01.png .. logo-16.png.
package main

import (
	"context"
	"os"

	"github.com/juju/loggo"
	"go.bug.st/logofetch"
)

var logger = loggo.GetLogger("fetch-trusted-logos")

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	if err := loggo.ConfigureLoggers("<root>=INFO"); err != nil {
		logger.Errorf("configuring loggers: %v", err)
		return 1
	}

	config := logofetch.DefaultConfig()
	fetcher := logofetch.NewFetcher(config)
	defer fetcher.Close()

	if err := logofetch.NewDriver(fetcher, config).Run(ctx, logofetch.TrustedLogos()); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}
