// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"

	"github.com/vendingworks/coffeemaker/pkg/logging"
	"github.com/vendingworks/coffeemaker/pkg/machine"
	"github.com/vendingworks/coffeemaker/pkg/server"
)

const (
	name           = "coffeemakerd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/vendingworks/coffeemaker/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs the API for a default-stocked machine with an empty recipe
// book and blocks until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return Run(context.Background(), machine.New())
}

// Run serves m until ctx is canceled or the process is signaled. Server
// options are applied before the API name, version, and routes.
func Run(ctx context.Context, m *machine.Machine, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"capacity", m.Capacity(),
	)

	s := NewServer(m, opts...)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// NewServer builds the HTTP server for m without starting it.
func NewServer(m *machine.Machine, opts ...server.Option) *server.Server {
	all := make([]server.Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all,
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(NewHandler(m).Routes()),
	)
	return server.New(all...)
}
