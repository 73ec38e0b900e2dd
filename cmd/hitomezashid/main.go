// hitomezashi-stitch - Hitomezashi stitch patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command hitomezashid serves Hitomezashi patterns over HTTP.
//
// The service is configured through the environment variables PORT, ENV,
// READ_TIMEOUT, WRITE_TIMEOUT and MAX_IMAGE_SIZE.
package main

import (
	"fmt"
	"log/slog"
	"os"

	hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"
	"github.com/toolbarthomas/hitomezashi-stitch/internal/config"
	"github.com/toolbarthomas/hitomezashi-stitch/internal/server"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Environment == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	hitomezashi.SetLogger(logger)

	app := server.New(cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting pattern service", "addr", addr, "env", cfg.Environment)

	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
