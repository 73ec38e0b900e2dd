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

// Package server implements an HTTP service which renders Hitomezashi
// patterns as SVG or PNG images.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/toolbarthomas/hitomezashi-stitch/internal/config"
)

// Server holds the state shared by the request handlers.
type Server struct {
	cfg *config.Config
}

// New returns the fiber application serving the pattern endpoints.
func New(cfg *config.Config) *fiber.App {
	s := &Server{cfg: cfg}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Hitomezashi",
	})

	app.Use(recover.New())
	app.Use(requestLogger())

	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", ReadinessProbe)

	app.Get("/pattern.svg", s.PatternSVG)
	app.Get("/pattern.png", s.PatternPNG)

	return app
}

func requestLogger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}?${queryParams}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

// LivenessProbe reports that the service is running.
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe reports that the service accepts requests.
func ReadinessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}
