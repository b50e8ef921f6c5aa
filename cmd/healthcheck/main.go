// main.go
//
// Boerd: collect and organize mixed-media content on boards
// Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)
//
// This file is part of boerd.
// boerd is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boerd is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boerd.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 The Boerd Authors (https://github.com/dhiyaancnirmal/boerd)"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

func main() {
	os.Exit(run())
}

// run returns the exit code, so deferred closes happen before os.Exit
func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	db, err := database.Connect(cfg, database.Options{LogLevel: logger.Silent, Log: zerolog.Nop()})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return 1
	}
	defer database.Close(db)

	store, err := storage.New(cfg)
	if err != nil {
		log.Printf("Failed to create storage adapter: %v", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Perform health check
	result := services.HealthCheck(ctx, cfg, db, store)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal health check result: %v", err)
		return 1
	}
	fmt.Println(string(output))

	if !result.Healthy() {
		return 1
	}
	return 0
}
