// Copyright 2025 Greenmask
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

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/recordext/internal/domains"
	"github.com/greenmaskio/recordext/pkg/recordext"
)

const (
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
	EngineSQLite   = "sqlite"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrEmptyDSN      = errors.New("dsn is empty")
)

// Rows - the result set positioned on the current row.
type Rows interface {
	recordext.Reader
	NextContext(ctx context.Context) bool
	Err() error
	Close() error
}

// Source - an opened database connection.
type Source interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	// Flavor - the SQL dialect of the engine.
	Flavor() sqlbuilder.Flavor
	Close(ctx context.Context) error
}

func Open(ctx context.Context, cfg domains.Connection) (Source, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}
	log.Debug().
		Str("engine", cfg.Engine).
		Msg("opening connection")

	switch cfg.Engine {
	case EnginePostgres:
		return openPostgres(ctx, cfg.DSN)
	case EngineMySQL:
		return openSQL(ctx, "mysql", cfg.DSN, sqlbuilder.MySQL)
	case EngineSQLite:
		return openSQL(ctx, "sqlite", cfg.DSN, sqlbuilder.SQLite)
	}
	return nil, fmt.Errorf("engine \"%s\": %w", cfg.Engine, ErrUnknownEngine)
}
