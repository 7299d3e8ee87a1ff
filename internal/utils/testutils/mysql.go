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

package testutils

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

var (
	mysqlTestContainerImage          = "mysql:8"
	mysqlTestContainerPort  nat.Port = "3306"
)

const (
	MysqlRootUser     = "root"
	MysqlRootPassword = testContainerPassword
)

// MySQLContainerSuite - runs a MySQL container for the whole suite. The
// migrations are executed by root one statement at a time.
type MySQLContainerSuite struct {
	suite.Suite
	Container     testcontainers.Container
	MigrationUp   []string
	MigrationDown []string
}

func (s *MySQLContainerSuite) SetupSuite() {
	ctx := context.Background()
	var err error
	s.Container, err = tcmysql.Run(
		ctx,
		mysqlTestContainerImage,
		testcontainers.CustomizeRequestOption(
			func(req *testcontainers.GenericContainerRequest) error {
				req.Env["MYSQL_ROOT_PASSWORD"] = MysqlRootPassword
				req.Env["MYSQL_USER"] = testContainerUser
				req.Env["MYSQL_PASSWORD"] = testContainerPassword
				req.Env["MYSQL_DATABASE"] = testContainerDatabase
				return nil
			},
		),
	)
	s.Require().NoErrorf(err, "failed to start MySQL Container")

	s.MigrateUp(ctx, s.MigrationUp)
}

func (s *MySQLContainerSuite) TearDownSuite() {
	ctx := context.Background()
	s.MigrateDown(ctx, s.MigrationDown)
	err := s.Container.Terminate(ctx)
	s.Assert().NoErrorf(err, "failed to terminate MySQL Container")
}

func (s *MySQLContainerSuite) SetMigrationUp(sqls []string) *MySQLContainerSuite {
	s.MigrationUp = sqls
	return s
}

func (s *MySQLContainerSuite) SetMigrationDown(sqls []string) *MySQLContainerSuite {
	s.MigrationDown = sqls
	return s
}

func (s *MySQLContainerSuite) GetConnectionURI(ctx context.Context) string {
	return s.GetConnectionURIWithUser(ctx, testContainerUser, testContainerPassword)
}

func (s *MySQLContainerSuite) GetConnectionURIWithUser(ctx context.Context, username, password string) string {
	host, err := s.Container.Host(ctx)
	s.Require().NoErrorf(err, "failed to get Container host")
	port, err := s.Container.MappedPort(ctx, mysqlTestContainerPort)
	s.Require().NoErrorf(err, "failed to get Container port")
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		username, password, host, port.Port(), testContainerDatabase,
	)
}

func (s *MySQLContainerSuite) GetConnection(ctx context.Context) (*sql.DB, error) {
	return s.GetConnectionWithUser(ctx, testContainerUser, testContainerPassword)
}

func (s *MySQLContainerSuite) GetConnectionWithUser(ctx context.Context, username, password string) (*sql.DB, error) {
	db, err := sql.Open("mysql", s.GetConnectionURIWithUser(ctx, username, password))
	if err != nil {
		return nil, fmt.Errorf("open mysql connection: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

func (s *MySQLContainerSuite) MigrateUp(ctx context.Context, sqls []string) {
	s.exec(ctx, sqls, "up")
}

func (s *MySQLContainerSuite) MigrateDown(ctx context.Context, sqls []string) {
	s.exec(ctx, sqls, "down")
}

func (s *MySQLContainerSuite) exec(ctx context.Context, sqls []string, direction string) {
	if len(sqls) == 0 {
		return
	}
	conn, err := s.GetConnectionWithUser(ctx, MysqlRootUser, MysqlRootPassword)
	s.Require().NoErrorf(err, "failed to connect to MySQL")
	defer conn.Close()
	s.Require().NoErrorf(conn.PingContext(ctx), "failed to ping MySQL")
	for i, migration := range sqls {
		log.Debug().
			Str("migration", migration).
			Str("direction", direction).
			Int("index", i).
			Msg("running migration")
		_, err = conn.ExecContext(ctx, migration)
		s.Require().NoErrorf(err, "failed to run %s migration", direction)
	}
}
