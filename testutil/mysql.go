// Package testutil hosts a temporary in-process MySQL server so service
// tests exercise the real record store contract without external
// infrastructure.
package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"moviecatalogapi/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testDatabase = "movie_catalog_test"

// GetFreePort returns a TCP port that is free at the time of the call.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// NewTestDB starts a temporary in-memory MySQL server, connects GORM to it
// and migrates the catalog schema. The server is torn down with the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	port, err := GetFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}

	catalogDB := memory.NewDatabase(testDatabase)
	provider := memory.NewDBProvider(catalogDB)
	engine := sqle.NewDefault(provider)

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}

	s, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		t.Fatalf("failed to create in-memory MySQL server: %v", err)
	}

	go func() {
		_ = s.Start()
	}()
	t.Cleanup(func() {
		_ = s.Close()
	})

	waitForServer(t, port)

	dsn := fmt.Sprintf("root:@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", port, testDatabase)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// The memory backend keeps no referential metadata worth migrating.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect GORM to in-memory MySQL: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate catalog schema: %v", err)
	}

	return db
}

// waitForServer polls server readiness with a timeout to prevent indefinite blocking.
func waitForServer(t *testing.T, port int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("in-memory MySQL server failed to start on port %d", port)
}
