//go:build database

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// TestLawmatchWithMySQL tests the lawmatch CLI with a MySQL backend.
func TestLawmatchWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "lawmatch",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/lawmatch?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LAWMATCH_ROSTER_BACKEND", "mysql")
	_ = os.Setenv("LAWMATCH_ROSTER_DB_CONNECT", connStr)
	_ = os.Setenv("LAWMATCH_HISTORY_BACKEND", "mysql")
	_ = os.Setenv("LAWMATCH_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LAWMATCH_ROSTER_BACKEND") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_ROSTER_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_HISTORY_DB_CONNECT") }()

	// Run lawmatch check to create the roster tables
	err = runLawmatchCommand(t, "check")
	require.NoError(t, err)

	// Seed a lawyer directly through the MySQL driver
	seedRoster(t, "mysql", connStr)

	// Run lawmatch history clear
	err = runLawmatchCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run lawmatch match against the seeded roster
	err = runLawmatchCommand(t, "match", "fraud", "--limit", "5")
	require.NoError(t, err)

	// Run lawmatch history status
	err = runLawmatchCommand(t, "history", "status")
	require.NoError(t, err)
}

// TestLawmatchWithPostgres tests the lawmatch CLI with a PostgreSQL backend.
func TestLawmatchWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("LAWMATCH_ROSTER_BACKEND", "postgresql")
	_ = os.Setenv("LAWMATCH_ROSTER_DB_CONNECT", connStr)
	_ = os.Setenv("LAWMATCH_HISTORY_BACKEND", "postgresql")
	_ = os.Setenv("LAWMATCH_HISTORY_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("LAWMATCH_ROSTER_BACKEND") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_ROSTER_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_HISTORY_BACKEND") }()
	defer func() { _ = os.Unsetenv("LAWMATCH_HISTORY_DB_CONNECT") }()

	// Run lawmatch check to create the roster tables
	err = runLawmatchCommand(t, "check")
	require.NoError(t, err)

	// Seed a lawyer directly through the pgx driver
	seedRoster(t, "pgx", connStr)

	// Run lawmatch history clear
	err = runLawmatchCommand(t, "history", "clear")
	require.NoError(t, err)

	// Run lawmatch match against the seeded roster
	err = runLawmatchCommand(t, "match", "fraud", "--limit", "5")
	require.NoError(t, err)

	// Run lawmatch history status
	err = runLawmatchCommand(t, "history", "status")
	require.NoError(t, err)
}

// seedRoster inserts one eligible lawyer so match runs have a candidate.
func seedRoster(t *testing.T, driverName, connStr string) {
	db, err := sql.Open(driverName, connStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	if driverName == "pgx" {
		_, err = db.Exec(`INSERT INTO "users" (id, name, email, is_lawyer) VALUES ($1, $2, $3, $4)`,
			1, "Dana Reyes", "dana@example.com", true)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO "lawyer_profiles"
			(id, user_id, name, categories, rating, success_rate, hourly_rate,
			 fixed_rate_min, fixed_rate_max, accepts_contingency, is_available, current_cases, max_cases)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			1, 1, "Dana Reyes", "fraud,consumer protection", 4.6, 0.82, 250.0, 1500.0, 6000.0, true, true, 2, 10)
		require.NoError(t, err)
		return
	}

	_, err = db.Exec("INSERT INTO `users` (id, name, email, is_lawyer) VALUES (?, ?, ?, ?)",
		1, "Dana Reyes", "dana@example.com", true)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO `lawyer_profiles`"+
		" (id, user_id, name, categories, rating, success_rate, hourly_rate,"+
		" fixed_rate_min, fixed_rate_max, accepts_contingency, is_available, current_cases, max_cases)"+
		" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		1, 1, "Dana Reyes", "fraud,consumer protection", 4.6, 0.82, 250.0, 1500.0, 6000.0, true, true, 2, 10)
	require.NoError(t, err)
}

func runLawmatchCommand(t *testing.T, args ...string) error {
	lawmatchPath := getLawmatchBinary()
	cmd := exec.Command(lawmatchPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
