package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"voteverse-backend/internal/config"
	"voteverse-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "voteverse"
	pgPassword = "voteverse"
	pgDatabase = "voteverse_test"
)

// One Postgres container serves every suite in the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
	sharedTables   []string
)

// BaseTestSuite gives repository and service suites a migrated database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and
// returns a suite bound to it. Call it from SetupSuite.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:     sharedDB,
		Config: sharedConfig,
	}
}

// RunWithTestSuite runs testFunc against a clean database
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// CleanupSharedContainer closes the pool and purges the container. TestMain
// calls it once the package's tests have finished.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every migrated table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(sharedTables) == 0 {
		return
	}
	quoted := make([]string, len(sharedTables))
	for i, table := range sharedTables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: truncate failed: %v", err)
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	_ = resource.Expire(600)

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	gdb, err := database.Initialize(dsn, &database.Options{AutoMigrate: true})
	if err != nil {
		return err
	}
	tables, err := migratedTables(gdb)
	if err != nil {
		return err
	}
	sharedDB = gdb
	sharedTables = tables

	sharedConfig = &config.Config{
		DatabaseURL:         dsn,
		Port:                "8080",
		LogLevel:            "debug",
		Environment:         "test",
		BlobDriver:          "memory",
		VoiceMaxAttempts:    3,
		VoiceAttemptWindow:  24 * time.Hour,
		VoiceMaxUploadBytes: 1 << 20,
	}

	log.Printf("Shared Postgres ready on %s with tables %v", hostPort, tables)
	return nil
}

// migratedTables resolves the table of every model and fails if one is missing
func migratedTables(db *gorm.DB) ([]string, error) {
	var tables []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		if !db.Migrator().HasTable(stmt.Schema.Table) {
			return nil, fmt.Errorf("table %s was not migrated", stmt.Schema.Table)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}
