package integration

import (
	"fmt"
	"github.com/QuangTung97/crowdfund-escrow/config"
	"github.com/QuangTung97/crowdfund-escrow/pkg/migration"
	"github.com/jmoiron/sqlx"
	"os"
	"path"
	"sync"
	"testing"

	// for integration test, must not be imported in any main.go
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB
var globalErr error

// NewTestCase connects to the test database, the test is skipped when MySQL is unreachable
func NewTestCase(t *testing.T) *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)

		db, err := conf.MySQL.Connect()
		if err != nil {
			globalErr = err
			return
		}

		err = migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())
		if err != nil {
			globalErr = err
			return
		}

		globalConf = conf
		globalDB = db
	})

	if globalErr != nil {
		t.Skip("mysql is not available:", globalErr)
	}

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}
