package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func TestOpenSQLite_ErrorOnBadPath(t *testing.T) {
	base := t.TempDir()
	bad := filepath.Join(base, "does-not-exist", "qa.db")

	db, err := OpenSQLite(bad, nil)
	if err == nil || db != nil {
		t.Fatalf("expected error opening %q, got db=%v err=%v", bad, db, err)
	}

	// Be tolerant across platforms/drivers.
	lower := strings.ToLower(err.Error())
	if !(os.IsNotExist(err) ||
		strings.Contains(lower, "unable to open database file") ||
		strings.Contains(lower, "no such file or directory") ||
		strings.Contains(lower, "out of memory")) {
		t.Fatalf("unexpected error opening %q: %v", bad, err)
	}
}

func TestSQLiteDSN(t *testing.T) {
	got := SQLiteDSN("qa.db")
	want := "qa.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	if got != want {
		t.Fatalf("SQLiteDSN = %q\nwant        %q", got, want)
	}
	if got := SQLiteDSN("file:x?mode=rwc"); !strings.HasPrefix(got, "file:x?mode=rwc&_pragma=") {
		t.Fatalf("existing query not extended: %q", got)
	}
}

func TestOpen_SQLite_PragmasPoolAndBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa.db")

	db, err := Open(Options{Driver: DriverSQLite, Path: path, MaxOpenConns: 3, Silent: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	var (
		journalMode string
		fkOn        int
		busyMS      int
	)
	if err := db.Raw("PRAGMA journal_mode;").Row().Scan(&journalMode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if strings.ToLower(journalMode) != "wal" {
		t.Fatalf("expected journal_mode=wal, got %q", journalMode)
	}
	if err := db.Raw("PRAGMA foreign_keys;").Row().Scan(&fkOn); err != nil {
		t.Fatalf("PRAGMA foreign_keys: %v", err)
	}
	if fkOn != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkOn)
	}
	if err := db.Raw("PRAGMA busy_timeout;").Row().Scan(&busyMS); err != nil {
		t.Fatalf("PRAGMA busy_timeout: %v", err)
	}
	if busyMS != 5000 {
		t.Fatalf("expected busy_timeout=5000, got %d", busyMS)
	}

	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 3 {
		t.Fatalf("expected MaxOpenConnections=3, got %d", stats.MaxOpenConnections)
	}

	// Bootstrapping twice is harmless.
	for i := 0; i < 2; i++ {
		if err := BootstrapSchema(db); err != nil {
			t.Fatalf("BootstrapSchema #%d: %v", i+1, err)
		}
	}
	m := db.Migrator()
	for _, tbl := range []string{"questions", "answers"} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table %s to exist", tbl)
		}
	}
}

func TestOpen_DefaultPoolSize(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "qa.db"), Silent: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	if got := sqlDB.Stats().MaxOpenConnections; got != 5 {
		t.Fatalf("default MaxOpenConnections = %d; want 5", got)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(Options{Driver: "oracle"}); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	if _, err := Open(Options{Driver: DriverMemory}); err == nil {
		t.Fatalf("memory driver has no SQL pool; expected error")
	}
	if _, err := Open(Options{Driver: DriverPostgres, DSN: "  "}); err == nil {
		t.Fatalf("expected empty dsn error")
	}
}

// Compile-time guard to ensure signature stability.
var _ func(string, *gorm.Config) (*gorm.DB, error) = OpenSQLite
