package scores

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	b, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteGetMissing(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	v, err := b.Get(Key)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != nil {
		t.Errorf("Expected nil for missing key, got %s", v)
	}
}

func TestSQLitePutOverwrites(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	if err := b.Put(Key, []byte("first")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := b.Put(Key, []byte("second")); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	v, err := b.Get(Key)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(v) != "second" {
		t.Errorf("Expected overwritten value, got %s", v)
	}
}

func TestSQLiteNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	b, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOverSQLiteBackend(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	s := NewStore(b)
	defer s.Close()

	s.Submit("alice", 12)
	s.Submit("bob", 99)

	list := s.Load()
	if len(list) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(list))
	}
	if list[0].Name != "bob" || list[0].Score != 99 {
		t.Errorf("Unexpected top entry: %v", list[0])
	}
}

func TestStoreSQLiteMalformedValue(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	if err := b.Put(Key, []byte("not json at all")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	s := NewStore(b)
	if list := s.Load(); len(list) != 0 {
		t.Errorf("Expected malformed value to load as empty, got %v", list)
	}
}
