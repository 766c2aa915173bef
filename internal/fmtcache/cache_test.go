package fmtcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupMissOnEmptyCache(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), ".cstyle-cache"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Lookup("a.c", "hash1", "opt1") {
		t.Fatalf("expected a miss on an empty cache")
	}
}

func TestPutThenLookupHits(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), ".cstyle-cache"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Put("a.c", "hash1", "opt1")
	if !c.Lookup("a.c", "hash1", "opt1") {
		t.Fatalf("expected a hit after Put with matching hashes")
	}
	if c.Lookup("a.c", "hash2", "opt1") {
		t.Fatalf("expected a miss after content hash changed")
	}
	if c.Lookup("a.c", "hash1", "opt2") {
		t.Fatalf("expected a miss after options hash changed")
	}
}

func TestSaveAndReopenPersistsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cstyle-cache")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c.Put("a.c", "hash1", "opt1")
	c.Put("b.c", "hash2", "opt1")
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected cache file to exist: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.Lookup("a.c", "hash1", "opt1") {
		t.Fatalf("expected persisted entry for a.c to survive reopen")
	}
	if !reopened.Lookup("b.c", "hash2", "opt1") {
		t.Fatalf("expected persisted entry for b.c to survive reopen")
	}
}

func TestOpenCorruptFileIsTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cstyle-cache")
	if err := os.WriteFile(path, []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open on corrupt file should not error: %v", err)
	}
	if c.Lookup("a.c", "hash1", "opt1") {
		t.Fatalf("expected a miss when the on-disk cache was corrupt")
	}
}

func TestHashFunctionsAreDeterministicAndDistinguishing(t *testing.T) {
	if HashContent([]byte("a;")) != HashContent([]byte("a;")) {
		t.Fatalf("HashContent is not deterministic")
	}
	if HashContent([]byte("a;")) == HashContent([]byte("b;")) {
		t.Fatalf("HashContent collided for distinct inputs")
	}
	if HashOptions("--style=allman") == HashOptions("--style=kr") {
		t.Fatalf("HashOptions collided for distinct option strings")
	}
}
