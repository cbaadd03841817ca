package archive

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestStore_AppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewStore(path)

	first := Record{ID: "one", Budget: 50, Distance: 5, Status: "success", Response: json.RawMessage(`{"spots":[]}`), Timestamp: "2026-01-01T00:00:00Z"}
	second := Record{ID: "two", Budget: 20, Distance: 2, Status: "success", Response: json.RawMessage(`{"message":"hi"}`), Timestamp: "2026-01-02T00:00:00Z"}

	if err := store.Append(first); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	records, err := store.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "one" || records[1].ID != "two" {
		t.Fatalf("records out of order: %s, %s", records[0].ID, records[1].ID)
	}
	if string(records[1].Response) != `{"message":"hi"}` {
		t.Fatalf("response payload mangled: %s", records[1].Response)
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	records, err := store.Read()
	if err != nil {
		t.Fatalf("missing file should read as empty, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
