package checkpoint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty checkpoint, got %d entries", f.Len())
	}
}

func TestMarkDone_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "checkpoint.json")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.MarkDone("finance_auditor_lvl3", 20); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	if err := f.MarkDone("soft_skills", 18); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.Done("finance_auditor_lvl3") {
		t.Error("finance_auditor_lvl3 lost across reopen")
	}
	if !reopened.Done("soft_skills") {
		t.Error("soft_skills lost across reopen")
	}
	if reopened.Done("finance_auditor_lvl4") {
		t.Error("unknown key reported as done")
	}

	entry, ok := reopened.Entries()["soft_skills"]
	if !ok || entry.Questions != 18 {
		t.Errorf("entry = %+v", entry)
	}
	if entry.CompletedAt.IsZero() {
		t.Error("completed_at not recorded")
	}
}

func TestKeys_Sorted(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "checkpoint.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, key := range []string{"b_unit", "a_unit", "c_unit"} {
		if err := f.MarkDone(key, 20); err != nil {
			t.Fatalf("mark done: %v", err)
		}
	}

	keys := f.Keys()
	want := []string{"a_unit", "b_unit", "c_unit"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestReset_ClearsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.MarkDone("education_teacher_lvl1", 20); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty after reset, got %d", f.Len())
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Len() != 0 {
		t.Error("reset did not persist")
	}
}

func TestOpen_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt checkpoint")
	}
}

func TestOpen_EmptyFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty checkpoint, got %d", f.Len())
	}
}
