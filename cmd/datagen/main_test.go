package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCLIRejectsBadFlags(t *testing.T) {
	if code := cli([]string{"-bogus"}, io.Discard, io.Discard); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestCLIRejectsUnknownOperation(t *testing.T) {
	if code := cli([]string{"-op", "replicate"}, io.Discard, io.Discard); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
}

// Each invocation publishes an expvar recorder; repeated runs in one process
// must not collide on the export name.
func TestCLIRunsRepeatedlyInOneProcess(t *testing.T) {
	for i := 0; i < 3; i++ {
		if code := cli([]string{"-op", "replicate"}, io.Discard, io.Discard); code != 1 {
			t.Fatalf("run %d: exit code %d, want 1", i, code)
		}
	}
}

func TestCLIGenerateWritesSnapshotFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "seed: 13\nperson_count: 200\nlabor_contract_count: 150\nsupplier_count: 30\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out := filepath.Join(dir, "snapshot.json")

	code := cli([]string{"-config", cfgPath, "-op", "generate", "-out", out}, io.Discard, io.Discard)
	if code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if len(doc) != 20 {
		t.Fatalf("snapshot has %d collections, want 20", len(doc))
	}
}
