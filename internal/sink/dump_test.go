package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"repaircore/internal/infra/blob/memory"
)

var snapshotKeys = []string{
	"component_kind", "service", "position", "manufacturer", "person",
	"supplier", "labor_contract", "phone_model", "staff", "component",
	"phone", "account", "supply_contract", "order", "supply", "warehouse",
	"service_phone_model", "warehouse_supply", "order_service",
	"order_warehouse",
}

func TestWriteSnapshotEmitsEveryCollection(t *testing.T) {
	dataset := testDataset(t)
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, dataset); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("snapshot is not a JSON object: %v", err)
	}
	if len(doc) != len(snapshotKeys) {
		t.Fatalf("snapshot has %d keys, want %d", len(doc), len(snapshotKeys))
	}
	for _, key := range snapshotKeys {
		raw, ok := doc[key]
		if !ok {
			t.Errorf("snapshot missing key %q", key)
			continue
		}
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			t.Errorf("key %q is not an array: %v", key, err)
			continue
		}
		if len(rows) == 0 {
			t.Errorf("key %q is empty", key)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dataset := testDataset(t)
	var first bytes.Buffer
	if err := WriteSnapshot(&first, dataset); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	restored, err := ReadSnapshot(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	var second bytes.Buffer
	if err := WriteSnapshot(&second, restored); err != nil {
		t.Fatalf("WriteSnapshot after round trip: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("snapshot changed across a read/write round trip")
	}
}

func TestDumperStoresSnapshotWithMetadata(t *testing.T) {
	dataset := testDataset(t)
	store := memory.New()
	dumper := NewDumper(store)
	info, err := dumper.Dump(context.Background(), dataset, "snapshots/test.json", 11)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if info.ContentType != "application/json" {
		t.Errorf("content type = %q", info.ContentType)
	}
	if info.Metadata["seed"] != "11" {
		t.Errorf("seed metadata = %q, want 11", info.Metadata["seed"])
	}
	if info.Metadata["records"] != strconv.Itoa(dataset.TotalRecords()) {
		t.Errorf("records metadata = %q, want %d", info.Metadata["records"], dataset.TotalRecords())
	}

	restored, err := dumper.Load(context.Background(), "snapshots/test.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.TotalRecords() != dataset.TotalRecords() {
		t.Fatalf("restored %d records, want %d", restored.TotalRecords(), dataset.TotalRecords())
	}

	if _, err := dumper.Dump(context.Background(), dataset, "snapshots/test.json", 11); err == nil {
		t.Fatal("expected duplicate key to fail")
	}
}
