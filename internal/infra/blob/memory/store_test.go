package memory

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"repaircore/internal/blob/core"
)

func TestPutGetDeleteCycle(t *testing.T) {
	ctx := context.Background()
	store := New()
	body := []byte("payload")
	info, err := store.Put(ctx, "k", bytes.NewReader(body), core.PutOptions{ContentType: "application/json", Metadata: map[string]string{"seed": "1"}})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != int64(len(body)) || info.Metadata["seed"] != "1" {
		t.Fatalf("unexpected info %+v", info)
	}

	if _, err := store.Put(ctx, "k", strings.NewReader("again"), core.PutOptions{}); err == nil {
		t.Fatal("expected duplicate Put to fail")
	}

	got, rc, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !bytes.Equal(data, body) || got.ContentType != "application/json" {
		t.Fatalf("round trip changed blob: %q %+v", data, got)
	}

	ok, err := store.Delete(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if _, err := store.Head(ctx, "k"); err == nil {
		t.Fatal("Head after delete should fail")
	}
}

func TestListOrdersByKey(t *testing.T) {
	ctx := context.Background()
	store := New()
	for _, key := range []string{"b", "a", "prefix/c"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), core.PutOptions{}); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}
	infos, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 3 || infos[0].Key != "a" || infos[1].Key != "b" {
		t.Fatalf("unexpected listing %v", infos)
	}
	infos, err = store.List(ctx, "prefix/")
	if err != nil {
		t.Fatalf("List with prefix: %v", err)
	}
	if len(infos) != 1 || infos[0].Key != "prefix/c" {
		t.Fatalf("prefix filter failed: %v", infos)
	}
}
