package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"repaircore/internal/blob"
	"repaircore/internal/generator"
)

// WriteSnapshot encodes the dataset as a single JSON document with one key
// per collection, in canonical snapshot order.
func WriteSnapshot(w io.Writer, dataset *generator.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*generator.Dataset, error) {
	var dataset generator.Dataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &dataset, nil
}

// Dumper stores dataset snapshots in a blob store.
type Dumper struct {
	store blob.Store
	opts  options
}

// NewDumper returns a Dumper over the given blob store.
func NewDumper(store blob.Store, opts ...Option) *Dumper {
	d := &Dumper{store: store, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Dump writes the dataset snapshot under key with the generation seed and
// record count attached as blob metadata. The key must not exist yet.
func (d *Dumper) Dump(ctx context.Context, dataset *generator.Dataset, key string, seed int64) (blob.Info, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, dataset); err != nil {
		d.opts.metrics.RecordResult("dump", "error")
		return blob.Info{}, err
	}
	info, err := d.store.Put(ctx, key, &buf, blob.PutOptions{
		ContentType: "application/json",
		Metadata: map[string]string{
			"seed":    strconv.FormatInt(seed, 10),
			"records": strconv.Itoa(dataset.TotalRecords()),
		},
	})
	d.opts.metrics.RecordDuration("dump", time.Since(start))
	if err != nil {
		d.opts.metrics.RecordResult("dump", "error")
		return blob.Info{}, fmt.Errorf("store snapshot %s: %w", key, err)
	}
	d.opts.metrics.RecordResult("dump", "ok")
	d.opts.log.Info("snapshot stored", "key", info.Key, "bytes", info.Size, "records", dataset.TotalRecords())
	return info, nil
}

// Load reads a snapshot back from the blob store.
func (d *Dumper) Load(ctx context.Context, key string) (*generator.Dataset, error) {
	_, body, err := d.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	defer func() { _ = body.Close() }()
	return ReadSnapshot(body)
}
