package sink

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"repaircore/internal/generator"
	"repaircore/pkg/domain"
)

// RecordStore is the persistence boundary the push sink writes through.
// Implementations must tolerate concurrent Insert calls.
type RecordStore interface {
	Insert(ctx context.Context, rec domain.Record) error
}

// Pusher writes a dataset into a record store one dependency group at a
// time. Inserts inside a group run concurrently; groups are separated by a
// strict barrier so a record is never written before its references.
type Pusher struct {
	store RecordStore
	opts  options
}

// NewPusher returns a Pusher over the given store.
func NewPusher(store RecordStore, opts ...Option) *Pusher {
	p := &Pusher{store: store, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Push writes every record of the dataset. The first failed insert cancels
// the remaining inserts of its group and aborts all later groups; there is
// no retry and no rollback of records already written.
func (p *Pusher) Push(ctx context.Context, dataset *generator.Dataset) error {
	for group, batch := range dataset.Groups() {
		if len(batch) == 0 {
			continue
		}
		start := time.Now()
		if err := p.pushGroup(ctx, group, batch); err != nil {
			p.opts.metrics.RecordResult("push", "error")
			p.opts.log.Error("push aborted", "group", group, "error", err)
			return err
		}
		p.opts.metrics.RecordDuration(fmt.Sprintf("push_group_%d", group), time.Since(start))
		records := 0
		for _, c := range batch {
			records += len(c.Records)
		}
		p.opts.log.Debug("pushed group", "group", group, "collections", len(batch), "records", records)
	}
	p.opts.metrics.RecordResult("push", "ok")
	p.opts.log.Info("dataset pushed", "records", dataset.TotalRecords())
	return nil
}

func (p *Pusher) pushGroup(ctx context.Context, group int, batch []generator.Collection) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.opts.workers)
	for _, collection := range batch {
		for i, record := range collection.Records {
			i, record := i, record
			eg.Go(func() error {
				if err := p.store.Insert(ctx, record); err != nil {
					return fmt.Errorf("push group %d table %s record %d: %w", group, record.Table(), i, err)
				}
				return nil
			})
		}
	}
	return eg.Wait()
}
