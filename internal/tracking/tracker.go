/*
Package tracking records search analytics in the background.

A Tracker accepts analytics snapshots without blocking the search path and
writes them to storage in batches. Stop flushes whatever is still queued.
*/
package tracking

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khanglvm/toolbox-search/internal/search"
	"github.com/khanglvm/toolbox-search/internal/storage"
)

const (
	// queueSize is the buffer size for pending snapshots.
	// If full, snapshots are dropped (non-blocking).
	queueSize = 1000

	// batchFlushSize is the number of snapshots that triggers an immediate flush.
	batchFlushSize = 10

	// flushInterval is how often pending snapshots are written.
	flushInterval = 50 * time.Millisecond
)

// Tracker records search analytics with non-blocking writes.
type Tracker struct {
	storage storage.Storage
	logger  *zap.Logger
	queue   chan storage.SearchRecord
	stop    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	enabled bool
	mu      sync.RWMutex
}

// NewTracker initializes s and starts background processing. A storage that
// fails to initialize leaves the tracker disabled.
func NewTracker(s storage.Storage, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Tracker{
		storage: s,
		logger:  logger,
		queue:   make(chan storage.SearchRecord, queueSize),
		stop:    make(chan struct{}),
		enabled: s != nil,
	}

	if s != nil {
		if err := s.Init(); err != nil {
			logger.Warn("search history initialization failed", zap.Error(err))
			t.enabled = false
		}
	}

	t.wg.Add(1)
	go t.processRecords()

	return t
}

// Track queues an analytics snapshot. If the queue is full the snapshot is dropped.
func (t *Tracker) Track(a search.Analytics) {
	if !t.IsEnabled() {
		return
	}

	select {
	case t.queue <- ToSearchRecord(a):
	default:
		t.logger.Warn("history queue full, dropping search", zap.String("search_id", a.SearchID))
	}
}

// Stop flushes queued snapshots and stops background processing.
func (t *Tracker) Stop() {
	t.once.Do(func() {
		close(t.stop)
		t.wg.Wait()
	})
}

// Disable makes Track a no-op.
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

// IsEnabled reports whether snapshots are being recorded.
func (t *Tracker) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// Pending returns the number of queued snapshots.
func (t *Tracker) Pending() int {
	return len(t.queue)
}

func (t *Tracker) processRecords() {
	defer t.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]storage.SearchRecord, 0, batchFlushSize)

	for {
		select {
		case rec := <-t.queue:
			batch = append(batch, rec)
			if len(batch) >= batchFlushSize {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				t.flush(batch)
				batch = batch[:0]
			}

		case <-t.stop:
			// Drain what is already queued, then exit.
			for {
				select {
				case rec := <-t.queue:
					batch = append(batch, rec)
				default:
					t.flush(batch)
					return
				}
			}
		}
	}
}

func (t *Tracker) flush(records []storage.SearchRecord) {
	for _, rec := range records {
		if err := t.storage.RecordSearch(rec); err != nil {
			t.logger.Warn("failed to record search", zap.String("search_id", rec.SearchID), zap.Error(err))
		}
	}
}

// ToSearchRecord converts an analytics snapshot to its stored form. The
// query text is replaced by its hash.
func ToSearchRecord(a search.Analytics) storage.SearchRecord {
	return storage.SearchRecord{
		SearchID:       a.SearchID,
		QueryHash:      storage.HashQuery(a.Query),
		Timestamp:      a.Timestamp,
		ResultsCount:   a.ResultsCount,
		SearchTimeMs:   float64(a.SearchTime.Microseconds()) / 1000,
		FiltersApplied: a.FiltersApplied,
		TopMatches:     a.TopMatches.IDs(),
	}
}
