package store

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gofrs/uuid/v5"
)

// Notification is delivered to observers once per applied batch.
type Notification struct {
	BatchID  uuid.UUID
	Revision uint64
	Snapshot Snapshot
	Updates  int
}

// Observer is called after a batch has been applied and its snapshot published.
// Observers run on the goroutine that submitted the batch and must not submit
// batches themselves.
type Observer func(Notification)

type revision struct {
	snapshot Snapshot
	number   uint64
}

// Store owns the single live Snapshot.
type Store struct {
	logger *slog.Logger

	// writeMu serializes fold, publish and notify so batches apply and
	// notify in submission order.
	writeMu sync.Mutex
	current atomic.Pointer[revision]

	observersMu sync.RWMutex
	observers   map[uint64]Observer
	nextID      uint64
}

// New creates a Store holding an empty Snapshot at revision 0.
func New(opts ...Option) *Store {
	s := &Store{
		logger:    slog.Default().WithGroup("store"),
		observers: make(map[uint64]Observer),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&revision{})
	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	return s.current.Load().snapshot
}

// Revision returns the number of batches applied so far.
func (s *Store) Revision() uint64 {
	return s.current.Load().number
}

// ApplyBatch folds updates into the current snapshot and notifies every
// observer exactly once, regardless of how many updates the batch holds. An
// empty batch leaves the snapshot as it is and still notifies once. A batch
// naming an unknown field is rejected whole and nothing is notified.
func (s *Store) ApplyBatch(updates []UpdateRecord) (Notification, error) {
	if err := validateBatch(updates); err != nil {
		return Notification{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prev := s.current.Load()
	next := &revision{
		snapshot: Fold(prev.snapshot, updates),
		number:   prev.number + 1,
	}
	s.current.Store(next)

	n := Notification{
		BatchID:  uuid.Must(uuid.NewV6()),
		Revision: next.number,
		Snapshot: next.snapshot,
		Updates:  len(updates),
	}
	s.logger.Debug("Batch applied",
		"batch_id", n.BatchID,
		"revision", n.Revision,
		"updates", n.Updates)

	s.notify(n)
	return n, nil
}

// Apply submits a single update as a one-element batch.
func (s *Store) Apply(update UpdateRecord) (Notification, error) {
	return s.ApplyBatch([]UpdateRecord{update})
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.observersMu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.observersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.observersMu.Lock()
			delete(s.observers, id)
			s.observersMu.Unlock()
		})
	}
}

func (s *Store) notify(n Notification) {
	s.observersMu.RLock()
	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	observers := make([]Observer, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		observers = append(observers, s.observers[id])
	}
	s.observersMu.RUnlock()

	for _, fn := range observers {
		fn(n)
	}
}
