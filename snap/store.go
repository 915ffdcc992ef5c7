package snap

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"amber/mem"
)

// CheckpointReason records why a snapshot was taken.
type CheckpointReason string

const (
	ReasonManual         CheckpointReason = "manual"
	ReasonAutomatic      CheckpointReason = "automatic"
	ReasonBeforeRisk     CheckpointReason = "before-risk"
	ReasonScheduled      CheckpointReason = "scheduled"
	ReasonBeforeShutdown CheckpointReason = "before-shutdown"
	ReasonBreakpoint     CheckpointReason = "breakpoint"
)

// A Record is a stored snapshot blob with its metadata.
type Record struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Reason      CheckpointReason `json:"checkpoint_reason"`
	CreatedAt   time.Time        `json:"created_at"`
	SizeBytes   int              `json:"size_bytes"`
	// Ratio of compressed memory stream to the raw 64 kB image.
	CompressionRatio float64 `json:"compression_ratio"`
	Blob             []byte  `json:"-"`
}

// A Summary is a Record without its blob, for listings.
type Summary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Reason      CheckpointReason `json:"checkpoint_reason"`
	CreatedAt   time.Time        `json:"created_at"`
	SizeBytes   int              `json:"size_bytes"`
}

// A Store is an in-process registry of named snapshots. All access is
// serialized internally; hosts running many cores can share one Store.
type Store struct {
	mu      sync.Mutex
	records map[string]*Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[string]*Record)}
}

// Add registers blob under a fresh id and returns the stored record.
func (s *Store) Add(name, description string, reason CheckpointReason, tags []string, blob []byte) *Record {
	r := &Record{
		ID:               uuid.NewString(),
		Name:             name,
		Description:      description,
		Tags:             tags,
		Reason:           reason,
		CreatedAt:        time.Now().UTC(),
		SizeBytes:        len(blob),
		CompressionRatio: float64(len(blob)-headerSize) / float64(mem.Size),
		Blob:             blob,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.ID] = r
	return r
}

// Get returns the record for id.
func (s *Store) Get(id string) (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	return r, ok
}

// Delete removes the record for id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[id]
	delete(s.records, id)
	return ok
}

// List returns summaries of every stored snapshot, oldest first.
func (s *Store) List() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Summary, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, Summary{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Tags:        r.Tags,
			Reason:      r.Reason,
			CreatedAt:   r.CreatedAt,
			SizeBytes:   r.SizeBytes,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// TotalSizeBytes sums the stored blob sizes.
func (s *Store) TotalSizeBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, r := range s.records {
		total += r.SizeBytes
	}
	return total
}
