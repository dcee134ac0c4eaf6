package operation

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter orders operations within the process.
var seqCounter uint64

// Kind names what an operation does to the database.
type Kind string

const (
	KindCreate   Kind = "CREATE"
	KindAddField Kind = "ADD_FIELD"
	KindInsert   Kind = "INSERT"
	KindScan     Kind = "SCAN"
)

// Operation identifies a single database call for tracing.
type Operation struct {
	ID        string    // UUID, unique across processes
	Seq       uint64    // monotonically increasing within the process
	Kind      Kind
	StartTime time.Time
}

// New starts a new operation of the given kind.
func New(kind Kind) *Operation {
	return &Operation{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Kind:      kind,
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the operation started.
func (op *Operation) Elapsed() time.Duration {
	return time.Since(op.StartTime)
}
