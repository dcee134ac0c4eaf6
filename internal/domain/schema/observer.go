package schema

import (
	"reflect"
	"time"
)

// EventType names a lifecycle phase of a database call
type EventType string

const (
	EventTableCreated  EventType = "table_created"
	EventTableReplaced EventType = "table_replaced"
	EventFieldAdded    EventType = "field_added"
	EventRowInserted   EventType = "row_inserted"
	EventRowRejected   EventType = "row_rejected"
	EventScan          EventType = "scan"
)

// Event represents a lifecycle event of a database call
type Event struct {
	Type      EventType     // Type of event
	Table     string        // Table the call acted on
	OpID      string        // Operation ID for tracing
	Timestamp time.Time     // When the event occurred
	Duration  time.Duration // How long the call took
	Data      interface{}   // Phase-specific data (field, error, scan stats)
}

// ScanStats is the Data of an EventScan.
type ScanStats struct {
	Scanned int // rows the predicate was evaluated on
	Matched int
	Limit   int // 0 for Find and unbounded FindMany
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}

// AddObserver registers an observer to receive lifecycle events
func (db *Database) AddObserver(observer Observer) {
	db.obsMu.Lock()
	defer db.obsMu.Unlock()
	db.observers = append(db.observers, observer)
}

// RemoveObserver unregisters an observer. Observers are matched by
// identity, so register pointers; an observer of a non-comparable type
// can never be removed and is left in place.
func (db *Database) RemoveObserver(observer Observer) {
	if !isComparable(observer) {
		return
	}
	db.obsMu.Lock()
	defer db.obsMu.Unlock()
	for i, o := range db.observers {
		if isComparable(o) && o == observer {
			db.observers = append(db.observers[:i], db.observers[i+1:]...)
			return
		}
	}
}

func isComparable(o Observer) bool {
	return o == nil || reflect.TypeOf(o).Comparable()
}

// notify sends an event to all registered observers.
// Callers must not hold a table or database lock.
func (db *Database) notify(event Event) {
	event.Timestamp = time.Now()

	db.obsMu.RLock()
	observers := make([]Observer, len(db.observers))
	copy(observers, db.observers)
	db.obsMu.RUnlock()

	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
