package schema

import (
	"testing"

	"github.com/leengari/memtable/internal/domain/data"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func (m *MockObserver) types() []EventType {
	out := make([]EventType, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Type
	}
	return out
}

func TestAddObserver(t *testing.T) {
	db := NewDatabase()
	observer := &MockObserver{}

	db.AddObserver(observer)

	if len(db.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(db.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	db := NewDatabase()
	observer := &MockObserver{}

	db.AddObserver(observer)
	db.RemoveObserver(observer)

	if len(db.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(db.observers))
	}

	db.Create("users")
	if len(observer.Events) != 0 {
		t.Errorf("Removed observer got %d events", len(observer.Events))
	}
}

// sliceObserver is a value type that cannot be compared with ==
type sliceObserver struct {
	seen []EventType
}

func (sliceObserver) OnEvent(Event) {}

func TestRemoveNonComparableObserver(t *testing.T) {
	kept := &MockObserver{}
	db := NewDatabase(WithObserver(sliceObserver{}))
	db.AddObserver(kept)

	// Should not panic
	db.RemoveObserver(sliceObserver{seen: []EventType{EventScan}})
	db.RemoveObserver(kept)

	if len(db.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(db.observers))
	}
	db.Create("users")
	if len(kept.Events) != 0 {
		t.Errorf("Removed observer got %d events", len(kept.Events))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	db := NewDatabase()

	// Should not panic
	db.notify(Event{Type: EventTableCreated, Table: "users"})
}

func TestStandaloneTableDoesNotNotify(t *testing.T) {
	table := NewTable("loose")

	// Should not panic
	if err := table.AddField("x", FieldTypeInt); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}
	db := NewDatabase(WithObserver(observer1))
	db.AddObserver(observer2)

	db.Create("users")

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
	if observer1.Events[0].Type != EventTableCreated {
		t.Errorf("Observer1: Expected EventTableCreated, got %v", observer1.Events[0].Type)
	}
}

func TestLifecycleEvents(t *testing.T) {
	observer := &MockObserver{}
	db := NewDatabase(WithObserver(observer))

	users := db.Create("users")
	_ = users.AddField("name", FieldTypeText)
	_ = users.AddRow(data.C("name", "Ana"))
	_ = users.AddRow(data.C("name", 7))
	users.FindMany(func(data.Row) bool { return true }, 1)
	db.Create("users")

	want := []EventType{
		EventTableCreated,
		EventFieldAdded,
		EventRowInserted,
		EventRowRejected,
		EventScan,
		EventTableReplaced,
	}
	got := observer.types()
	if len(got) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	for _, e := range observer.Events {
		if e.Timestamp.IsZero() {
			t.Errorf("%s: expected timestamp to be set", e.Type)
		}
		if e.OpID == "" {
			t.Errorf("%s: expected operation ID", e.Type)
		}
		if e.Table != "users" {
			t.Errorf("%s: expected table users, got %q", e.Type, e.Table)
		}
	}

	if _, ok := observer.Events[3].Data.(error); !ok {
		t.Errorf("row_rejected data should be the error, got %T", observer.Events[3].Data)
	}
	stats, ok := observer.Events[4].Data.(ScanStats)
	if !ok {
		t.Fatalf("scan data should be ScanStats, got %T", observer.Events[4].Data)
	}
	if stats != (ScanStats{Scanned: 1, Matched: 1, Limit: 1}) {
		t.Errorf("unexpected scan stats %+v", stats)
	}
	if dropped := observer.Events[5].Data; dropped != 1 {
		t.Errorf("table_replaced should report 1 dropped row, got %v", dropped)
	}
}
