package event

import (
	"io"
	"testing"

	"github.com/logsurgeon/logsurgeon-go/ioreader"
	"github.com/logsurgeon/logsurgeon-go/lexer"
	"github.com/logsurgeon/logsurgeon-go/schema"
	"github.com/logsurgeon/logsurgeon-go/token"
)

func newSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(
		[]byte(" \t\r\n:,"),
		[]schema.PatternSource{{ID: 0, Pattern: `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`}},
		[]schema.PatternSource{{ID: 0, Name: "loglevel", Pattern: `(INFO|DEBUG|WARN|ERROR)`}},
	)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	return s
}

func drainEvents(t *testing.T, r *Reader) []Event {
	t.Helper()
	var evs []Event
	for {
		ev, err := r.NextEvent()
		if err == io.EOF {
			return evs
		}
		if err != nil {
			t.Fatalf("NextEvent: %v", err)
		}
		evs = append(evs, ev)
	}
}

// TestMultiLineInput checks that every line closes its event: a line
// without a timestamp becomes an event of its own rather than joining
// the previous one.
func TestMultiLineInput(t *testing.T) {
	s := newSchema(t)
	l := lexer.New(s, ioreader.NewBytes([]byte(
		"2024-01-02 03:04:05 INFO starting\nmore detail here\n2024-01-02 03:04:06 INFO done\n",
	)))
	r := NewReader(l)
	evs := drainEvents(t, r)
	if len(evs) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(evs), evs)
	}

	first := evs[0]
	if first.Timestamp == nil || string(first.Timestamp.Bytes) != "2024-01-02 03:04:05" {
		t.Fatalf("first event missing expected timestamp: %+v", first.Timestamp)
	}
	var firstBody []byte
	for _, tok := range first.Body {
		firstBody = append(firstBody, tok.Bytes...)
	}
	want := " INFO starting\n"
	if string(firstBody) != want {
		t.Errorf("first event body = %q, want %q", firstBody, want)
	}

	if evs[1].Timestamp != nil {
		t.Errorf("expected the detail line's event to have no timestamp, got %v", evs[1].Timestamp)
	}

	third := evs[2]
	if third.Timestamp == nil || string(third.Timestamp.Bytes) != "2024-01-02 03:04:06" {
		t.Fatalf("third event missing expected timestamp: %+v", third.Timestamp)
	}
}

func TestFirstEventWithoutTimestamp(t *testing.T) {
	s := newSchema(t)
	l := lexer.New(s, ioreader.NewBytes([]byte("no timestamp here\n2024-01-02 03:04:05 INFO ok\n")))
	r := NewReader(l)
	evs := drainEvents(t, r)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(evs), evs)
	}
	if evs[0].Timestamp != nil {
		t.Errorf("expected first event to have no timestamp, got %v", evs[0].Timestamp)
	}
	if evs[1].Timestamp == nil {
		t.Error("expected second event to carry the timestamp")
	}
}

func TestLastEventWithoutEndOfLine(t *testing.T) {
	s := newSchema(t)
	l := lexer.New(s, ioreader.NewBytes([]byte("2024-01-02 03:04:05 INFO trailing, no newline")))
	r := NewReader(l)
	evs := drainEvents(t, r)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(evs), evs)
	}
	var last bool
	for _, tok := range evs[0].Body {
		last = tok.Kind == token.KindStaticTextWithNewline
	}
	if last {
		t.Error("did not expect a trailing newline token")
	}
}

func TestEmptyStreamProducesNoEvents(t *testing.T) {
	s := newSchema(t)
	l := lexer.New(s, ioreader.NewBytes(nil))
	r := NewReader(l)
	evs := drainEvents(t, r)
	if len(evs) != 0 {
		t.Fatalf("got %d events for empty input, want 0", len(evs))
	}
}
