package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// EntryKind identifies the movement recorded by a ledger entry.
type EntryKind string

const (
	KindDeposit    EntryKind = "deposit"
	KindWithdrawal EntryKind = "withdrawal"
)

// Entry is a single completed movement on an account.
type Entry struct {
	RecordedAt time.Time
	ID         string
	Kind       EntryKind
	Amount     decimal.Decimal
}

// Ledger is the append-only history of one account. Entries are never
// edited or removed; their order is the order of successful
// application.
type Ledger struct {
	entries []Entry
	now     func() time.Time
}

// NewLedger creates an empty ledger using wall-clock time.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// SetClock overrides the ledger's time source. Test hook.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Record appends an entry for a completed movement. It never fails.
func (l *Ledger) Record(kind EntryKind, amount decimal.Decimal) Entry {
	entry := Entry{
		ID:         ulid.Make().String(),
		Kind:       kind,
		Amount:     amount,
		RecordedAt: l.now().UTC(),
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns the recorded entries in chronological order.
func (l *Ledger) Entries() []Entry {
	return l.entries
}

// Render produces the human-readable statement for this ledger.
func (l *Ledger) Render() string {
	var b strings.Builder
	b.WriteString("================ STATEMENT ================\n")

	if len(l.entries) == 0 {
		b.WriteString("No movements.\n")
	} else {
		for _, e := range l.entries {
			fmt.Fprintf(&b, "%-10s %12s  %s\n", e.Kind, e.Amount.StringFixed(2), e.RecordedAt.Format("2006-01-02 15:04:05"))
		}
	}

	b.WriteString("===========================================")
	return b.String()
}
