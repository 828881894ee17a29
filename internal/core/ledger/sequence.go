package ledger

import (
	"cmp"
	"slices"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	domain.DateLayout,
}

// Sequence returns the transactions in canonical order with LocalIndex set to
// position+1. The input slice is left untouched.
//
// Ordering: sequence key when both sides have one, then date, then id.
// The sort is stable, so transactions equal on all three keep input order.
func Sequence(txs []domain.Transaction) []domain.Transaction {
	out := slices.Clone(txs)
	if out == nil {
		out = []domain.Transaction{}
	}

	stamps := make(map[string]int64, len(out))
	stamp := func(date string) int64 {
		if ts, ok := stamps[date]; ok {
			return ts
		}
		ts := DateStamp(date)
		stamps[date] = ts
		return ts
	}

	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		if a.SequenceKey != nil && b.SequenceKey != nil {
			if c := cmp.Compare(*a.SequenceKey, *b.SequenceKey); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(stamp(a.Date), stamp(b.Date)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for i := range out {
		out[i].LocalIndex = i + 1
	}
	return out
}

// DateStamp converts a record date to milliseconds since the Unix epoch in UTC.
// Dates that do not parse sort as 0.
func DateStamp(date string) int64 {
	if date == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, date, time.UTC); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
