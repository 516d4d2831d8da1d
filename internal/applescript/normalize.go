package applescript

import (
	"encoding/json"
	"strings"
	"time"

	"remindmcp/internal/service"
)

// missingValue is the native store's distinguished marker for "field not
// set". It is never surfaced past normalization.
const missingValue = "missing value"

// outputDateLayouts is the ladder of accepted host timestamp shapes. The
// ISO coercion emitted by the script prelude comes first; the remaining
// layouts absorb platform and locale format drift from older hosts.
var outputDateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"Monday, January 2, 2006 at 3:04:05 PM",
	"January 2, 2006 at 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"1/2/06, 3:04:05 PM",
	"2006-01-02 15:04:05",
}

// normalizeTimestamp converts a raw host timestamp into RFC 3339 text in
// the local zone. Empty input and the missing-value sentinel normalize to
// "", and so does an unparseable value: a single bad timestamp must not
// fail an entire query batch.
func normalizeTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == missingValue {
		return ""
	}
	for _, layout := range outputDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return ""
}

// normalizeReminder converts one decoded record into the external model.
// Absent optional fields default to ""/false/0 so downstream consumers
// never observe an undefined field, and the symbolic priority is computed
// from the numeric code, never read from storage.
func normalizeReminder(rec Record) service.Reminder {
	priority := intField(rec, "priority")
	if priority < 0 {
		priority = 0
	}
	if priority > 9 {
		priority = 9
	}
	return service.Reminder{
		ID:               strField(rec, "id"),
		Name:             strField(rec, "name"),
		Body:             strField(rec, "body"),
		Completed:        boolField(rec, "completed"),
		DueDate:          normalizeTimestamp(strField(rec, "dueDate")),
		Priority:         priority,
		PriorityName:     service.PriorityName(priority),
		Flagged:          boolField(rec, "flagged"),
		List:             strField(rec, "list"),
		CreationDate:     normalizeTimestamp(strField(rec, "creationDate")),
		ModificationDate: normalizeTimestamp(strField(rec, "modificationDate")),
	}
}

// normalizeList converts one decoded record into a List. The item count is
// derived by the host; negative values clamp to zero.
func normalizeList(rec Record) service.List {
	count := intField(rec, "itemCount")
	if count < 0 {
		count = 0
	}
	return service.List{
		ID:        strField(rec, "id"),
		Name:      strField(rec, "name"),
		ItemCount: count,
	}
}

func strField(rec Record, key string) string {
	v, ok := rec[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	if s == missingValue {
		return ""
	}
	return s
}

func boolField(rec Record, key string) bool {
	switch v := rec[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

func intField(rec Record, key string) int {
	switch v := rec[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			// fractional numbers truncate
			if f, ferr := v.Float64(); ferr == nil {
				return int(f)
			}
			return 0
		}
		return int(n)
	case string:
		if v == missingValue {
			return 0
		}
		var n int
		for _, c := range v {
			if c < '0' || c > '9' {
				return 0
			}
			n = n*10 + int(c-'0')
		}
		return n
	default:
		return 0
	}
}
