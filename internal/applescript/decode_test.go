package applescript

import "testing"

func TestDecodeStructured(t *testing.T) {
	res := Decode(`[{"id":"r1","name":"Buy milk","completed":false,"priority":5},{"id":"r2","name":"Call home","completed":true,"priority":0}]`)
	if !res.Structured {
		t.Fatal("expected structured decode")
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	if res.Records[0]["name"] != "Buy milk" {
		t.Errorf("unexpected first record: %v", res.Records[0])
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	res := Decode("[]")
	if !res.Structured {
		t.Fatal("expected structured decode")
	}
	if len(res.Records) != 0 {
		t.Errorf("expected no records, got %d", len(res.Records))
	}
}

// Acknowledgment strings never parse as structured data; the same decode
// path hands them back unchanged.
func TestDecodeScalarFallback(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ok", "ok"},
		{"  completed \n", "completed"},
		{"x-apple-reminder://ABC-123", "x-apple-reminder://ABC-123"},
		{"", ""},
		{"[not json", "[not json"},
	}
	for _, tt := range tests {
		res := Decode(tt.in)
		if res.Structured {
			t.Errorf("Decode(%q) unexpectedly structured", tt.in)
			continue
		}
		if res.Scalar != tt.want {
			t.Errorf("Decode(%q).Scalar = %q, want %q", tt.in, res.Scalar, tt.want)
		}
	}
}

// The wire format is flat: nested structure means the reply is not ours.
func TestDecodeRejectsNestedValues(t *testing.T) {
	res := Decode(`[{"name":"x","tags":["a","b"]}]`)
	if res.Structured {
		t.Error("nested arrays should fall back to scalar")
	}
}
