package server

import (
	"testing"

	"remindmcp/internal/testutil"
)

func TestNewRegistersTools(t *testing.T) {
	s := New(testutil.NewFakeStore())
	if s == nil {
		t.Fatal("New returned nil")
	}
}
