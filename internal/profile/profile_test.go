package profile

import (
	"strings"
	"testing"
	"time"
)

func TestBlockRecordsSample(t *testing.T) {
	Reset()
	end := Block("test-block")
	time.Sleep(time.Millisecond)
	end()

	var sb strings.Builder
	if err := Dump(&sb); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(sb.String(), "test-block") {
		t.Fatalf("Dump output missing block name: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "count=1") {
		t.Fatalf("Dump output missing count=1: %q", sb.String())
	}
}

func TestResetClearsSamples(t *testing.T) {
	Reset()
	Block("a")()
	Reset()
	var sb strings.Builder
	Dump(&sb)
	if sb.Len() != 0 {
		t.Fatalf("expected empty dump after reset, got %q", sb.String())
	}
}
