package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatHryvnia(t *testing.T) {
	cases := map[float64]string{
		0:        "0.00 UAH",
		250.5:    "250.50 UAH",
		1250:     "1 250.00 UAH",
		-1234567: "-1 234 567.00 UAH",
	}
	for in, want := range cases {
		if got := FormatHryvnia(in); got != want {
			t.Fatalf("FormatHryvnia(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Fatalf("blank should become NA, got %q", got)
	}
	if got := SafeFilenamePart("Ivan Franko/12"); got != "Ivan_Franko_12" {
		t.Fatalf("unexpected filename part %q", got)
	}
	long := strings.Repeat("Ж", 45)
	if got := SafeFilenamePart(long); got != strings.Repeat("Ж", 40) || !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
}

func TestLogEventFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogEvent(zap.New(core), " rid-1 ", "records", "create", "table=Bus id=1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["module"] != "RECORDS" || fields["action"] != "create" || fields["request_id"] != "rid-1" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	log, err := NewLogger("release", "bogus")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("debug should be disabled at fallback level")
	}
}
