package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeDateOnly(t *testing.T) {
	got, ok := ParseTime("2020-06-05")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2020, 6, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeSpaceSeparated(t *testing.T) {
	got, ok := ParseTime("2020-06-05 10:30:54")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Hour() != 10 || got.Minute() != 30 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeRejectsBareIntegers(t *testing.T) {
	if _, ok := ParseTime("2020"); ok {
		t.Fatalf("expected bare year to be rejected")
	}
	if _, ok := ParseTime("0"); ok {
		t.Fatalf("expected zero to be rejected")
	}
	if _, ok := ParseTime("99999999999"); ok {
		t.Fatalf("expected 11-digit integer to be rejected")
	}
}

func TestDayTruncation(t *testing.T) {
	ts := time.Date(2020, 6, 5, 23, 59, 59, 0, time.UTC)
	got := Day(ts)
	want := time.Date(2020, 6, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day %v", got)
	}
}
