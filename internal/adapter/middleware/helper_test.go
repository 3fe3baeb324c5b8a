package middleware

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"  aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa  ", true},
		{"not-an-id", false},
		{"", false},
		{"aaaa", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.want {
			t.Fatalf("validReqID(%q)=%v want %v", tc.id, got, tc.want)
		}
	}
}

func TestParseAxRequestAt_EpochSeconds(t *testing.T) {
	got, err := parseAxRequestAt("1736123456")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("got %v", got)
	}
}

func TestParseAxRequestAt_EpochMillis(t *testing.T) {
	got, err := parseAxRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("got %v", got)
	}
}

func TestParseAxRequestAt_RFC3339(t *testing.T) {
	got, err := parseAxRequestAt("2025-09-05T10:00:00+07:00")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2025, 9, 5, 3, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParseAxRequestAt_Rejected(t *testing.T) {
	for _, raw := range []string{"", "2025-09-05T10:00:00", "yesterday"} {
		if _, err := parseAxRequestAt(raw); err == nil {
			t.Fatalf("accepted %q", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/loans/:loan_id/close", "s1", "r1")
	want := "idemp:pawn:post:/loans/:loan_id/close:s1:r1"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestProvisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	ctx := context.Background()

	key := buildKey("POST", "/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	entry := idempEntry{
		InProgress:  true,
		BodySHA256:  bodyHash([]byte(`{"a":1}`)),
		RequestID:   strings.Repeat("a", 32),
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}

	ok, err := provisionalSet(ctx, rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}
	if ttl := rdb.TTL(ctx, key).Val(); ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL out of range: %v", ttl)
	}

	// second SetNX on the same key must lose
	ok, err = provisionalSet(ctx, rdb, key, entry)
	if err != nil {
		t.Fatalf("provisionalSet 2 err: %v", err)
	}
	if ok {
		t.Fatal("provisionalSet 2 should be false")
	}

	got, err := loadEntry(ctx, rdb, key)
	if err != nil {
		t.Fatalf("loadEntry err: %v", err)
	}
	if !got.InProgress || got.RequestID != entry.RequestID || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}
}

func TestSaveFinal_LoadAndTTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	ctx := context.Background()

	key := buildKey("POST", "/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	final := idempEntry{
		InProgress:  false,
		Code:        201,
		Body:        []byte(`{"ok":true}`),
		BodySHA256:  bodyHash([]byte(`{"ok":true}`)),
		RequestID:   strings.Repeat("a", 32),
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}

	ttlWant := 5 * time.Second
	if err := saveFinal(ctx, rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal err: %v", err)
	}
	if ttl := rdb.TTL(ctx, key).Val(); ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}

	got, err := loadEntry(ctx, rdb, key)
	if err != nil {
		t.Fatalf("load after final err: %v", err)
	}
	if got.Code != 201 || string(got.Body) != `{"ok":true}` || got.InProgress {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}
