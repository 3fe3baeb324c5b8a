package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl, zap.NewNop()))
	e.POST("/loans", handler)
	e.GET("/loans", handler) // for the non-mutating bypass test
	return e
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validHeaders() map[string]string {
	return map[string]string{
		"Ax-Request-Id": strings.Repeat("a", 32),
		"Ax-Request-At": time.Now().UTC().Format(time.RFC3339),
		"Ax-Staff-Id":   strings.Repeat("b", 32),
	}
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func TestIdempotency_BypassOnGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/loans", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET without headers => want 200, got %d", rec.Code)
	}
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	cases := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing Ax-Request-Id", func(h map[string]string) { delete(h, "Ax-Request-Id") }},
		{"invalid Ax-Request-Id", func(h map[string]string) { h["Ax-Request-Id"] = "NOT-VALID" }},
		{"invalid Ax-Request-At", func(h map[string]string) { h["Ax-Request-At"] = "not-a-time" }},
		{"skewed Ax-Request-At", func(h map[string]string) {
			h["Ax-Request-At"] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
		}},
		{"missing Ax-Staff-Id", func(h map[string]string) { delete(h, "Ax-Staff-Id") }},
		{"invalid Ax-Staff-Id", func(h map[string]string) { h["Ax-Staff-Id"] = "not32hex" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHeaders()
			tc.mutate(h)
			rec := doReq(t, e, http.MethodPost, "/loans", strings.NewReader(`{"x":1}`), h)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestIdempotency_HappyPathThenReplay(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	handlerCalls := 0
	e := setupEcho(rdb, 2*time.Minute, func(c echo.Context) error {
		handlerCalls++
		return c.JSON(http.StatusCreated, map[string]any{"ok": true})
	})

	h := validHeaders()
	body := `{"principal":100000}`

	rec1 := doReq(t, e, http.MethodPost, "/loans", strings.NewReader(body), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d body=%s", rec1.Code, rec1.Body.String())
	}

	// Same headers and body again: replay the stored response, no re-run.
	rec2 := doReq(t, e, http.MethodPost, "/loans", strings.NewReader(body), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay => want 201, got %d body=%s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if handlerCalls != 1 {
		t.Fatalf("handler ran %d times, want 1", handlerCalls)
	}
}

func TestIdempotency_ConflictWhileInProgress(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 2*time.Minute, okCreatedHandler)

	h := validHeaders()
	body := []byte(`{"x":1}`)

	// Seed the provisional lock so SetNX fails and loadEntry sees
	// InProgress=true.
	key := buildKey(http.MethodPost, "/loans", h["Ax-Staff-Id"], h["Ax-Request-Id"])
	entry := idempEntry{
		InProgress:  true,
		BodySHA256:  bodyHash(body),
		RequestID:   h["Ax-Request-Id"],
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional failed, ok=%v err=%v", ok, err)
	}

	rec := doReq(t, e, http.MethodPost, "/loans", bytes.NewReader(body), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-progress => want 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestIdempotency_ConflictOnSameReqIDDifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 2*time.Minute, okCreatedHandler)

	h := validHeaders()

	key := buildKey(http.MethodPost, "/loans", h["Ax-Staff-Id"], h["Ax-Request-Id"])
	final := idempEntry{
		InProgress:  false,
		Code:        http.StatusCreated,
		Body:        []byte(`{"ok":true}`),
		BodySHA256:  bodyHash([]byte(`{"x":1}`)),
		RequestID:   h["Ax-Request-Id"],
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}
	if err := saveFinal(context.Background(), rdb, key, final, 5*time.Minute); err != nil {
		t.Fatalf("seed final failed: %v", err)
	}

	rec := doReq(t, e, http.MethodPost, "/loans", strings.NewReader(`{"x":2}`), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body same reqID => want 409, got %d", rec.Code)
	}
}

func TestIdempotency_StoreUnavailableReturns503(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	e := setupEcho(rdb, time.Minute, okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/loans", strings.NewReader(`{}`), validHeaders())
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("store unavailable => want 503, got %d", rec.Code)
	}
}
