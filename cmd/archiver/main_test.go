package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"game-news/cmd/api/clients/storeclient"
)

func newTestStore(t *testing.T, handler http.Handler) *storeclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("SUPABASE_URL", server.URL)
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key-for-test")

	store, err := storeclient.NewServiceFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestCutoffTime(t *testing.T) {
	cutoff := cutoffTime(6)
	want := time.Now().UTC().AddDate(0, -6, 0)

	if diff := want.Sub(cutoff); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("cutoff %v too far from %v", cutoff, want)
	}
	if cutoff.Location() != time.UTC {
		t.Fatalf("cutoff not UTC: %v", cutoff.Location())
	}
}

func TestArchiveWithoutCleanupExportsEveryRow(t *testing.T) {
	requests := 0

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodGet || r.URL.Path != "/rest/v1/posts" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		// 삭제 없는 내보내기는 배치 크기에 걸리지 않고 전량을 한 번에 읽어야 한다.
		if got := r.URL.Query().Get("limit"); got != "" {
			t.Fatalf("unexpected limit %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":"p1","title":"One","summary":"S1","original_link":"https://a/1","category":"IGN","created_at":"2025-01-01T00:00:00Z"},
			{"id":"p2","title":"Two","summary":"S2","original_link":"https://a/2","category":"IGN","created_at":"2025-01-02T00:00:00Z"},
			{"id":"p3","title":"Three","summary":"S3","original_link":"https://a/3","category":"Polygon","created_at":"2025-01-03T00:00:00Z"}
		]`)
	}))

	dir := t.TempDir()
	opts := options{Archive: true, Months: 6, BatchSize: 2, Dir: dir}

	if err := archiveAndCleanup(context.Background(), store, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected a single fetch, got %d", requests)
	}

	files, err := filepath.Glob(filepath.Join(dir, "posts_*.csv"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one archive file, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "id,title,summary") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[3], "p3") || !strings.Contains(lines[3], "2025-01-03T00:00:00Z") {
		t.Fatalf("unexpected last row %q", lines[3])
	}
}

func TestRestoreUpsertsFullRows(t *testing.T) {
	var gotQuery string
	var gotPrefer string
	var gotRows []storeclient.ArchivedPost

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/posts" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		gotPrefer = r.Header.Get("Prefer")
		if err := json.NewDecoder(r.Body).Decode(&gotRows); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	path := filepath.Join(t.TempDir(), "posts_20250101_000000.csv")
	csvBody := "id,title,summary,original_link,category,created_at\n" +
		"p1,One,S1,https://a/1,IGN,2025-01-01T00:00:00Z\n" +
		"p2,Two,S2,https://a/2,Polygon,2025-01-02T12:30:00Z\n"
	if err := os.WriteFile(path, []byte(csvBody), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := restore(context.Background(), store, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotQuery, "on_conflict=original_link") {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if gotPrefer != "resolution=merge-duplicates,return=minimal" {
		t.Fatalf("unexpected Prefer %q", gotPrefer)
	}
	if len(gotRows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", gotRows)
	}
	if gotRows[0].ID != "p1" || gotRows[1].ID != "p2" {
		t.Fatalf("row ids not preserved: %+v", gotRows)
	}
	want := time.Date(2025, 1, 2, 12, 30, 0, 0, time.UTC)
	if !gotRows[1].CreatedAt.Equal(want) {
		t.Fatalf("created_at not preserved: got %v want %v", gotRows[1].CreatedAt, want)
	}
	if gotRows[1].OriginalLink != "https://a/2" || gotRows[1].Category != "Polygon" {
		t.Fatalf("unexpected row %+v", gotRows[1])
	}
}

func TestRestoreRejectsMalformedCreatedAt(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("store must not be called, got %s %s", r.Method, r.URL.Path)
	}))

	path := filepath.Join(t.TempDir(), "broken.csv")
	csvBody := "id,title,summary,original_link,category,created_at\n" +
		"p1,One,S1,https://a/1,IGN,yesterday\n"
	if err := os.WriteFile(path, []byte(csvBody), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := restore(context.Background(), store, path)
	if err == nil || !strings.Contains(err.Error(), "malformed created_at") {
		t.Fatalf("expected malformed created_at error, got %v", err)
	}
}
