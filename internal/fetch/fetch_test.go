package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("reach us at info@a.test"))
	}))
	defer server.Close()

	client := NewClient(2 * time.Second)
	page, err := client.Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if page.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", page.StatusCode)
	}
	if !strings.Contains(page.Body, "info@a.test") {
		t.Fatalf("unexpected body: %q", page.Body)
	}
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(2 * time.Second)
	page, err := client.Fetch(server.URL)
	if err != nil {
		t.Fatalf("non-200 must not be an error: %v", err)
	}
	if page.StatusCode != 404 {
		t.Fatalf("expected status 404, got %d", page.StatusCode)
	}
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(50 * time.Millisecond)
	if _, err := client.Fetch(server.URL); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	// Port reserved and unassigned; nothing listens here
	client := NewClient(1 * time.Second)
	if _, err := client.Fetch("http://127.0.0.1:1/"); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestFetchSequentialReuse(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("page"))
	}))
	defer server.Close()

	// Revisiting the same URL must work: dedup is the crawler's job
	client := NewClient(2 * time.Second)
	for i := 0; i < 3; i++ {
		if _, err := client.Fetch(server.URL); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}
	if hits != 3 {
		t.Fatalf("expected 3 requests, got %d", hits)
	}
}
