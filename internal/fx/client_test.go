package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUSDBRL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"USDBRL":{"code":"USD","codein":"BRL","bid":"5.4321","ask":"5.4330"}}`))
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(srv.URL)
	rate, err := c.USDBRL(context.Background())
	if err != nil {
		t.Fatalf("USDBRL() failed: %v", err)
	}
	if rate != 5.4321 {
		t.Errorf("rate = %v, want 5.4321", rate)
	}
}

func TestUSDBRL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClientWithEndpoint(srv.URL)
	if _, err := c.USDBRL(context.Background()); err == nil {
		t.Error("expected error for non-2xx response")
	}
}

func TestUSDBRL_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"bid not a number", `{"USDBRL":{"bid":"abc"}}`},
		{"missing bid", `{"USDBRL":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClientWithEndpoint(srv.URL)
			if _, err := c.USDBRL(context.Background()); err == nil {
				t.Error("expected error for malformed body")
			}
		})
	}
}
