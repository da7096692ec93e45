package contacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestDomainSearch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "acme.com" {
			t.Errorf("domain param = %q, want acme.com", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"emails":[
			{"value":"jane@acme.com","first_name":"Jane","last_name":"Doe","position":"CEO","confidence":94},
			{"value":"","first_name":"Nobody"},
			{"value":"sam@acme.com","first_name":"Sam","last_name":"Roe","position":"VP of Sales"},
			{"value":"extra@acme.com"}
		]}}`))
	}))
	defer srv.Close()

	c := NewHunterClient(context.Background(), zap.NewNop(), "test-key", "test-agent")
	c.APIURL = srv.URL

	got, err := c.DomainSearch("acme.com", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d contacts, want limit 2", len(got))
	}
	if got[0].Name != "Jane Doe" || got[0].Title != "CEO" || got[0].Email != "jane@acme.com" {
		t.Fatalf("unexpected first contact: %+v", got[0])
	}
	if got[0].Source != "hunter" {
		t.Fatalf("source = %q, want hunter", got[0].Source)
	}
	if got[1].Email != "sam@acme.com" {
		t.Fatalf("blank email not skipped: %+v", got[1])
	}
}

func TestDomainSearchBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHunterClient(context.Background(), zap.NewNop(), "bad-key", "test-agent")
	c.APIURL = srv.URL

	if _, err := c.DomainSearch("acme.com", 5); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}
