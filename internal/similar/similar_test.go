package similar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestOfflineFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		company string
		hint    string
		want    int
	}{
		{name: "automaker by name", company: "Acme Motor Works", want: len(automotiveFallback)},
		{name: "automaker by hint", company: "Acme Inc", hint: "Automotive", want: len(automotiveFallback)},
		{name: "unrelated", company: "Acme Bakery", hint: "Food", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			peers := offlineFallback(tt.company, tt.hint)
			if len(peers) != tt.want {
				t.Fatalf("got %d peers, want %d", len(peers), tt.want)
			}
		})
	}
}

func TestCompaniesViaWikidata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"search":[{"id":"Q1"}]}`))
	})
	mux.HandleFunc("/sparql", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if strings.Contains(query, "VALUES") {
			w.Write([]byte(`{"results":{"bindings":[
				{"companyLabel":{"value":"Peer One"},"website":{"value":"https://one.example"}},
				{"companyLabel":{"value":"Peer Two"},"website":{"value":"https://two.example"}},
				{"companyLabel":{"value":""},"website":{"value":"https://skip.example"}}
			]}}`))
			return
		}
		w.Write([]byte(`{"results":{"bindings":[
			{"industry":{"value":"http://www.wikidata.org/entity/Q42889"}}
		]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(context.Background(), zap.NewNop(), "test-agent")
	f.SearchURL = srv.URL + "/search"
	f.SparqlURL = srv.URL + "/sparql"

	peers := f.Companies("Example Corp", "", 8)
	if len(peers) != 2 {
		t.Fatalf("got %d peers, want 2", len(peers))
	}
	if peers[0].Name != "Peer One" || peers[0].Website != "https://one.example" {
		t.Fatalf("unexpected first peer: %+v", peers[0])
	}
}

func TestCompaniesFallsBackWhenRemoteFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := New(context.Background(), zap.NewNop(), "test-agent")
	f.SearchURL = srv.URL
	f.SparqlURL = srv.URL

	peers := f.Companies("Globex Motor Company", "", 8)
	if len(peers) != len(automotiveFallback) {
		t.Fatalf("got %d peers, want %d", len(peers), len(automotiveFallback))
	}

	if got := f.Companies("Globex Consulting", "", 8); len(got) != 0 {
		t.Fatalf("expected no peers for non-automotive name, got %d", len(got))
	}
}

func TestCompaniesEmptyName(t *testing.T) {
	t.Parallel()

	f := New(context.Background(), zap.NewNop(), "test-agent")
	if got := f.Companies("  ", "Automotive", 8); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
