package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vaultfeed/types"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>API Test Feed</title>
<link>https://example.com</link>
<item><title>One</title><link>https://example.com/1</link></item>
<item><title>Two</title><link>https://example.com/2</link></item>
<item><title>Three</title><link>https://example.com/3</link></item>
</channel>
</rss>`

func doRequest(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestArticleRequiresURL(t *testing.T) {
	for _, path := range []string{"/api/article", "/api/article?url=", "/api/article?url=%20%20"} {
		w := doRequest(t, path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d; want 400", path, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode body: %v", path, err)
		}
		if body["error"] != "url parameter is required" {
			t.Fatalf("%s: error = %q", path, body["error"])
		}
	}
}

func TestArticleEmptyResultOnDeadUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	w := doRequest(t, "/api/article?url="+srv.URL)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 even when extraction yields nothing", w.Code)
	}

	var result types.ArticleResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Text != "" || result.HTML != "" {
		t.Errorf("expected empty extraction, got %+v", result)
	}
	if result.SourceURL != srv.URL {
		t.Errorf("source_url = %q", result.SourceURL)
	}
	if !strings.Contains(w.Body.String(), `"authors":[]`) {
		t.Errorf("authors not serialized as empty array: %s", w.Body.String())
	}
}

func TestNewsBadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "definitely not xml")
	}))
	defer srv.Close()

	w := doRequest(t, "/api/news?url="+srv.URL)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message in body")
	}
}

func TestNewsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed)
	}))
	defer srv.Close()

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"explicit limit", "&limit=2", 2},
		{"limit above item count", "&limit=50", 3},
		{"invalid limit falls back to default", "&limit=bogus", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doRequest(t, "/api/news?url="+srv.URL+c.query)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var result types.FeedResult
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if len(result.Items) != c.want {
				t.Fatalf("got %d items; want %d", len(result.Items), c.want)
			}
			if result.FeedTitle != "API Test Feed" {
				t.Fatalf("feed_title = %q", result.FeedTitle)
			}
		})
	}
}

func TestNewsDefaultSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed)
	}))
	defer srv.Close()

	t.Setenv("NEWS_RSS_URL", srv.URL)

	w := doRequest(t, "/api/news")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var result types.FeedResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.FeedTitle != "API Test Feed" {
		t.Fatalf("default source not used, feed_title = %q", result.FeedTitle)
	}
}
