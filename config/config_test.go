package config

import "testing"

func TestClampLimit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", DefaultLimit},
		{"non-numeric", "abc", DefaultLimit},
		{"zero", "0", DefaultLimit},
		{"negative", "-5", DefaultLimit},
		{"in range", "7", 7},
		{"at cap", "50", 50},
		{"above cap", "51", MaxLimit},
		{"far above cap", "9999", MaxLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClampLimit(c.raw); got != c.want {
				t.Fatalf("ClampLimit(%q) = %d; want %d", c.raw, got, c.want)
			}
		})
	}
}

func TestResolveFeedURL(t *testing.T) {
	if got := ResolveFeedURL("hn"); got != FeedPresets["hn"] {
		t.Fatalf("preset not resolved: %q", got)
	}
	direct := "https://example.com/rss.xml"
	if got := ResolveFeedURL(direct); got != direct {
		t.Fatalf("direct URL mangled: %q", got)
	}
}

func TestDefaultFeedURL(t *testing.T) {
	t.Setenv("NEWS_RSS_URL", "https://feeds.example.com/custom.xml")
	if got := DefaultFeedURL(); got != "https://feeds.example.com/custom.xml" {
		t.Fatalf("env override ignored: %q", got)
	}

	t.Setenv("NEWS_RSS_URL", "")
	if got := DefaultFeedURL(); got != fallbackFeedURL {
		t.Fatalf("fallback not applied: %q", got)
	}
}
