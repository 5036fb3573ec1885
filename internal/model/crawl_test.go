package model

import (
	"reflect"
	"testing"
)

// TestBrokenLinkStatusText tests display text for HTTP and transport failures.
func TestBrokenLinkStatusText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		link BrokenLink
		want string
	}{
		{
			name: "http status",
			link: BrokenLink{Target: "http://example.com/missing", StatusCode: 404},
			want: "404",
		},
		{
			name: "timeout",
			link: BrokenLink{Target: "http://example.com/slow", Kind: KindTimeout},
			want: "timeout",
		},
		{
			name: "dns failure",
			link: BrokenLink{Target: "http://example.com/x", Kind: KindDNS},
			want: "dns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.link.StatusText(); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestBrokenLinkIsTransport tests the transport/HTTP distinction.
func TestBrokenLinkIsTransport(t *testing.T) {
	t.Parallel()

	httpLink := BrokenLink{StatusCode: 500}
	if httpLink.IsTransport() {
		t.Error("HTTP failure should not be a transport failure")
	}

	netLink := BrokenLink{Kind: KindConnectionRefused}
	if !netLink.IsTransport() {
		t.Error("connection-refused should be a transport failure")
	}
}

// TestPageRecordSegments tests URL path splitting for tree building.
func TestPageRecordSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "root",
			url:  "http://example.com",
			want: []string{""},
		},
		{
			name: "root with slash",
			url:  "http://example.com/",
			want: []string{""},
		},
		{
			name: "single segment",
			url:  "http://example.com/about",
			want: []string{"about"},
		},
		{
			name: "nested path",
			url:  "http://example.com/blog/2025/launch",
			want: []string{"blog", "2025", "launch"},
		},
		{
			name: "file in directory",
			url:  "http://example.com/blog/index.html",
			want: []string{"blog", "index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PageRecord{URL: tt.url}.Segments()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCrawlResultAccumulation tests page and broken-link bookkeeping.
func TestCrawlResultAccumulation(t *testing.T) {
	t.Parallel()

	result := NewCrawlResult("http://example.com")

	if result.HasBroken() {
		t.Error("fresh result should have no broken links")
	}

	result.AddPage(PageRecord{URL: "http://example.com", StatusCode: 200})
	result.AddPage(PageRecord{URL: "http://example.com/about", StatusCode: 200})
	result.AddBroken(BrokenLink{
		Target:     "http://example.com/missing",
		Referrer:   "http://example.com",
		StatusCode: 404,
	})

	if result.PagesCrawled != 2 {
		t.Errorf("PagesCrawled = %d, want 2", result.PagesCrawled)
	}
	if len(result.Visited) != result.PagesCrawled {
		t.Errorf("len(Visited) = %d, want %d", len(result.Visited), result.PagesCrawled)
	}
	if !result.HasBroken() {
		t.Error("expected broken links to be recorded")
	}
}
