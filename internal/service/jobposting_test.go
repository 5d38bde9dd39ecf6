package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!doctype html>
<html>
<head><title>Job</title><style>body { color: red }</style></head>
<body>
<nav><a href="/">Home</a><a href="/jobs">Jobs</a></nav>
<header>Acme Careers</header>
<main>
<h1>Senior Go Engineer</h1>
<p>We build distributed systems.</p>
<ul><li>5+ years of Go</li><li>PostgreSQL experience</li></ul>
<script>trackView()</script>
</main>
<footer>© Acme</footer>
</body>
</html>`

func TestResolvePassesThroughPlainText(t *testing.T) {
	f := NewJobPostingFetcher()
	out, err := f.Resolve(context.Background(), "Looking for a Go developer with 5 years experience")
	require.NoError(t, err)
	assert.Equal(t, "Looking for a Go developer with 5 years experience", out)
}

func TestResolveFetchesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	f := NewJobPostingFetcher()
	out, err := f.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Senior Go Engineer")
	assert.Contains(t, out, "5+ years of Go")
	assert.NotContains(t, out, "trackView")
	assert.NotContains(t, out, "Acme Careers")
	assert.NotContains(t, out, "color: red")
}

func TestResolveFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewJobPostingFetcher()
	_, err := f.Resolve(context.Background(), srv.URL+"/gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestExtractPostingTextFallsBackToBody(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div>Just a bare div of text</div></body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "Just a bare div of text", ExtractPostingText(doc))
}

func TestExtractPostingTextPrefersMain(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><p>outside</p><main><p>inside</p></main></body></html>`))
	require.NoError(t, err)

	assert.Equal(t, "inside", ExtractPostingText(doc))
}
