package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MRehmanR/resume-builder/internal/config"
)

// JobPostingFetcher resolves a job description argument: URLs are fetched
// and reduced to readable text, anything else is passed through as-is.
type JobPostingFetcher struct {
	httpClient *http.Client
}

func NewJobPostingFetcher() *JobPostingFetcher {
	return &JobPostingFetcher{
		httpClient: &http.Client{Timeout: config.FetchTimeout},
	}
}

// Resolve returns JD text for input. An http(s) URL is downloaded and
// stripped to its visible text; plain text comes back unchanged.
func (f *JobPostingFetcher) Resolve(ctx context.Context, input string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(input))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return input, nil
	}
	return f.fetch(ctx, parsed.String())
}

func (f *JobPostingFetcher) fetch(ctx context.Context, jobURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch job posting: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse job posting: %w", err)
	}
	return ExtractPostingText(doc), nil
}

// ExtractPostingText reduces an HTML document to readable JD text: scripts,
// styles and navigation chrome are dropped, block elements become lines.
func ExtractPostingText(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, noscript").Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var lines []string
	root.Find("h1, h2, h3, h4, p, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(root.Text())
	}
	return strings.Join(lines, "\n")
}
