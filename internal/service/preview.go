package service

import (
	"context"
	"sync"

	"github.com/MRehmanR/resume-builder/internal/domain"
	"github.com/MRehmanR/resume-builder/internal/render"
	"github.com/MRehmanR/resume-builder/internal/resume"
)

// PreviewService fetches resume snapshots and renders them through a layout.
// Each view (one Telegram chat's preview message) carries a monotonically
// increasing request token; a fetch that resolves after a newer one started
// is stale and its result is never applied.
type PreviewService struct {
	backend *BackendClient

	mu     sync.Mutex
	tokens map[int64]uint64
}

func NewPreviewService(backend *BackendClient) *PreviewService {
	return &PreviewService{backend: backend, tokens: make(map[int64]uint64)}
}

// Render fetches the snapshot for sessionID and renders it in the given
// format as plain text. Switching format or session while a fetch is in
// flight invalidates it: the late result resolves to domain.ErrStalePreview
// instead of overwriting the current view. The snapshot is re-fetched on
// every call.
func (p *PreviewService) Render(ctx context.Context, viewID int64, sessionID string, format render.Format) (string, error) {
	token := p.begin(viewID)

	markdown, err := p.backend.Preview(ctx, sessionID)
	// Staleness wins over the fetch outcome: a late failure must not
	// disturb the newer render's result either.
	if !p.current(viewID, token) {
		return "", domain.ErrStalePreview
	}
	if err != nil {
		return "", err
	}

	vm := resume.BuildViewModel(markdown)
	return render.PlainText(render.Render(vm, format)), nil
}

// Snapshot fetches the raw markdown document without rendering. Used by the
// domain tools, which operate on the source document rather than a layout.
func (p *PreviewService) Snapshot(ctx context.Context, sessionID string) (string, error) {
	return p.backend.Preview(ctx, sessionID)
}

func (p *PreviewService) begin(viewID int64) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[viewID]++
	return p.tokens[viewID]
}

func (p *PreviewService) current(viewID int64, token uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tokens[viewID] == token
}
