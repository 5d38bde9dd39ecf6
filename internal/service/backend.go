package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/MRehmanR/resume-builder/internal/config"
	"github.com/MRehmanR/resume-builder/internal/domain"
)

// BackendClient talks to the generation backend. The backend is opaque: it
// owns session state and resume content; this client only moves JSON across
// the wire and maps wire roles onto domain roles.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// Domain tool names routed through POST /mcp/tools/<tool>.
const (
	ToolATSScore     = "ats_score"
	ToolGapDetection = "gap_detection"
	ToolJDParser     = "jd_parser"
	ToolShare        = "collaboration_share"
)

type wireMessage struct {
	ID        json.Number `json:"id"`
	Role      string      `json:"role"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"created_at"`
}

type wireChat struct {
	ID       string        `json:"id"`
	ChatID   int64         `json:"chat_id"`
	Title    string        `json:"title"`
	Messages []wireMessage `json:"messages"`
	Error    string        `json:"error"`
}

type resultResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// Chat runs one conversational turn for the given session and returns the
// assistant's markdown reply.
func (c *BackendClient) Chat(ctx context.Context, sessionID, query string) (string, error) {
	body, err := c.postJSON(ctx, "/mcp/tools/resume_agent", map[string]string{
		"query":      query,
		"session_id": sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("chat turn: %w", err)
	}
	return parseResult(body)
}

// Preview fetches the current resume markdown snapshot for a session. Every
// call re-fetches; snapshots are never cached across format switches.
func (c *BackendClient) Preview(ctx context.Context, sessionID string) (string, error) {
	body, err := c.get(ctx, "/mcp/tools/resume_agent/preview?session_id="+sessionID)
	if err != nil {
		return "", fmt.Errorf("fetch preview: %w", err)
	}
	return parseResult(body)
}

// UpdateSection replaces one resume section's content server-side.
func (c *BackendClient) UpdateSection(ctx context.Context, sessionID, section, content string) (string, error) {
	body, err := c.postJSON(ctx, "/mcp/tools/update_section", map[string]string{
		"session_id": sessionID,
		"section":    section,
		"content":    content,
	})
	if err != nil {
		return "", fmt.Errorf("update section: %w", err)
	}
	return parseResult(body)
}

// RunTool invokes one of the domain tools (ATS scoring, gap detection, JD
// tailoring, collaboration share) with a tool-specific payload.
func (c *BackendClient) RunTool(ctx context.Context, tool string, payload map[string]string) (string, error) {
	body, err := c.postJSON(ctx, "/mcp/tools/"+tool, payload)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", tool, err)
	}
	return parseResult(body)
}

// ListChats returns every session the backend knows about, in backend order.
func (c *BackendClient) ListChats(ctx context.Context) ([]domain.ChatSession, error) {
	body, err := c.get(ctx, "/chats/")
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	var chats []wireChat
	if err := json.Unmarshal(body, &chats); err != nil {
		return nil, fmt.Errorf("parse chat list: %w", err)
	}
	sessions := make([]domain.ChatSession, len(chats))
	for i, ch := range chats {
		sessions[i] = toSession(ch)
	}
	return sessions, nil
}

// CreateChat asks the backend for a fresh session. The returned session has
// an empty transcript; its id is the only id source in the system.
func (c *BackendClient) CreateChat(ctx context.Context) (domain.ChatSession, error) {
	body, err := c.postJSON(ctx, "/chats/", nil)
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("create chat: %w", err)
	}
	var created struct {
		SessionID string `json:"session_id"`
		ChatID    int64  `json:"chat_id"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return domain.ChatSession{}, fmt.Errorf("parse create response: %w", err)
	}
	if created.Error != "" {
		return domain.ChatSession{}, fmt.Errorf("create chat: %s", created.Error)
	}
	if created.SessionID == "" {
		return domain.ChatSession{}, fmt.Errorf("create chat: %w", domain.ErrEmptyReply)
	}
	return domain.ChatSession{ID: created.SessionID, ChatID: created.ChatID}, nil
}

// GetChat fetches the authoritative transcript for one session.
func (c *BackendClient) GetChat(ctx context.Context, sessionID string) (domain.ChatSession, error) {
	body, err := c.get(ctx, "/chats/"+sessionID)
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("get chat: %w", err)
	}
	var chat wireChat
	if err := json.Unmarshal(body, &chat); err != nil {
		return domain.ChatSession{}, fmt.Errorf("parse chat: %w", err)
	}
	if chat.Error != "" {
		return domain.ChatSession{}, domain.ErrSessionNotFound
	}
	return toSession(chat), nil
}

// DeleteChat removes a session from the backend.
func (c *BackendClient) DeleteChat(ctx context.Context, sessionID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/chats/"+sessionID, nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}
	body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if len(body) > 0 && json.Unmarshal(body, &resp) == nil && resp.Error != "" {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Upload sends an attachment to a session as a multipart file.
func (c *BackendClient) Upload(ctx context.Context, sessionID, filename string, data []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chats/"+sessionID+"/upload", &buf)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if len(body) > 0 && json.Unmarshal(body, &resp) == nil && resp.Error != "" {
		return fmt.Errorf("upload file: %s", resp.Error)
	}
	return nil
}

func (c *BackendClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

func (c *BackendClient) postJSON(ctx context.Context, path string, payload map[string]string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *BackendClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func parseResult(body []byte) (string, error) {
	var resp resultResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("backend error: %s", resp.Error)
	}
	if resp.Result == "" {
		return "", domain.ErrEmptyReply
	}
	return resp.Result, nil
}

func toSession(ch wireChat) domain.ChatSession {
	msgs := make([]domain.Message, len(ch.Messages))
	for i, m := range ch.Messages {
		msgs[i] = domain.Message{
			ID:        m.ID.String(),
			Role:      toRole(m.Role),
			Content:   m.Content,
			CreatedAt: parseTime(m.CreatedAt),
		}
	}
	return domain.ChatSession{ID: ch.ID, ChatID: ch.ChatID, Title: ch.Title, Messages: msgs}
}

// toRole maps the backend's wire roles onto domain roles.
func toRole(wire string) domain.Role {
	switch wire {
	case "user":
		return domain.RoleAuthor
	case "system":
		return domain.RoleSystemNotice
	default:
		return domain.RoleAssistant
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
