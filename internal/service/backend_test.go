package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRehmanR/resume-builder/internal/domain"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/mcp/tools/resume_agent", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s1", req["session_id"])
		assert.Equal(t, "add a skill", req["query"])

		json.NewEncoder(w).Encode(map[string]string{"result": "Done."})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	reply, err := c.Chat(context.Background(), "s1", "add a skill")
	require.NoError(t, err)
	assert.Equal(t, "Done.", reply)
}

func TestChatBackendErrorField(t *testing.T) {
	// The backend reports failures inside a 200 response body.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "model overloaded"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	_, err := c.Chat(context.Background(), "s1", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestChatEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"result": ""})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	_, err := c.Chat(context.Background(), "s1", "hi")
	assert.ErrorIs(t, err, domain.ErrEmptyReply)
}

func TestChatNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	_, err := c.Chat(context.Background(), "s1", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPreview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mcp/tools/resume_agent/preview", r.URL.Path)
		require.Equal(t, "s1", r.URL.Query().Get("session_id"))
		json.NewEncoder(w).Encode(map[string]string{"result": "## Skills\nGo"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	md, err := c.Preview(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "## Skills\nGo", md)
}

func TestListChats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chats/", r.URL.Path)
		w.Write([]byte(`[
			{"id": "s1", "chat_id": 1, "title": "", "messages": [
				{"id": 10, "role": "user", "content": "hi", "created_at": "2026-08-01T10:00:00Z"},
				{"id": 11, "role": "bot", "content": "hello", "created_at": "2026-08-01T10:00:05.123456"},
				{"id": 12, "role": "system", "content": "[Attachment] cv.pdf", "created_at": ""}
			]},
			{"id": "s2", "chat_id": 2, "title": "Backend role", "messages": []}
		]`))
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	sessions, err := c.ListChats(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	first := sessions[0]
	assert.Equal(t, "s1", first.ID)
	require.Len(t, first.Messages, 3)
	assert.Equal(t, domain.RoleAuthor, first.Messages[0].Role)
	assert.Equal(t, domain.RoleAssistant, first.Messages[1].Role)
	assert.Equal(t, domain.RoleSystemNotice, first.Messages[2].Role)
	assert.Equal(t, "10", first.Messages[0].ID)
	assert.False(t, first.Messages[0].CreatedAt.IsZero())
	assert.False(t, first.Messages[1].CreatedAt.IsZero())
	assert.True(t, first.Messages[2].CreatedAt.IsZero())

	assert.Equal(t, "Backend role", sessions[1].Title)
	assert.Empty(t, sessions[1].Messages)
}

func TestCreateChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chats/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"session_id": "s3", "chat_id": 3})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	sess, err := c.CreateChat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3", sess.ID)
	assert.Equal(t, int64(3), sess.ChatID)
	assert.True(t, sess.IsEmpty())
}

func TestGetChatNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "Chat not found"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	_, err := c.GetChat(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDeleteChat(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	require.NoError(t, c.DeleteChat(context.Background(), "s1"))
	assert.Equal(t, "/chats/s1", gotPath)
}

func TestDeleteChatNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "Chat not found"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	assert.ErrorIs(t, c.DeleteChat(context.Background(), "ghost"), domain.ErrSessionNotFound)
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chats/s1/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cv.pdf", header.Filename)

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	err := c.Upload(context.Background(), "s1", "cv.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
}

func TestRunTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mcp/tools/ats_score", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "## Skills\nGo", req["resume_text"])
		assert.Equal(t, "Go developer wanted", req["job_description"])

		json.NewEncoder(w).Encode(map[string]string{"result": "Score: 82/100"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	out, err := c.RunTool(context.Background(), ToolATSScore, map[string]string{
		"resume_text":     "## Skills\nGo",
		"job_description": "Go developer wanted",
	})
	require.NoError(t, err)
	assert.Equal(t, "Score: 82/100", out)
}

func TestUpdateSection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mcp/tools/update_section", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Skills", req["section"])
		assert.Equal(t, "Go, SQL", req["content"])

		json.NewEncoder(w).Encode(map[string]string{"result": "Section updated"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL)
	out, err := c.UpdateSection(context.Background(), "s1", "Skills", "Go, SQL")
	require.NoError(t, err)
	assert.Equal(t, "Section updated", out)
}
