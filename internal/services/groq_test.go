package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapscan/resume-gap-analyzer/internal/models"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestGroqService_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatCompletionRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) || !assert.Len(t, req.Messages, 2) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "llama3-8b-8192", req.Model)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "sys", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "usr", req.Messages[1].Content)
		assert.InDelta(t, 0.2, req.Temperature, 1e-9)
		assert.InDelta(t, 0.9, req.TopP, 1e-9)
		assert.Equal(t, 1500, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatResponse("MATCH SCORE: 77%")))
	}))
	defer srv.Close()

	g := NewGroqService(srv.URL+"/", "test-key", 5*time.Second)
	require.True(t, g.HasCredential())
	assert.Equal(t, "Groq", g.Provider())

	out, err := g.Complete(context.Background(), "llama3-8b-8192", "sys", "usr")

	require.NoError(t, err)
	assert.Equal(t, "MATCH SCORE: 77%", out)
}

func TestGroqService_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		credential bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid key"}`, credential: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"slow down"}`},
		{name: "malformed json", status: http.StatusOK, body: `{"choices": [`},
		{name: "no choices", status: http.StatusOK, body: `{"choices": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGroqService(srv.URL, "k", 5*time.Second).Complete(context.Background(), "m", "s", "u")

			require.Error(t, err)
			assert.Equal(t, tt.credential, classifyAttempt("", err) == outcomeFatal)
		})
	}
}

func TestGroqService_NoCredential(t *testing.T) {
	assert.False(t, NewGroqService("http://localhost", "  ", time.Second).HasCredential())
}

func TestGroqFallback_EndToEnd(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		var req chatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch req.Model {
		case "first":
			w.WriteHeader(http.StatusServiceUnavailable)
		case "second":
			_, _ = w.Write([]byte(chatResponse("too short")))
		default:
			_, _ = w.Write([]byte(chatResponse("**MATCH SCORE: 68%**\n" + strings.Repeat("detail ", 30))))
		}
	}))
	defer srv.Close()

	client := NewLLMClient(NewGroqService(srv.URL, "k", 5*time.Second), []string{"first", "second", "third"}, nil)
	analyzer := NewAnalyzerService(client, nil)

	result, err := analyzer.Analyze(context.Background(), "resume", "job")

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
	assert.Equal(t, 68, result.MatchPercentage)
	assert.Equal(t, models.AssessmentStrong, result.OverallAssessment)
}

func TestGroqFallback_UnauthorizedStopsEarly(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewLLMClient(NewGroqService(srv.URL, "bad", 5*time.Second), []string{"first", "second"}, nil)

	_, err := client.Complete(context.Background(), "resume", "job")

	require.ErrorIs(t, err, models.ErrLLMInvalidCredential)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}
