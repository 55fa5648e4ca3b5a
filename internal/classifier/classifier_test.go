package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// completionServer fakes the OpenAI chat-completions endpoint, returning the
// given string as the assistant message content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		var req struct {
			Model          string `json:"model"`
			ResponseFormat *struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Error("expected response_format json_object")
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func newTestClassifier(serverURL string) *Classifier {
	return NewWithBaseURL("test-key", "test-model", serverURL+"/v1", discardLogger())
}

func TestClassify_Success(t *testing.T) {
	server := completionServer(t, `{"resolved":"sim","sentiment":"positivo","analysis":"cliente confirmou resolução","keywords":["timeout","nota fiscal"]}`)
	defer server.Close()

	res, err := newTestClassifier(server.URL).Classify(context.Background(), "enviado por: cliente\nmensagem: oi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Resolved != "sim" {
		t.Errorf("expected resolved sim, got %q", res.Resolved)
	}
	if res.Sentiment != "positivo" {
		t.Errorf("expected sentiment positivo, got %q", res.Sentiment)
	}
	if res.Keywords.String() != "timeout, nota fiscal" {
		t.Errorf("unexpected keywords: %q", res.Keywords.String())
	}
}

func TestClassify_ScalarKeywords(t *testing.T) {
	server := completionServer(t, `{"resolved":"nao","sentiment":"negativo","analysis":"x","keywords":"timeout, nota fiscal"}`)
	defer server.Close()

	res, err := newTestClassifier(server.URL).Classify(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Keywords.String() != "timeout, nota fiscal" {
		t.Errorf("scalar and list shapes must display identically, got %q", res.Keywords.String())
	}
}

func TestClassify_InvalidJSONIsParseError(t *testing.T) {
	server := completionServer(t, "desculpe, não consegui analisar")
	defer server.Close()

	_, err := newTestClassifier(server.URL).Classify(context.Background(), "transcript")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Raw != "desculpe, não consegui analisar" {
		t.Errorf("expected raw body preserved, got %q", parseErr.Raw)
	}
}

func TestClassify_MissingKeysIsParseError(t *testing.T) {
	server := completionServer(t, `{"analysis":"só análise"}`)
	defer server.Close()

	_, err := newTestClassifier(server.URL).Classify(context.Background(), "transcript")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError for missing keys, got %v", err)
	}
}

func TestClassify_TransportErrorIsNotParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "overloaded", "type": "server_error"},
		})
	}))
	defer server.Close()

	_, err := newTestClassifier(server.URL).Classify(context.Background(), "transcript")
	if err == nil {
		t.Fatal("expected error")
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		t.Fatalf("transport failure must not be a *ParseError: %v", err)
	}
}

func TestStringList_UnmarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"list", `["timeout","nota fiscal"]`, "timeout, nota fiscal"},
		{"scalar", `"timeout, nota fiscal"`, "timeout, nota fiscal"},
		{"empty scalar", `""`, ""},
		{"null", `null`, ""},
		{"empty list", `[]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, l.String())
			}
		})
	}

	var l StringList
	if err := json.Unmarshal([]byte(`{"not":"keywords"}`), &l); err == nil {
		t.Error("expected error for object-shaped keywords")
	}
}
