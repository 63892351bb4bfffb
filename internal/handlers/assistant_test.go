package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/assistant"
)

func fakeGemini(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("upstream expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const geminiReply = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Un vestido midi con tenis blancos."}]}}]}`

func TestRelayRejectsNonPost(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestRelayRequiresPrompt(t *testing.T) {
	upstream := fakeGemini(t, http.StatusOK, geminiReply)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/generate", "", map[string]interface{}{"systemInstruction": "sé amable"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without prompt, got %d", w.Code)
	}
}

func TestRelayMissingCredentialIs500(t *testing.T) {
	client := assistant.NewClient("", "test-model")
	r := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/generate", "", map[string]interface{}{"prompt": "hola"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without API key, got %d", w.Code)
	}
}

func TestRelaySuccessReturnsText(t *testing.T) {
	upstream := fakeGemini(t, http.StatusOK, geminiReply)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/generate", "", map[string]interface{}{"prompt": "¿qué me pongo?"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["text"].(string) != "Un vestido midi con tenis blancos." {
		t.Fatalf("unexpected text %v", body["text"])
	}
}

func TestRelayPassesUpstreamStatusThrough(t *testing.T) {
	upstream := fakeGemini(t, http.StatusTooManyRequests, `{"error":"quota"}`)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/generate", "", map[string]interface{}{"prompt": "hola"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected upstream 429 relayed, got %d", w.Code)
	}
}

func TestRelayEmptyCandidatesFallbackText(t *testing.T) {
	upstream := fakeGemini(t, http.StatusOK, `{"candidates":[]}`)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/generate", "", map[string]interface{}{"prompt": "hola"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["text"].(string) != "No se generó texto." {
		t.Fatalf("expected empty-candidates fallback, got %v", body["text"])
	}
}

func TestChatAppendsReply(t *testing.T) {
	upstream := fakeGemini(t, http.StatusOK, geminiReply)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)
	token := createSessionToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/assistant/chat", token, map[string]interface{}{"message": "¿qué me pongo?"})
	if w.Code != http.StatusOK {
		t.Fatalf("chat failed with %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["reply"].(string) != "Un vestido midi con tenis blancos." {
		t.Fatalf("unexpected reply %v", body["reply"])
	}

	// Greeting + user + assistant.
	messages := body["messages"].([]interface{})
	if len(messages) != 3 {
		t.Fatalf("expected 3 transcript messages, got %d", len(messages))
	}
}

func TestChatDegradesToApologyOnFailure(t *testing.T) {
	upstream := fakeGemini(t, http.StatusInternalServerError, `{"error":"boom"}`)
	client := assistant.NewClient("key", "test-model").WithBaseURL(upstream.URL)
	r := newTestRouter(t, client)
	token := createSessionToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/assistant/chat", token, map[string]interface{}{"message": "hola"})
	if w.Code != http.StatusOK {
		t.Fatalf("a failed upstream call must still return 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["reply"].(string) != assistant.FallbackReply {
		t.Fatalf("expected canned apology, got %v", body["reply"])
	}
}

func TestAssistantTranscriptStartsWithGreeting(t *testing.T) {
	r := newTestRouter(t, nil)
	token := createSessionToken(t, r)

	body := decodeBody(t, doJSON(t, r, http.MethodGet, "/assistant/messages", token, nil))
	messages := body["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(messages))
	}
	first := messages[0].(map[string]interface{})
	if first["sender"].(string) != "assistant" {
		t.Fatalf("greeting must come from the assistant, got %v", first["sender"])
	}
}
