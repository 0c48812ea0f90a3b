package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func chatTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/ai/chat", Chat)
	return router
}

func TestCannedReplyKeywords(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"hello there", "Welcome to the bookstore"},
		{"Hi!", "Welcome to the bookstore"},
		{"I'm looking for a book about whales", "search"},
		{"can you recommend something?", "Trending"},
		{"what categories do you have", "ten categories"},
		{"how do I request a book", "book request"},
		{"help", "Here's what I can help with"},
	}
	for _, tc := range cases {
		reply := CannedReply(tc.message)
		if !strings.Contains(reply, tc.want) {
			t.Errorf("CannedReply(%q) = %q, want it to contain %q", tc.message, reply, tc.want)
		}
	}
}

func TestCannedReplyDefault(t *testing.T) {
	reply := CannedReply("what is the meaning of life")
	if reply != defaultCannedReply {
		t.Errorf("unmatched message should get the default reply, got %q", reply)
	}
	if reply == "" {
		t.Error("reply must never be empty")
	}
}

// Without an API key the handler must answer from the canned table and never
// dial out.
func TestChatFallbackWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat",
		strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	chatTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Welcome to the bookstore") {
		t.Errorf("expected the greeting canned reply, got %s", body)
	}
	if !strings.Contains(body, `"source":"fallback"`) {
		t.Errorf("expected fallback source, got %s", body)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	for _, payload := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		chatTestRouter().ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, w.Code)
		}
	}
}

func TestChatMalformedBody(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	chatTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
