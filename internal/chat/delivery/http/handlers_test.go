package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gems-assistant/internal/middleware"
	"gems-assistant/internal/resolver"
	"gems-assistant/pkg/log"
)

type echoResolver struct {
	got []string
}

func (e *echoResolver) Resolve(ctx context.Context, message string) resolver.Result {
	e.got = append(e.got, message)
	return resolver.Result{Response: "echo: " + message, Path: resolver.PathRules}
}

func newTestRouter(r *echoResolver, origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine, New(log.NewNop(), r, origins), middleware.New(log.NewNop(), "", 0))
	return engine
}

func TestChat(t *testing.T) {
	res := &echoResolver{}
	r := newTestRouter(res, nil)

	post := func(contentType, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("OK", func(t *testing.T) {
		w := post("application/json", `{"message":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body chatResp
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Response != "echo: hello" {
			t.Errorf("unexpected response %q", body.Response)
		}
		if strings.Contains(w.Body.String(), "rules") {
			t.Errorf("resolution path must not leak to clients: %s", w.Body.String())
		}
	})

	t.Run("Empty Message Is Resolved", func(t *testing.T) {
		w := post("application/json; charset=utf-8", `{"message":""}`)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Not JSON", func(t *testing.T) {
		if w := post("text/plain", "hello"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w := post("application/json", "{not json"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for malformed body, got %d", w.Code)
		}
	})

	t.Run("Missing Message Is Empty", func(t *testing.T) {
		res.got = nil
		w := post("application/json", `{"text":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(res.got) != 1 || res.got[0] != "" {
			t.Errorf("expected empty message to be resolved, got %q", res.got)
		}
	})

	t.Run("Null Message", func(t *testing.T) {
		w := post("application/json", `{"message":null}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), errNoMessage.Error()) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("Message Not A String", func(t *testing.T) {
		w := post("application/json", `{"message":42}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), errMessageNotString.Error()) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}

func TestStream(t *testing.T) {
	res := &echoResolver{}
	srv := httptest.NewServer(newTestRouter(res, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for _, frame := range []string{`{"message":"hi"}`, "plain text"} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			t.Fatalf("write: %v", err)
		}
		var body chatResp
		if err := conn.ReadJSON(&body); err != nil {
			t.Fatalf("read: %v", err)
		}
		want := "echo: hi"
		if frame == "plain text" {
			want = "echo: plain text"
		}
		if body.Response != want {
			t.Errorf("expected %q, got %q", want, body.Response)
		}
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://gems.example.edu"})

	req := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
	if !check(req) {
		t.Error("requests without Origin should pass")
	}

	req.Header.Set("Origin", "https://GEMS.example.edu")
	if !check(req) {
		t.Error("allowed origin rejected")
	}

	req.Header.Set("Origin", "https://evil.example.com")
	if check(req) {
		t.Error("foreign origin accepted")
	}
}
