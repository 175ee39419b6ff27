package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/domify-dev/domify/pkg/hyperscript"
	"github.com/domify-dev/domify/pkg/propmap"
	"github.com/domify-dev/domify/pkg/vdom"
)

func newTestServer(t *testing.T, mutate func(*Config)) *Server {
	t.Helper()

	registry := hyperscript.Registry{}
	registry.Register("my-widget", vdom.ComponentRef{Name: "Widget"})

	cfg := Config{
		Registry: registry,
		Mapper:   propmap.New(),
		Metrics:  prometheus.NewRegistry(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

func postConvert(t *testing.T, s *Server, markup, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/convert"+query, strings.NewReader(markup))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestConvertJSON(t *testing.T) {
	s := newTestServer(t, nil)
	markup := `<my-widget greeting="hello" item-count="3"><span slot="icon">*</span>body</my-widget>`

	rec := postConvert(t, s, markup, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	root := decodeJSONBody(t, rec)
	if root["kind"] != "fragment" {
		t.Fatalf("root kind = %v", root["kind"])
	}
	children := root["children"].([]any)
	if len(children) != 1 {
		t.Fatalf("root children = %d", len(children))
	}

	widget := children[0].(map[string]any)
	if widget["kind"] != "component" || widget["type"] != "Widget" {
		t.Errorf("widget = %v", widget)
	}
	props := widget["props"].(map[string]any)
	if props["greeting"] != "hello" {
		t.Errorf("greeting = %v", props["greeting"])
	}
	if props["itemCount"] != float64(3) {
		t.Errorf("itemCount = %v", props["itemCount"])
	}
	icon, ok := props["icon"].(map[string]any)
	if !ok || icon["kind"] != "element" || icon["tag"] != "span" {
		t.Errorf("icon slot = %v", props["icon"])
	}
}

func TestConvertHTML(t *testing.T) {
	s := newTestServer(t, nil)
	rec := postConvert(t, s, `<my-widget greeting="hello">body</my-widget>`, "?format=html")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `data-component="Widget"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestConvertMsgpack(t *testing.T) {
	s := newTestServer(t, nil)
	rec := postConvert(t, s, `<p>hi</p>`, "?format=msgpack")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/msgpack" {
		t.Errorf("Content-Type = %q", ct)
	}

	decoded, err := vdom.DecodeMsgpack(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("DecodeMsgpack() error = %v", err)
	}
	if decoded["kind"] != "fragment" {
		t.Errorf("kind = %v", decoded["kind"])
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	s := newTestServer(t, nil)
	rec := postConvert(t, s, `<p>hi</p>`, "?format=yaml")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeJSONBody(t, rec)
	if body["code"] != "L002" {
		t.Errorf("code = %v", body["code"])
	}
}

func TestConvertDepthExceeded(t *testing.T) {
	s := newTestServer(t, func(cfg *Config) {
		cfg.MaxDepth = 2
	})
	rec := postConvert(t, s, `<div><div><div>deep</div></div></div>`, "")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeJSONBody(t, rec)
	if body["code"] != "E001" {
		t.Errorf("code = %v", body["code"])
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	postConvert(t, s, `<p>hi</p>`, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "domify_conversions_total") {
		t.Errorf("metrics output missing conversion counter:\n%s", rec.Body.String())
	}
}

func TestPreviewPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(`<p class="lead">hi</p>`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, func(cfg *Config) {
		cfg.WatchPath = path
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `class="lead"`) {
		t.Errorf("page missing rendered content:\n%s", body)
	}
	if !strings.Contains(body, "WebSocket") {
		t.Errorf("page missing preview script")
	}
}

func TestPreviewPageNotRoutedWithoutWatch(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPreviewWebSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(`<p>hi</p>`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, func(cfg *Config) {
		cfg.WatchPath = path
	})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.Preview().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Preview().NotifyUpdate("<p>new</p>")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg previewMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("message is not JSON: %v", err)
	}
	if msg.Type != previewTypeUpdate || msg.HTML != "<p>new</p>" {
		t.Errorf("message = %+v", msg)
	}
}
