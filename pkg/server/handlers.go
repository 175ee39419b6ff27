package server

import (
	"encoding/json"
	stderrors "errors"
	"html"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/htmldom"
	"github.com/domify-dev/domify/pkg/hyperscript"
	"github.com/domify-dev/domify/pkg/render"
	"github.com/domify-dev/domify/pkg/vdom"
)

// Output formats accepted by the convert endpoint.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatHTML    = "html"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// handleConvert converts the markup in the request body. The format query
// parameter selects json (default), msgpack, or html output; pretty=1
// indents json and html.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatJSON
	}
	switch format {
	case FormatJSON, FormatMsgpack, FormatHTML:
	default:
		s.metrics.recordConversion("invalid", "error", time.Since(start).Seconds())
		writeError(w, http.StatusBadRequest, errors.New("L002").WithDetailf("format %q", format))
		return
	}
	pretty := r.URL.Query().Get("pretty") == "1"

	node, err := htmldom.ParseFragment(r.Body)
	if err != nil {
		s.metrics.recordConversion(format, "error", time.Since(start).Seconds())
		writeError(w, http.StatusBadRequest, errors.New("E002").Wrap(err))
		return
	}

	vn, err := s.convert(node)
	if err != nil {
		s.metrics.recordConversion(format, "error", time.Since(start).Seconds())
		if stderrors.Is(err, hyperscript.ErrDepthExceeded) {
			writeError(w, http.StatusUnprocessableEntity, errors.New("E001").Wrap(err))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var (
		body        []byte
		contentType string
	)
	switch format {
	case FormatJSON:
		contentType = "application/json"
		if pretty {
			body, err = vdom.EncodeJSONIndent(vn)
		} else {
			body, err = vdom.EncodeJSON(vn)
		}
	case FormatMsgpack:
		contentType = "application/msgpack"
		body, err = vdom.EncodeMsgpack(vn)
	case FormatHTML:
		contentType = "text/html; charset=utf-8"
		var out string
		out, err = render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(vn)
		body = []byte(out)
	}
	if err != nil {
		s.metrics.recordConversion(format, "error", time.Since(start).Seconds())
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.recordConversion(format, "success", time.Since(start).Seconds())
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handlePreviewPage serves the live preview shell with the watched file's
// current rendering embedded.
func (s *Server) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	content, err := s.previewHTML()
	if err != nil {
		content = "<pre>" + html.EscapeString(err.Error()) + "</pre>"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(strings.Replace(previewPage, previewContentMarker, content, 1)))
}

// refreshPreview re-converts the watched file and pushes the result, or the
// failure, to connected preview clients.
func (s *Server) refreshPreview() {
	html, err := s.previewHTML()
	if err != nil {
		s.preview.NotifyError(err.Error())
		return
	}
	s.preview.NotifyUpdate(html)
}

// previewHTML converts and renders the watched file.
func (s *Server) previewHTML() (string, error) {
	f, err := os.Open(s.config.WatchPath)
	if err != nil {
		return "", errors.New("L001").WithDetailf("tried %s", s.config.WatchPath).Wrap(err)
	}
	defer f.Close()

	node, err := htmldom.ParseFragment(f)
	if err != nil {
		return "", errors.New("E002").Wrap(err)
	}
	vn, err := s.convert(node)
	if err != nil {
		return "", err
	}
	return render.NewRenderer(render.RendererConfig{Pretty: true}).RenderToString(vn)
}

// writeError sends a JSON error body, surfacing the code when the error
// carries one.
func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Message: err.Error()}
	var de *errors.DomifyError
	if stderrors.As(err, &de) {
		resp.Code = de.Code
		resp.Message = de.Message
		if de.Detail != "" {
			resp.Message += ": " + de.Detail
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
