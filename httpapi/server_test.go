package httpapi

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/systems"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *engine.GameContext) {
	t.Helper()
	game, err := engine.NewGameContext(engine.ConfigResource{
		Grid: core.NewGrid(10, 10, 4),
		Seed: 1,
	})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	systems.Install(game, nil)
	return NewServer(game, "test-session"), game
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestDirectionJSON(t *testing.T) {
	s, game := newTestServer(t)

	w := do(s, http.MethodPost, "/direction", `{"direction":"up"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d: %s", w.Code, w.Body.String())
	}

	game.Frame(16 * time.Millisecond)
	if dir := game.Snapshot().Direction; dir != core.DirUp {
		t.Errorf("Expected direction up after frame, got %v", dir)
	}
}

func TestDirectionQueryAndReversal(t *testing.T) {
	s, game := newTestServer(t)

	// Initial direction is right, so left is a reversal and must be ignored by the simulation
	w := do(s, http.MethodPost, "/direction?direction=left", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", w.Code)
	}
	game.Frame(16 * time.Millisecond)
	if dir := game.Snapshot().Direction; dir != core.DirRight {
		t.Errorf("Reversal applied: direction %v", dir)
	}
}

func TestDirectionRejectsGarbage(t *testing.T) {
	s, _ := newTestServer(t)

	if w := do(s, http.MethodPost, "/direction?direction=north", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown direction, got %d", w.Code)
	}
	if w := do(s, http.MethodPost, "/direction", `{"direction":`); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestState(t *testing.T) {
	s, game := newTestServer(t)
	game.Frame(16 * time.Millisecond)

	w := do(s, http.MethodGet, "/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Session  string          `json:"session"`
		Snapshot engine.Snapshot `json:"snapshot"`
		Status   map[string]any  `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if body.Session != "test-session" {
		t.Errorf("Unexpected session %q", body.Session)
	}
	if body.Snapshot.Length != 2 || len(body.Snapshot.Segments) != 2 {
		t.Errorf("Unexpected snapshot %+v", body.Snapshot)
	}
	if body.Snapshot.Food == nil {
		t.Error("Expected food after first frame")
	}
	if body.Status["game.alive"] != true {
		t.Errorf("Expected game.alive true, got %v", body.Status["game.alive"])
	}
}

func TestBoardPNG(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/board.png", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Unexpected content type %q", ct)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Body is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("Expected 40px wide board, got %d", img.Bounds().Dx())
	}

	w = do(s, http.MethodGet, "/board.png?size=16", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for thumbnail, got %d", w.Code)
	}
	thumb, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Thumbnail is not a PNG: %v", err)
	}
	if thumb.Bounds().Dx() > 16 {
		t.Errorf("Thumbnail too wide: %d", thumb.Bounds().Dx())
	}

	if w := do(s, http.MethodGet, "/board.png?size=0", ""); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for size=0, got %d", w.Code)
	}
}
