package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestNewGameAndPlay(t *testing.T) {
	h := NewHandler()

	rec := post(t, h, "/api/new_game", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game status = %d, body %s", rec.Code, rec.Body)
	}
	ng := decode[NewGameResponse](t, rec)
	if ng.GameID == "" || ng.ToMove != 0 || len(ng.LegalMoves) != 44 {
		t.Fatalf("new_game = %+v", ng)
	}
	found := false
	for _, m := range ng.LegalMoves {
		if m.ICCS == "h2e2" && m.Record == "炮二平五" {
			found = true
		}
	}
	if !found {
		t.Fatalf("legal moves lack h2e2 with its record")
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: ng.GameID, Record: "炮二平五"})
	if rec.Code != http.StatusOK {
		t.Fatalf("play status = %d, body %s", rec.Code, rec.Body)
	}
	pr := decode[PlayResponse](t, rec)
	if pr.Played.ICCS != "h2e2" || pr.ToMove != 1 || pr.Status != "ongoing" {
		t.Fatalf("play = %+v", pr)
	}

	mv := MoveDTO{From: 7, To: 24} // h9 -> g7
	rec = post(t, h, "/api/play", PlayRequest{GameID: ng.GameID, Move: &mv})
	if rec.Code != http.StatusOK {
		t.Fatalf("play by squares status = %d, body %s", rec.Code, rec.Body)
	}
	pr = decode[PlayResponse](t, rec)
	if pr.Played.Record != "马8进7" {
		t.Fatalf("played record = %q", pr.Played.Record)
	}

	rec = post(t, h, "/api/state", StateRequest{GameID: ng.GameID})
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d", rec.Code)
	}
	st := decode[StateResponse](t, rec)
	if len(st.History) != 2 || st.History[0].Record != "炮二平五" {
		t.Fatalf("history = %+v", st.History)
	}
}

func TestPlayErrors(t *testing.T) {
	h := NewHandler()
	ng := decode[NewGameResponse](t, post(t, h, "/api/new_game", nil))

	rec := post(t, h, "/api/play", PlayRequest{GameID: ng.GameID, Record: "车五进一"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	er := decode[ErrorResponse](t, rec)
	if er.Kind != "NO_CANDIDATE" {
		t.Fatalf("error = %+v", er)
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: "nope", Record: "炮二平五"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown game status = %d", rec.Code)
	}

	bad := MoveDTO{From: 85, To: 67} // e0 -> e2
	rec = post(t, h, "/api/play", PlayRequest{GameID: ng.GameID, Move: &bad})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("illegal move status = %d", rec.Code)
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: ng.GameID})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty play status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d", w.Code)
	}
}

func TestParseAndFormat(t *testing.T) {
	h := NewHandler()

	rec := post(t, h, "/api/parse", ParseRequest{Record: "马二进三"})
	if rec.Code != http.StatusOK {
		t.Fatalf("parse status = %d, body %s", rec.Code, rec.Body)
	}
	if got := decode[ParseResponse](t, rec); got.Move.ICCS != "h0g2" {
		t.Fatalf("parse = %+v", got)
	}

	rec = post(t, h, "/api/parse", ParseRequest{
		Position: "4k4/9/9/9/2P6/2P6/9/9/9/3K5 w",
		Record:   "兵七进一",
	})
	er := decode[ErrorResponse](t, rec)
	if rec.Code != http.StatusBadRequest || er.Kind != "AMBIGUOUS" || er.Count != 2 {
		t.Fatalf("parse ambiguous = %d %+v", rec.Code, er)
	}

	rec = post(t, h, "/api/format", FormatRequest{Move: MoveDTO{From: 89, To: 80}})
	if rec.Code != http.StatusOK {
		t.Fatalf("format status = %d, body %s", rec.Code, rec.Body)
	}
	if got := decode[FormatResponse](t, rec); got.Record != "车一进一" {
		t.Fatalf("format = %+v", got)
	}

	rec = post(t, h, "/api/format", FormatRequest{Position: "x", Move: MoveDTO{From: 89, To: 80}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad position status = %d", rec.Code)
	}
}

func TestServerRoutes(t *testing.T) {
	s := NewServer(Options{})

	rec := get(s, "/")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/web/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// 内置记谱页面
	rec = get(s, "/web/")
	if rec.Code != http.StatusOK {
		t.Fatalf("embedded page status = %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "象棋记谱") || !strings.Contains(body, "/api/play") {
		t.Fatalf("embedded page body = %.200s", body)
	}

	if rec = get(s, "/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path status = %d", rec.Code)
	}

	rec = post(t, s, "/api/new_game", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("api through server status = %d", rec.Code)
	}
}

func TestServerWebDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom page"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	s := NewServer(Options{WebDir: dir})
	rec := get(s, "/web/")
	if rec.Code != http.StatusOK || rec.Body.String() != "custom page" {
		t.Fatalf("web dir page = %d %q", rec.Code, rec.Body)
	}
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
