package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/amalg/go-minesweeper/internal/game"
)

func testServer() *httptest.Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return httptest.NewServer(New(log).Handler())
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestCreateAndGetMatch(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/matches", game.Config{Width: 8, Height: 8, Mines: 10})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	snap := decode[game.Snapshot](t, resp)
	if snap.ID == "" {
		t.Fatal("created match has no id")
	}
	if snap.Status != "not_started" {
		t.Fatalf("expected not_started, got %q", snap.Status)
	}
	if snap.FlagsRemaining != 10 {
		t.Fatalf("expected flag budget 10, got %d", snap.FlagsRemaining)
	}

	getResp, err := http.Get(fmt.Sprintf("%s/matches/%s", ts.URL, snap.ID))
	if err != nil {
		t.Fatalf("GET match: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", getResp.StatusCode)
	}
	got := decode[game.Snapshot](t, getResp)
	if got.ID != snap.ID {
		t.Fatalf("get returned a different match: %s vs %s", got.ID, snap.ID)
	}
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/matches", game.Config{Width: 2, Height: 2, Mines: 3})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an over-capacity config, got %d", resp.StatusCode)
	}
}

func TestRevealAndFlag(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	created := decode[game.Snapshot](t, postJSON(t, ts.URL+"/matches",
		game.Config{Width: 8, Height: 8, Mines: 10}))

	resp := postJSON(t, fmt.Sprintf("%s/matches/%s/reveal", ts.URL, created.ID),
		map[string]int{"x": 0, "y": 0})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reveal: expected 200, got %d", resp.StatusCode)
	}
	rr := decode[revealResponse](t, resp)
	if rr.Outcome != "revealed" {
		t.Fatalf("first reveal outcome %q, want revealed", rr.Outcome)
	}
	if len(rr.Uncovered) == 0 {
		t.Fatal("reveal reported no uncovered cells")
	}
	if rr.Match.Cells[0][0].State != game.StateOpen {
		t.Fatalf("revealed cell state %q, want open", rr.Match.Cells[0][0].State)
	}

	flagResp := postJSON(t, fmt.Sprintf("%s/matches/%s/flag", ts.URL, created.ID),
		map[string]int{"x": 7, "y": 7})
	fr := decode[flagResponse](t, flagResp)
	if fr.Outcome != "placed" && fr.Outcome != "rejected" {
		t.Fatalf("unexpected flag outcome %q", fr.Outcome)
	}
	if fr.Outcome == "placed" && fr.Match.FlagsRemaining != 9 {
		t.Fatalf("expected 9 flags remaining, got %d", fr.Match.FlagsRemaining)
	}
}

func TestUnknownMatch(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/matches/00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	badResp, err := http.Get(ts.URL + "/matches/not-a-uuid")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer badResp.Body.Close()
	if badResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", badResp.StatusCode)
	}
}

func TestDuelRevealIncludesOpponentMove(t *testing.T) {
	ts := testServer()
	defer ts.Close()

	created := decode[game.Snapshot](t, postJSON(t, ts.URL+"/matches",
		game.Config{Width: 16, Height: 16, Mines: 40, Duel: true}))

	resp := postJSON(t, fmt.Sprintf("%s/matches/%s/reveal", ts.URL, created.ID),
		map[string]int{"x": 8, "y": 8})
	rr := decode[revealResponse](t, resp)
	if rr.Outcome != "revealed" {
		t.Fatalf("first reveal outcome %q, want revealed", rr.Outcome)
	}
	if rr.Match.Status == "in_progress" {
		if rr.Opponent == nil {
			t.Fatal("duel reveal response carries no opponent move")
		}
		if rr.Match.Turn != "player" {
			t.Fatalf("expected the turn back with the player, got %q", rr.Match.Turn)
		}
	}
}
