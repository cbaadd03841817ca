package webui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"hangout_backend/platform/logger"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func testController(doer Doer) *Controller {
	return NewController(doer, "http://backend/api/process-gps", logger.New("test"))
}

func TestSubmit_RejectsInvalidInputsWithoutNetwork(t *testing.T) {
	cases := []struct {
		name             string
		budget, distance string
	}{
		{"empty budget", "", "5"},
		{"empty distance", "50", ""},
		{"unparseable", "abc", "5"},
		{"zero budget", "0", "5"},
		{"negative distance", "50", "-3"},
		{"nan", "NaN", "5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			c := testController(doerFunc(func(*http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, `{}`), nil
			}))

			view, err := c.Submit(context.Background(), tc.budget, tc.distance)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.State != StateError {
				t.Fatalf("expected error state, got %q", view.State)
			}
			if view.Error != "Please enter a positive budget and distance." {
				t.Fatalf("unexpected validation message %q", view.Error)
			}
			if calls != 0 {
				t.Fatalf("validation failure must not reach the network, saw %d calls", calls)
			}
		})
	}
}

func TestSubmit_PostsExactPayload(t *testing.T) {
	var gotBody string
	var gotContentType string
	c := testController(doerFunc(func(req *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		gotBody = string(b)
		gotContentType = req.Header.Get("Content-Type")
		return jsonResponse(http.StatusOK, `{"message":"ok"}`), nil
	}))

	view, err := c.Submit(context.Background(), "50", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != StateResults {
		t.Fatalf("expected results state, got %q", view.State)
	}
	if gotBody != `{"budget":50,"distance":5}` {
		t.Fatalf("unexpected request body %q", gotBody)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
}

func TestSubmit_HTTPStatusError(t *testing.T) {
	c := testController(doerFunc(func(*http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`)
		resp.Status = "500 Internal Server Error"
		return resp, nil
	}))

	view, err := c.Submit(context.Background(), "50", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != StateError {
		t.Fatalf("expected error state, got %q", view.State)
	}
	if !strings.Contains(view.Error, "500") || !strings.Contains(view.Error, "Internal Server Error") {
		t.Fatalf("status error must carry code and status text, got %q", view.Error)
	}
	if view.Results != "" {
		t.Fatal("error views must not carry results")
	}
}

func TestSubmit_TransportError(t *testing.T) {
	c := testController(doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))

	view, err := c.Submit(context.Background(), "50", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != StateError {
		t.Fatalf("expected error state, got %q", view.State)
	}
	if !strings.Contains(view.Error, "connection refused") {
		t.Fatalf("transport error text missing from %q", view.Error)
	}
}

func TestSubmit_MalformedResponseBody(t *testing.T) {
	c := testController(doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"spots":`), nil
	}))

	view, err := c.Submit(context.Background(), "50", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != StateError {
		t.Fatalf("expected error state, got %q", view.State)
	}
}

func TestSubmit_RendersSpots(t *testing.T) {
	c := testController(doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"spots":[{"name":"Cafe"}]}`), nil
	}))

	var states []State
	c.OnStateChange(func(s State) { states = append(states, s) })

	view, err := c.Submit(context.Background(), "50", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != StateResults {
		t.Fatalf("expected results state, got %q", view.State)
	}
	if !strings.Contains(string(view.Results), "Spot 1") {
		t.Fatalf("expected spot panel in results:\n%s", view.Results)
	}
	if len(states) != 2 || states[0] != StateLoading || states[1] != StateResults {
		t.Fatalf("unexpected state sequence %v", states)
	}
}

func TestSubmit_SupersededResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	c := testController(doerFunc(func(req *http.Request) (*http.Response, error) {
		var first bool
		once.Do(func() { first = true })
		if first {
			close(started)
			<-release
			return jsonResponse(http.StatusOK, `{"message":"stale"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"message":"fresh"}`), nil
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	var staleView View
	var staleErr error
	go func() {
		defer wg.Done()
		staleView, staleErr = c.Submit(context.Background(), "50", "5")
	}()

	<-started

	freshView, err := c.Submit(context.Background(), "60", "6")
	if err != nil {
		t.Fatalf("unexpected error on fresh submit: %v", err)
	}
	if freshView.State != StateResults {
		t.Fatalf("expected results state, got %q", freshView.State)
	}

	close(release)
	wg.Wait()

	if !errors.Is(staleErr, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v (view %+v)", staleErr, staleView)
	}
	if staleView.State != "" {
		t.Fatalf("superseded submissions must return an empty view, got %+v", staleView)
	}
}
