// Package webui is the server-rendered form frontend for the GPS processing
// endpoint: it validates the two numeric inputs, performs the POST, and
// renders the JSON response as HTML panels.
package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"hangout_backend/platform/logger"
)

// State is the submission lifecycle state. Exactly one panel is visible
// per state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateResults State = "results"
	StateError   State = "error"
)

// ErrSuperseded is returned when a newer submission started before this
// one settled; its result is discarded.
var ErrSuperseded = errors.New("submission superseded")

const msgInvalidInput = "Please enter a positive budget and distance."

const maxResponseBytes = 1 << 20

// Doer performs HTTP requests. *http.Client satisfies it; tests inject
// a mock.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// View is the rendered outcome of a submission.
type View struct {
	State   State
	Results template.HTML
	Error   string
}

// Controller drives the submit lifecycle against the processing endpoint.
// All collaborators are injected; there is no ambient state beyond the
// submission sequence counter.
type Controller struct {
	client   Doer
	endpoint string
	log      *logger.Logger
	seq      atomic.Uint64
	onState  func(State)
}

// NewController builds a controller posting to endpoint through client.
func NewController(client Doer, endpoint string, log *logger.Logger) *Controller {
	return &Controller{client: client, endpoint: endpoint, log: log}
}

// OnStateChange registers an observer for lifecycle transitions.
func (c *Controller) OnStateChange(fn func(State)) {
	c.onState = fn
}

type processPayload struct {
	Budget   float64 `json:"budget"`
	Distance float64 `json:"distance"`
}

// Submit runs one full lifecycle: validate, post, render. Validation
// failures return an error view without any network activity. When a newer
// submission starts before this one settles, the result is discarded and
// ErrSuperseded is returned.
func (c *Controller) Submit(ctx context.Context, budgetRaw, distanceRaw string) (View, error) {
	payload, err := parseInputs(budgetRaw, distanceRaw)
	if err != nil {
		return View{State: StateError, Error: err.Error()}, nil
	}

	seq := c.seq.Add(1)
	c.setState(StateLoading)

	view := c.perform(ctx, payload)

	if c.seq.Load() != seq {
		return View{}, ErrSuperseded
	}

	c.setState(view.State)
	return view, nil
}

func (c *Controller) perform(ctx context.Context, payload processPayload) View {
	body, err := json.Marshal(payload)
	if err != nil {
		return c.errorView(fmt.Sprintf("Request failed: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.errorView(fmt.Sprintf("Request failed: %s", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.errorView(fmt.Sprintf("Request failed: %s", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorView(fmt.Sprintf("Server error: %d %s", resp.StatusCode, statusText(resp)))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.errorView(fmt.Sprintf("Request failed: %s", err))
	}

	results, err := RenderHTML(raw)
	if err != nil {
		return c.errorView(fmt.Sprintf("Request failed: %s", err))
	}

	return View{State: StateResults, Results: results}
}

func (c *Controller) errorView(message string) View {
	c.log.Warn("submission failed", "error", message)
	return View{State: StateError, Error: message}
}

func (c *Controller) setState(state State) {
	if c.onState != nil {
		c.onState(state)
	}
}

func parseInputs(budgetRaw, distanceRaw string) (processPayload, error) {
	budget, err := parsePositive(budgetRaw)
	if err != nil {
		return processPayload{}, errors.New(msgInvalidInput)
	}
	distance, err := parsePositive(distanceRaw)
	if err != nil {
		return processPayload{}, errors.New(msgInvalidInput)
	}
	return processPayload{Budget: budget, Distance: distance}, nil
}

func parsePositive(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, errors.New("not a positive number")
	}
	return value, nil
}

// statusText extracts the reason phrase from resp.Status ("500 Internal
// Server Error" => "Internal Server Error"), falling back to the standard
// text for the code.
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}
