package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// Event is the payload delivered to the feedback webhook.
type Event struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Mode      string          `json:"mode"`
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	Sources   []models.Source `json:"sources"`
	Rating    string          `json:"rating,omitempty"`
}

// Dispatcher delivers events to an optional webhook URL. Delivery is
// fire-and-forget: it runs on its own goroutine with its own timeout, and
// failures are logged and swallowed. An empty URL makes Dispatch a no-op.
type Dispatcher struct {
	url        string
	httpClient *http.Client
}

func NewDispatcher(url string) *Dispatcher {
	return &Dispatcher{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Enabled reports whether a webhook URL is configured.
func (d *Dispatcher) Enabled() bool { return d.url != "" }

// Dispatch sends the event in the background and returns immediately.
func (d *Dispatcher) Dispatch(ev Event) {
	if d.url == "" {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	go func() {
		body, err := json.Marshal(ev)
		if err != nil {
			logger.Log.WithError(err).Warn("feedback: marshal event")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
		if err != nil {
			logger.Log.WithError(err).Warn("feedback: build request")
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.httpClient.Do(req)
		if err != nil {
			logger.Log.WithError(err).Warn("feedback: webhook delivery failed")
			return
		}
		resp.Body.Close()

		if resp.StatusCode >= 300 {
			logger.Log.WithField("status", resp.StatusCode).Warn("feedback: webhook rejected event")
		}
	}()
}
