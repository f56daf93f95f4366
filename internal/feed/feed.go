package feed

import (
	"errors"
	"net/http"
	"time"
)

const (
	// UserAgent identifies the tool to the feed host.
	UserAgent = "lcmhl-games-cli/1.0 (github.com/pfrederiksen/lcmhl-games)"

	// Timeout bounds the single feed fetch. There is no retry or backoff;
	// a failed fetch aborts the run with no partial results.
	Timeout = 30 * time.Second
)

var (
	// ErrFetchFailed indicates the feed was unreachable or returned a
	// non-success status. Fatal; the run aborts.
	ErrFetchFailed = errors.New("feed fetch failed")

	// ErrDecodeFailed indicates a malformed feed payload. Fatal.
	ErrDecodeFailed = errors.New("feed decode failed")
)

// Source identifies how a league publishes its schedule.
type Source string

const (
	SourceICal Source = "ical"
	SourceWeb  Source = "web"
)

// Event is the neutral event shape handed to the schedule parser: the
// free-text description, the start timestamp already normalized to local
// time, and the raw location string.
type Event struct {
	Description string
	Start       time.Time
	Location    string
}

// Client fetches league schedule feeds.
type Client struct {
	httpClient *http.Client
	local      *time.Location
}

// New creates a Client that normalizes event times into local.
func New(local *time.Location) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: Timeout},
		local:      local,
	}
}
