package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/lcmhl-games/internal/game"
)

// Fetch retrieves the feed at url and decodes it with the given source
// kind. The fetch is a single atomic call: any failure surfaces as an
// error with no partial results.
func (c *Client) Fetch(ctx context.Context, url string, source Source) ([]Event, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	switch source {
	case SourceWeb:
		return c.parseWebpage(body)
	default:
		return c.parseCalendar(body)
	}
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetchFailed, resp.StatusCode)
	}
	return resp.Body, nil
}

// parseCalendar decodes an iCalendar document. Start timestamps are
// normalized from the feed's zone to local time; events without a start
// are not schedulable and are dropped.
func (c *Client) parseCalendar(r io.Reader) ([]Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			continue
		}
		events = append(events, Event{
			Description: unescapeText(propValue(ve, ics.ComponentPropertyDescription)),
			Start:       start.In(c.local),
			Location:    unescapeText(propValue(ve, ics.ComponentPropertyLocation)),
		})
	}
	return events, nil
}

func propValue(ve *ics.VEvent, name ics.ComponentProperty) string {
	p := ve.GetProperty(name)
	if p == nil {
		return ""
	}
	return p.Value
}

// unescapeText reverses RFC 5545 TEXT escaping in property values.
func unescapeText(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`).Replace(s)
}

// BuildCalendar renders a schedule back into an iCalendar document so a
// persisted snapshot can be re-published. Each game becomes a 90 minute
// event keyed by its stable identifier.
func BuildCalendar(sched *game.Schedule, local *time.Location) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//LCMHL Games//lcmhl-games//EN")

	now := time.Now().UTC()
	for _, g := range sched.Games {
		start, err := g.StartTime(local)
		if err != nil {
			return "", fmt.Errorf("game %s: %w", g.Key, err)
		}
		ev := cal.AddEvent(g.Key + "@lcmhl")
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(90 * time.Minute))
		ev.SetSummary(fmt.Sprintf("%s @ %s", g.AwayTeam, g.HomeTeam))
		ev.SetLocation(g.Venue)
		ev.SetDescription(g.Line())
	}
	return cal.Serialize(), nil
}
