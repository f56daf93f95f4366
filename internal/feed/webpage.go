package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// parseWebpage extracts events from a league portal schedule page. The
// portal renders one game per table row in the order
// description, date, time, rink.
func (c *Client) parseWebpage(r io.Reader) ([]Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	events := make([]Event, 0)
	doc.Find("table.schedule tr, table#schedule tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return // header or spacer row
		}

		description := strings.TrimSpace(cells.Eq(0).Text())
		dateText := strings.TrimSpace(cells.Eq(1).Text())
		timeText := strings.TrimSpace(cells.Eq(2).Text())
		location := strings.TrimSpace(cells.Eq(3).Text())
		if description == "" || dateText == "" {
			return
		}

		start, err := c.parseWebStart(dateText, timeText)
		if err != nil {
			return
		}

		events = append(events, Event{
			Description: description,
			Start:       start,
			Location:    location,
		})
	})
	return events, nil
}

// parseWebStart combines the portal's date and time cells into a local
// start timestamp. The portal has used a few date layouts over the years.
func (c *Client) parseWebStart(dateText, timeText string) (time.Time, error) {
	var day time.Time
	var err error
	for _, layout := range []string{"2006-01-02", "Jan 2, 2006", "January 2, 2006", "01/02/2006"} {
		day, err = time.Parse(layout, dateText)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", dateText, err)
	}

	clock, err := time.Parse("3:04 PM", strings.ToUpper(timeText))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", timeText, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, c.local), nil
}
