package boarddocs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Meeting struct {
	ID          string `json:"meeting_id"`
	CommitteeID string `json:"committee_id"`
	NumberDate  string `json:"numberdate"`
	Name        string `json:"name"`
}

// DateRange filters meetings by their sortable YYYYMMDD date. Either
// side may be left empty to keep the range open on that end.
type DateRange struct {
	From string
	To   string
}

// contains reports whether an 8-digit date string falls inside the
// range, bounds inclusive. A nil or empty range keeps everything and
// never inspects the date.
func (r *DateRange) contains(numberdate string) (bool, error) {
	if r == nil || (r.From == "" && r.To == "") {
		return true, nil
	}
	date, err := strconv.Atoi(numberdate)
	if err != nil {
		return false, fmt.Errorf("malformed meeting date %q: %w", numberdate, err)
	}
	if r.From != "" {
		from, err := strconv.Atoi(r.From)
		if err != nil {
			return false, fmt.Errorf("malformed date filter %q: %w", r.From, err)
		}
		if date < from {
			return false, nil
		}
	}
	if r.To != "" {
		to, err := strconv.Atoi(r.To)
		if err != nil {
			return false, fmt.Errorf("malformed date filter %q: %w", r.To, err)
		}
		if date > to {
			return false, nil
		}
	}
	return true, nil
}

// Meetings fetches the list of meetings published for one committee,
// skipping feed entries without an id. Output keeps the source order
// after filtering.
func (c *Client) Meetings(ctx context.Context, committeeID string, dates *DateRange) ([]Meeting, error) {
	ctx, span := tracer.Start(ctx, "client:Meetings")
	defer span.End()

	span.SetAttributes(attribute.String("committee_id", committeeID))

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"current_committee_id": committeeID,
		}).
		Post("/BD-GetMeetingsList?open")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch meeting list")
		return nil, err
	}

	var feed []struct {
		Unique     string `json:"unique"`
		NumberDate string `json:"numberdate"`
		Name       string `json:"name"`
	}
	err = json.Unmarshal(res.Body(), &feed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse meeting list json")
		return nil, fmt.Errorf("meeting list for committee %s: %w", committeeID, err)
	}

	var meetings []Meeting
	for _, entry := range feed {
		if entry.Unique == "" {
			continue
		}
		keep, err := dates.contains(entry.NumberDate)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "bad meeting date")
			return nil, err
		}
		if !keep {
			continue
		}
		meetings = append(meetings, Meeting{
			ID:          entry.Unique,
			CommitteeID: committeeID,
			NumberDate:  entry.NumberDate,
			Name:        entry.Name,
		})
	}

	return meetings, nil
}
