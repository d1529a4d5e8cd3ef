package boarddocs

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// District fetches the meeting lists of every given committee, merges
// them keeping the first occurrence of each meeting id, then extracts
// one agenda per surviving meeting in order. Any agenda failure aborts
// the whole run; there is no skip-and-continue.
func (c *Client) District(ctx context.Context, committeeIDs []string, dates *DateRange) ([]Meeting, []Agenda, error) {
	ctx, span := tracer.Start(ctx, "client:District")
	defer span.End()

	span.SetAttributes(attribute.Int("committee_count", len(committeeIDs)))

	var meetings []Meeting
	seen := map[string]bool{}
	for _, committeeID := range committeeIDs {
		fetched, err := c.Meetings(ctx, committeeID, dates)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch committee meetings")
			return nil, nil, err
		}
		for _, m := range fetched {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			meetings = append(meetings, m)
		}
	}

	slog.DebugContext(ctx, "district meetings merged",
		"committees", len(committeeIDs),
		"meetings", len(meetings),
	)

	agendas := make([]Agenda, 0, len(meetings))
	for _, m := range meetings {
		agenda, err := c.Agenda(ctx, m.CommitteeID, m.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract agenda")
			return nil, nil, fmt.Errorf("district run: %w", err)
		}
		agendas = append(agendas, agenda)
	}

	return meetings, agendas, nil
}
