package boarddocs

import (
	"bytes"
	"context"

	"boarddocs-backend/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

// Minutes returns the visible text of a meeting's embedded minutes.
// A meeting without embedded minutes yields an empty string; the site
// gives no signal distinguishing that from genuinely empty minutes.
func (c *Client) Minutes(ctx context.Context, committeeID, meetingID string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Minutes")
	defer span.End()

	span.SetAttributes(
		attribute.String("committee_id", committeeID),
		attribute.String("meeting_id", meetingID),
	)

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"id":                   meetingID,
			"current_committee_id": committeeID,
		}).
		Post("/BD-GetMinutes")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch minutes")
		return "", err
	}

	root, err := html.Parse(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse minutes html")
		return "", err
	}

	return htmlutil.GetText(root), nil
}
