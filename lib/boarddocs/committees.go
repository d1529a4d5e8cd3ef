package boarddocs

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"boarddocs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/codes"
)

// Committee is a named sub-scope of meetings within a site, ex: a
// governing board or subcommittee.
type Committee struct {
	ID   string `json:"committee_id"`
	Name string `json:"name"`
}

// Committees lists the committees published on the site's board page.
// The ids come from the committee picker dropdown, the same place the
// site's UI sources them from.
func (c *Client) Committees(ctx context.Context) ([]Committee, error) {
	ctx, span := tracer.Start(ctx, "client:Committees")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/Public")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch board page")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse board page html")
		return nil, err
	}

	var committees []Committee
	doc.Find("#committee-select option").Each(func(_ int, opt *goquery.Selection) {
		id := opt.AttrOr("value", "")
		if id == "" {
			return
		}
		committees = append(committees, Committee{
			ID:   id,
			Name: htmlutil.CleanText(opt.Text()),
		})
	})

	return committees, nil
}

const minCommitteeSimilarity = 0.8

// MatchCommittee picks the committee whose display name is most
// similar to the given name, so callers can use the names shown in
// the site's dropdown instead of opaque ids.
func MatchCommittee(committees []Committee, name string) (Committee, error) {
	var best Committee
	bestSimilarity := float64(0)
	for _, committee := range committees {
		similarity := matchr.JaroWinkler(
			strings.ToLower(committee.Name),
			strings.ToLower(name),
			false,
		)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = committee
		}
	}
	if bestSimilarity < minCommitteeSimilarity {
		return Committee{}, fmt.Errorf("no committee matching %q", name)
	}
	return best, nil
}
