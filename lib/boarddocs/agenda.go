package boarddocs

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"

	"boarddocs-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

// FileAttachment is a file linked from an agenda, grouped under the
// agenda item it was listed with.
type FileAttachment struct {
	Item string `json:"item"`
	Name string `json:"name"`
	Href string `json:"href"`
}

type Agenda struct {
	MeetingID   string           `json:"meeting_id"`
	Name        string           `json:"name"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Items       []string         `json:"items"`
	FullText    string           `json:"full_text"`
	Files       []FileAttachment `json:"files"`
}

// item labels sit on the line following the literal "Subject" label
// inside an agendaorder block
var subjectRegex = regexp.MustCompile(`Subject\n(.+)`)

func subjectLine(text string) (string, error) {
	groups := subjectRegex.FindStringSubmatch(text)
	if len(groups) < 2 {
		return "", fmt.Errorf("could not find subject line")
	}
	return groups[1], nil
}

// plainText returns the selection's content only when it is a single
// text node, "" when it is absent or contains nested markup.
func plainText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	child := sel.Nodes[0].FirstChild
	if child == nil || child.Type != html.TextNode || child.NextSibling != nil {
		return ""
	}
	return child.Data
}

// Agenda fetches and extracts the detailed printable agenda of one
// meeting: header fields, the ordered agenda item labels, the page's
// full visible text and every linked file.
func (c *Client) Agenda(ctx context.Context, committeeID, meetingID string) (Agenda, error) {
	ctx, span := tracer.Start(ctx, "client:Agenda")
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
		Post("/PRINT-AgendaDetailed")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch agenda")
		return Agenda{}, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse agenda html")
		return Agenda{}, err
	}

	name := doc.Find("div.print-meeting-name")
	if name.Length() == 0 {
		err := fmt.Errorf("agenda for meeting %s: missing div.print-meeting-name", meetingID)
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing meeting name")
		return Agenda{}, err
	}
	date := doc.Find("div.print-meeting-date")
	if date.Length() == 0 {
		err := fmt.Errorf("agenda for meeting %s: missing div.print-meeting-date", meetingID)
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing meeting date")
		return Agenda{}, err
	}

	agenda := Agenda{
		MeetingID:   meetingID,
		Name:        name.First().Text(),
		Date:        date.First().Text(),
		Description: plainText(doc.Find("div.print-meeting-description")),
		FullText:    doc.Text(),
	}

	items, err := extractItems(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract agenda items")
		return Agenda{}, fmt.Errorf("agenda for meeting %s: %w", meetingID, err)
	}
	agenda.Items = items

	files, err := extractFiles(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract agenda files")
		return Agenda{}, fmt.Errorf("agenda for meeting %s: %w", meetingID, err)
	}
	agenda.Files = files

	return agenda, nil
}

// extractItems walks every div in document order. Top-level outline
// divs (aria-level="1") contribute their whole text once, first seen
// wins; agendaorder divs contribute their subject line every time.
// The asymmetry mirrors the upstream pages, where outline headings
// repeat but subject rows do not collapse.
func extractItems(doc *goquery.Document) ([]string, error) {
	var items []string
	var scanErr error

	doc.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if level, ok := div.Attr("aria-level"); ok {
			if level == "1" {
				text := div.Text()
				if !slices.Contains(items, text) {
					items = append(items, text)
				}
			}
			return true
		}
		if div.HasClass("agendaorder") {
			item, err := subjectLine(div.Text())
			if err != nil {
				scanErr = fmt.Errorf("agendaorder block: %w", err)
				return false
			}
			items = append(items, item)
		}
		return true
	})

	return items, scanErr
}

var legacyContentRegex = regexp.MustCompile(`legacy-content`)

// extractFiles runs two passes appending to one list: public-file
// blocks with a link child, then legacy-content links. Both take
// their item label from the subject line of the nearest enclosing
// agendaorder div; a file outside any agendaorder div is an error.
func extractFiles(doc *goquery.Document) ([]FileAttachment, error) {
	var files []FileAttachment
	var scanErr error

	doc.Find("div.public-file").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		link := div.Find("a").First()
		if link.Length() == 0 {
			return true
		}
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		item, err := subjectLine(div.ParentsFiltered("div.agendaorder").First().Text())
		if err != nil {
			scanErr = fmt.Errorf("public file %q: %w", href, err)
			return false
		}
		files = append(files, FileAttachment{
			Item: item,
			Name: htmlutil.CleanText(link.Text()),
			Href: href,
		})
		return true
	})
	if scanErr != nil {
		return nil, scanErr
	}

	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !legacyContentRegex.MatchString(href) {
			return true
		}
		item, err := subjectLine(a.ParentsFiltered("div.agendaorder").First().Text())
		if err != nil {
			scanErr = fmt.Errorf("legacy content file %q: %w", href, err)
			return false
		}
		name := ""
		if child := a.Children().First(); child.Length() > 0 {
			name = child.AttrOr("alt", "")
		}
		files = append(files, FileAttachment{
			Item: item,
			Name: name,
			Href: href,
		})
		return true
	})
	if scanErr != nil {
		return nil, scanErr
	}

	return files, nil
}
