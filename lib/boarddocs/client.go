package boarddocs

import (
	"boarddocs-backend/lib/telemetry"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/boarddocs")

const defaultHost = "https://go.boarddocs.com"

// Client scrapes one BoardDocs site. A site is the deployment-specific
// path segment identifying an organization's instance of the platform,
// ex: "vsba/arlington" for Arlington Public Schools, VA.
type Client struct {
	Site string
	Http *resty.Client
}

type ClientOptions struct {
	Site string
	// overrides the go.boarddocs.com host, used by tests and mirrors
	Host string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.Site == "" {
		return nil, fmt.Errorf("boarddocs: site must not be empty")
	}
	host := opts.Host
	if host == "" {
		host = defaultHost
	}

	client := resty.New()
	client.SetBaseURL(fmt.Sprintf("%s/%s/Board.nsf", host, opts.Site))
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "boarddocs/http")

	c := &Client{
		Site: opts.Site,
		Http: client,
	}
	return c, nil
}
