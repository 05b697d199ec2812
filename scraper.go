package ytcomments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/RavensCloud/ytcomments/internal/logging"
)

const (
	// searchPageSize is the search endpoint's page-size ceiling.
	searchPageSize = 50
	// commentPageSize is the page-size ceiling of both comment endpoints.
	commentPageSize = 100
)

// Delays are the fixed pauses inserted between API calls to stay inside the
// provider's quota. Zero disables a pause (tests only).
type Delays struct {
	Item        time.Duration // between search hits (each costs a statistics call)
	SearchPage  time.Duration
	CommentPage time.Duration
	ReplyPage   time.Duration
	Video       time.Duration // between per-video comment crawls
}

// DefaultDelays are used unless WithDelays overrides them.
var DefaultDelays = Delays{
	Item:        100 * time.Millisecond,
	SearchPage:  1 * time.Second,
	CommentPage: 1 * time.Second,
	ReplyPage:   500 * time.Millisecond,
	Video:       1 * time.Second,
}

// Scraper crawls the YouTube Data API for videos and their comments. It is
// meant to be used from a single goroutine; every call is blocking.
type Scraper struct {
	service   *youtube.Service
	transport *transport.APIKey
	proxy     string
	language  string

	delays   Delays
	log      zerolog.Logger
	progress io.Writer
}

// defaultTransport returns an http.Transport with connection pooling and
// keep-alive suitable for long paginated crawls.
func defaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
}

// New creates a Scraper authenticated with apiKey. Extra client options are
// applied after the defaults, so option.WithEndpoint or option.WithHTTPClient
// can redirect the service.
func New(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Scraper, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("new scraper: api key is required")
	}

	tr := &transport.APIKey{Key: apiKey, Transport: defaultTransport()}
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: tr,
	}

	all := append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	svc, err := youtube.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Scraper{
		service:   svc,
		transport: tr,
		language:  "id",
		delays:    DefaultDelays,
		log:       logging.New(os.Stderr, "info"),
		progress:  os.Stdout,
	}, nil
}

// WithDelays replaces the pauses between API calls.
func (s *Scraper) WithDelays(d Delays) *Scraper {
	s.delays = d
	return s
}

// WithLanguage sets the relevance language hint sent with searches.
// An empty string omits the hint.
func (s *Scraper) WithLanguage(lang string) *Scraper {
	s.language = lang
	return s
}

// WithLogger sets the logger used for per-call failures.
func (s *Scraper) WithLogger(l zerolog.Logger) *Scraper {
	s.log = l
	return s
}

// WithProgress sets where human-readable progress lines are printed.
func (s *Scraper) WithProgress(w io.Writer) *Scraper {
	if w == nil {
		w = io.Discard
	}
	s.progress = w
	return s
}

// SetProxy routes API traffic through an HTTP/HTTPS or SOCKS5 proxy.
// The API key transport and connection pooling are preserved.
func (s *Scraper) SetProxy(proxyAddr string) error {
	if proxyAddr == "" {
		s.transport.Transport = defaultTransport()
		s.proxy = ""
		return nil
	}

	u, err := url.Parse(proxyAddr)
	if err != nil {
		return fmt.Errorf("parse proxy url: %w", err)
	}

	base := defaultTransport()

	switch u.Scheme {
	case "http", "https":
		base.Proxy = http.ProxyURL(u)
	case "socks5":
		var auth *proxy.Auth
		if u.User != nil {
			pass, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: pass}
		}
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return fmt.Errorf("socks5 proxy: %w", err)
		}
		dc, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return fmt.Errorf("socks5: context dialer not supported")
		}
		base.DialContext = dc.DialContext
	default:
		return fmt.Errorf("unsupported proxy scheme: %s", u.Scheme)
	}

	s.transport.Transport = base
	s.proxy = proxyAddr
	return nil
}

// pause sleeps for d unless ctx is done first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// progressf prints one progress line.
func (s *Scraper) progressf(format string, args ...any) {
	fmt.Fprintf(s.progress, format+"\n", args...)
}

// classifyError maps API errors onto the package sentinels, keeping the
// original error text.
func classifyError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusForbidden:
		for _, item := range gerr.Errors {
			switch item.Reason {
			case "quotaExceeded", "rateLimitExceeded", "dailyLimitExceeded":
				return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
			case "commentsDisabled":
				return fmt.Errorf("%w: %w", ErrCommentsDisabled, err)
			}
		}
	}
	return err
}
