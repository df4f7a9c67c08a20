// Package isdayoff is a client for the isdayoff.ru production calendar API.
// Every day is reported as one digit: 0 workday, 1 day off, 2 shortened
// pre-holiday day, 3 unknown.
package isdayoff

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	// Version is reported in the User-Agent header
	Version = "0.1.0"

	DefaultBaseURL = "https://isdayoff.ru/api"
	DefaultContact = "github.com/username/isdayoff"

	libraryName = "isdayoff-go"
)

// Options configures a Client. The zero value talks to isdayoff.ru
// over a plain http.Client using the local wall clock.
type Options struct {
	BaseURL    string
	Contact    string // appended to User-Agent, e.g. an email or repo URL
	Country    string // cc parameter: ru, by, kz, uz, tr...
	PreHoliday bool   // pre=1, report shortened days as ShortDay
	SixDayWeek bool   // sd=1, six-day working week
	Transport  Transport
	Clock      Clock
	Logger     *zap.Logger
}

// Client queries the isdayoff.ru production calendar.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	opts      Options
	transport Transport
	clock     Clock
	logger    *zap.Logger
}

// NewClient creates a new Client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Contact == "" {
		opts.Contact = DefaultContact
	}
	if opts.Transport == nil {
		opts.Transport = NewHTTPTransport(nil)
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Client{
		baseURL:   opts.BaseURL,
		userAgent: libraryName + "/" + Version + " (" + opts.Contact + ")",
		opts:      opts,
		transport: opts.Transport,
		clock:     opts.Clock,
		logger:    opts.Logger,
	}
}

// UserAgent returns the User-Agent header sent with every request
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Today returns the status of the host's current local date
func (c *Client) Today(ctx context.Context) (DayStatus, error) {
	today := c.clock.Today()
	return c.Date(ctx, today.Year, today.Month, today.Day)
}

// Month returns one status per day of the month.
// A nil year or month defaults to the current one, independently.
func (c *Client) Month(ctx context.Context, year *int, month *time.Month) (StatusSequence, error) {
	if year == nil || month == nil {
		today := c.clock.Today()
		if year == nil {
			year = &today.Year
		}
		if month == nil {
			month = &today.Month
		}
	}

	return c.request(ctx, YearMonthDay{Year: *year, Month: month})
}

// Year returns one status per day of the year (365 or 366 entries)
func (c *Client) Year(ctx context.Context, year int) (StatusSequence, error) {
	return c.request(ctx, YearMonthDay{Year: year})
}

// Date returns the status of a single day
func (c *Client) Date(ctx context.Context, year int, month time.Month, day int) (DayStatus, error) {
	body, err := c.fetch(ctx, YearMonthDay{Year: year, Month: &month, Day: &day})
	if err != nil {
		return 0, err
	}
	return decodeSingle(body)
}

// Period returns statuses from start to end inclusive.
// The sequence length is whatever the service returns; it is not
// checked against the number of days in the range.
func (c *Client) Period(ctx context.Context, start, end Date) (StatusSequence, error) {
	return c.request(ctx, DateRange{Start: start, End: end})
}

func (c *Client) request(ctx context.Context, q Query) (StatusSequence, error) {
	body, err := c.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// fetch issues exactly one GET for q and returns the raw body
func (c *Client) fetch(ctx context.Context, q Query) (string, error) {
	url := buildURL(c.baseURL, q, c.opts)

	c.logger.Debug("Fetching from isdayoff.ru", zap.String("url", url))

	body, err := c.transport.Get(ctx, url, map[string]string{
		"User-Agent": c.userAgent,
	})
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return "", err
		}
		return "", &TransportError{URL: url, Err: err}
	}

	c.logger.Debug("Received response",
		zap.String("url", url),
		zap.Int("length", len(body)))

	return body, nil
}
