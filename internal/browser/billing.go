// Package browser drives a headless Chrome session through the GitHub web UI
// for the few organization settings the REST API does not expose.
package browser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://github.com"
	defaultTimeout = 2 * time.Minute

	loginField    = "#login_field"
	passwordField = "#password"
	submitButton  = `input[name="commit"]`
	otpField      = "#app_totp"

	storageSelector   = "div.Box-row:nth-child(1) > div:nth-child(1) > div:nth-child(1) > div:nth-child(2)"
	bandwidthSelector = "div.Box-row:nth-child(2) > div:nth-child(1) > div:nth-child(1) > div:nth-child(2)"

	// TimeLayout is the format of Usage.Time.
	TimeLayout = "2006-01-02 15:04"
)

// usagePattern matches lines such as "13,929.6 GB of 17,400 GB (29 data packs)".
var usagePattern = regexp.MustCompile(`^\D*(\S+)\D+(\S+)`)

// ErrUnparsableUsage is returned when a billing line does not have the
// "<used> of <purchased>" shape.
var ErrUnparsableUsage = errors.New("unparsable usage line")

// Credentials identify an organization owner on the web login form.
type Credentials struct {
	Login    string
	Password string
	OTP      string
}

// Usage is the Git LFS storage and bandwidth consumption of an organization.
type Usage struct {
	StorageUsed        float64 `json:"sp_used"`
	StoragePurchased   float64 `json:"sp_purchased"`
	BandwidthUsed      float64 `json:"bw_used"`
	BandwidthPurchased float64 `json:"bw_purchased"`
	Time               string  `json:"time"`
}

// BillingScraper reads LFS usage from an organization billing page.
type BillingScraper interface {
	Usage(ctx context.Context, org string, creds Credentials) (Usage, error)
}

type billingScraper struct {
	baseURL  string
	headless bool
	timeout  time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// Option customizes a BillingScraper.
type Option func(*billingScraper)

// WithHeadless toggles the visible browser window.
func WithHeadless(headless bool) Option {
	return func(s *billingScraper) { s.headless = headless }
}

// WithTimeout bounds the whole browser session.
func WithTimeout(d time.Duration) Option {
	return func(s *billingScraper) { s.timeout = d }
}

func NewBillingScraper(logger *zap.Logger, opts ...Option) BillingScraper {
	s := &billingScraper{
		baseURL:  defaultBaseURL,
		headless: true,
		timeout:  defaultTimeout,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *billingScraper) Usage(ctx context.Context, org string, creds Credentials) (Usage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.headless),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	billingURL := fmt.Sprintf("%s/organizations/%s/settings/billing", s.baseURL, org)
	s.logger.Info("logging in", zap.String("login", creds.Login), zap.String("url", billingURL))

	var storage, bandwidth string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(s.baseURL+"/login"),
		chromedp.WaitVisible(loginField, chromedp.ByQuery),
		chromedp.SendKeys(loginField, creds.Login, chromedp.ByQuery),
		chromedp.SendKeys(passwordField, creds.Password, chromedp.ByQuery),
		chromedp.Click(submitButton, chromedp.ByQuery),
		chromedp.WaitVisible(otpField, chromedp.ByQuery),
		chromedp.SendKeys(otpField, creds.OTP+"\n", chromedp.ByQuery),
		chromedp.WaitNotPresent(otpField, chromedp.ByQuery),
		chromedp.Navigate(billingURL),
		chromedp.WaitReady(storageSelector, chromedp.ByQuery),
		chromedp.Text(storageSelector, &storage, chromedp.ByQuery),
		chromedp.Text(bandwidthSelector, &bandwidth, chromedp.ByQuery),
	)
	if err != nil {
		return Usage{}, fmt.Errorf("reading billing page for %s: %w", org, err)
	}

	usage := Usage{Time: s.now().Format(TimeLayout)}
	if usage.StorageUsed, usage.StoragePurchased, err = ParseUsage(storage); err != nil {
		return Usage{}, fmt.Errorf("storage: %w", err)
	}
	if usage.BandwidthUsed, usage.BandwidthPurchased, err = ParseUsage(bandwidth); err != nil {
		return Usage{}, fmt.Errorf("bandwidth: %w", err)
	}
	return usage, nil
}

// ParseUsage extracts the used and purchased quantities from a billing line.
func ParseUsage(text string) (used, purchased float64, err error) {
	m := usagePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparsableUsage, text)
	}
	if used, err = parseQuantity(m[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparsableUsage, text)
	}
	if purchased, err = parseQuantity(m[2]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparsableUsage, text)
	}
	return used, purchased, nil
}

func parseQuantity(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
