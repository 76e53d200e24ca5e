// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fetch retrieves the remote inputs of a conversion: the rule
// feed and, optionally, a public suffix list. Each retrieval is a single
// request with a timeout and a size limit; there is no retry or caching.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Kind identifies what is being fetched. It selects the default size
// limit and labels errors.
type Kind int

const (
	// KindFeed is the base64 rule feed.
	KindFeed Kind = iota

	// KindSuffixList is a public_suffix_list.dat file.
	KindSuffixList
)

// String returns the stage label used in error messages.
func (k Kind) String() string {
	switch k {
	case KindFeed:
		return "feed"
	case KindSuffixList:
		return "suffix list"
	default:
		return "resource"
	}
}

func (k Kind) defaultMaxBytes() int64 {
	switch k {
	case KindFeed:
		return 16 << 20
	case KindSuffixList:
		return 8 << 20
	default:
		return 4 << 20
	}
}

// Default configuration values.
const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 5
	userAgent           = "gfwlist-smartdns"
)

// Sentinel errors, reachable through [Error.Unwrap].
var (
	ErrUnsupportedScheme = errors.New("fetch: only http, https and file locations are supported")
	ErrTooManyRedirects  = errors.New("fetch: too many redirects")
	ErrBadStatus         = errors.New("fetch: unexpected HTTP status")
	ErrTooLarge          = errors.New("fetch: response exceeds size limit")
	ErrTimeout           = errors.New("fetch: timed out")
)

// Options tunes a single retrieval. Zero values select the defaults.
type Options struct {
	Timeout      time.Duration // default 30s
	MaxBytes     int64         // default per kind
	MaxRedirects int           // default 5

	// Client overrides the HTTP client. Its Timeout and CheckRedirect
	// are used as-is.
	Client *http.Client
}

// Error describes a failed retrieval.
type Error struct {
	Kind     Kind
	Location string
	Status   int // HTTP status, 0 when no response was received
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s %s: status %d: %v", e.Kind, e.Location, e.Status, e.Cause)
	}
	return fmt.Sprintf("fetch %s %s: %v", e.Kind, e.Location, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Get retrieves location, which is an http(s) URL, a file:// URL or a
// local path, and returns its body.
func Get(ctx context.Context, kind Kind, location string) ([]byte, error) {
	return GetWithOptions(ctx, kind, location, Options{})
}

// GetWithOptions is [Get] with explicit options.
func GetWithOptions(ctx context.Context, kind Kind, location string, opt Options) ([]byte, error) {
	maxBytes := opt.MaxBytes
	if maxBytes <= 0 {
		maxBytes = kind.defaultMaxBytes()
	}

	fail := func(status int, cause error) ([]byte, error) {
		return nil, &Error{Kind: kind, Location: location, Status: status, Cause: cause}
	}

	u, err := url.Parse(location)
	if err != nil {
		return fail(0, errors.Join(ErrUnsupportedScheme, err))
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "file":
		return readFile(kind, location, u.Path, maxBytes)
	case "":
		return readFile(kind, location, location, maxBytes)
	default:
		return fail(0, ErrUnsupportedScheme)
	}

	client := opt.Client
	if client == nil {
		client = newClient(opt)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fail(0, fmt.Errorf("%w: %v", ErrTimeout, err))
		}
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fail(resp.StatusCode, ErrBadStatus)
	}

	body, err := readLimited(resp.Body, maxBytes)
	if err != nil {
		if isTimeout(err) {
			return fail(resp.StatusCode, fmt.Errorf("%w: %v", ErrTimeout, err))
		}
		return fail(resp.StatusCode, err)
	}
	return body, nil
}

func newClient(opt Options) *http.Client {
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRedirects := opt.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = defaultMaxRedirects
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: http.DefaultTransport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return ErrTooManyRedirects
			}
			if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
				return ErrUnsupportedScheme
			}
			return nil
		},
	}
}

func readFile(kind Kind, location, path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: kind, Location: location, Cause: err}
	}
	defer f.Close()

	body, err := readLimited(f, maxBytes)
	if err != nil {
		return nil, &Error{Kind: kind, Location: location, Cause: err}
	}
	return body, nil
}

// readLimited reads at most maxBytes+1 to detect overflow deterministically.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w (>%d bytes)", ErrTooLarge, maxBytes)
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
