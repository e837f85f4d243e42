package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"
)

// inputFetcher downloads puzzle input from the puzzle site.
type inputFetcher struct {
	baseURL    string
	userAgent  string
	sessionEnv string
	lookupEnv  func(string) (string, bool)
	http       *http.Client
}

// newInputFetcher creates a fetcher with the given configuration.
func newInputFetcher(cfg appConfig) *inputFetcher {
	f := &inputFetcher{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		sessionEnv: cfg.SessionEnv,
		lookupEnv:  os.LookupEnv,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
	if f.userAgent == "" {
		f.userAgent = defaultUA
	}
	if f.sessionEnv == "" {
		f.sessionEnv = defaultSessionEnv
	}
	return f
}

// inputURL returns the input endpoint for a puzzle day.
func (f *inputFetcher) inputURL(day, year int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, year, day)
}

// session returns the session cookie value from the environment.
func (f *inputFetcher) session() (string, error) {
	raw, ok := f.lookupEnv(f.sessionEnv)
	if !ok {
		return "", fmt.Errorf("%s: %w", f.sessionEnv, ErrMissingSession)
	}
	v := sessionValue(raw)
	if v == "" {
		return "", fmt.Errorf("%s: %w", f.sessionEnv, ErrMissingSession)
	}
	return v, nil
}

// fetch downloads the input for day/year and strips trailing whitespace.
// It makes exactly one request and never retries.
func (f *inputFetcher) fetch(ctx context.Context, day, year int) (string, error) {
	session, err := f.session()
	if err != nil {
		return "", err
	}

	reqURL := f.inputURL(day, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	resp, err := f.http.Do(req)
	if err != nil {
		return "", &NetworkError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	const maxInputSize = 10 * 1024 * 1024 // 10MB limit
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		return "", &NetworkError{URL: reqURL, Err: fmt.Errorf("read response: %w", err)}
	}
	return strings.TrimRightFunc(string(b), unicode.IsSpace), nil
}

// sessionValue accepts either a bare token or a Cookie header and returns the
// session token.
func sessionValue(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Cookie:"))
	if !strings.Contains(raw, "=") {
		return raw
	}
	for _, ck := range parseCookieHeader(raw) {
		if ck.Name == "session" {
			return ck.Value
		}
	}
	return ""
}

// parseCookieHeader parses a Cookie header string into individual cookies.
func parseCookieHeader(header string) []*http.Cookie {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ";")
	out := make([]*http.Cookie, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		name := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if name == "" {
			continue
		}
		out = append(out, &http.Cookie{Name: name, Value: val, Path: "/"})
	}
	return out
}

// isAuthError reports whether the site rejected the session credential.
func isAuthError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && (he.StatusCode == http.StatusBadRequest || he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden)
}
