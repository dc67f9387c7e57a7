package scanner

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// drainLimitBytes caps how much of a response body we read before closing.
const drainLimitBytes = 4096

// HTTPScanner fetches a target over HTTP/HTTPS and applies the
// loosely-scoped-cookie rule to the response.
type HTTPScanner struct {
	Timeout time.Duration
	Ignore  IgnoreList

	rule LooselyScopedCookieRule
}

func (h *HTTPScanner) Name() string {
	return "scan cookies"
}

// Scan fetches the target with a single GET and inspects its Set-Cookie
// headers. HEAD is no use here: many servers omit Set-Cookie on HEAD
// responses, so we always issue a real GET and discard the body.
func (h *HTTPScanner) Scan(ctx context.Context, target string) ScanResult {
	result := ScanResult{
		Target:    target,
		CheckedAt: time.Now().UTC(),
	}

	info := ParseTarget(target)
	result.Host = info.Host

	client := &http.Client{
		Timeout: h.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
		},
		// Follow no redirects: the cookies of interest are the ones this
		// exact host sets, not whatever the redirect chain ends on.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.FullURL, nil)
	if err != nil {
		result.Status = "error"
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimitBytes))

	result.HTTPStatus = resp.StatusCode
	result.Status = "ok"

	cookies := ResponseCookies(resp)
	result.CookiesSeen = len(cookies)

	if flagged := h.rule.flag(cookies, result.Host, h.Ignore); len(flagged) > 0 {
		result.Flagged = flagged
		result.Notes = fmt.Sprintf("%d loosely scoped cookie(s)", len(flagged))
	}

	return result
}
