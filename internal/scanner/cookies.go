package scanner

import (
	"net/http"
)

// SetCookie is one cookie set by an HTTP response. Domain is the cookie's
// Domain attribute as the standard library parsed it; note that net/http
// strips a single leading dot, so ".example.com" arrives as "example.com".
// Raw preserves the original Set-Cookie header line for reporting.
type SetCookie struct {
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
	Domain string `json:"domain,omitempty"`
	Raw    string `json:"raw,omitempty"`
}

// ResponseCookies extracts the cookies a response sets, pairing each parsed
// cookie with its raw Set-Cookie header line.
func ResponseCookies(resp *http.Response) []SetCookie {
	if resp == nil {
		return nil
	}

	raw := resp.Header["Set-Cookie"]
	if len(raw) == 0 {
		return nil
	}

	cookies := make([]SetCookie, 0, len(raw))
	for i, cookie := range resp.Cookies() {
		sc := SetCookie{
			Name:   cookie.Name,
			Value:  cookie.Value,
			Domain: cookie.Domain,
		}
		if i < len(raw) {
			sc.Raw = raw[i]
		}
		cookies = append(cookies, sc)
	}
	return cookies
}
