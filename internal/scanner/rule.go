package scanner

import "net/http"

// LooselyScopedCookieRule flags cookies whose Domain attribute scopes them
// beyond the host that sent the response. The rule holds no state and is
// safe to share across concurrent scans.
type LooselyScopedCookieRule struct{}

func (LooselyScopedCookieRule) Name() string {
	return "loosely-scoped-cookie"
}

// Inspect returns the response cookies that are loosely scoped relative to
// host, skipping names on the ignore list.
func (r LooselyScopedCookieRule) Inspect(resp *http.Response, host string, ignore IgnoreList) []SetCookie {
	return r.flag(ResponseCookies(resp), host, ignore)
}

func (LooselyScopedCookieRule) flag(cookies []SetCookie, host string, ignore IgnoreList) []SetCookie {
	var flagged []SetCookie
	for _, cookie := range cookies {
		if ignore.Contains(cookie.Name) {
			continue
		}
		if IsLooselyScoped(cookie.Domain, host) {
			flagged = append(flagged, cookie)
		}
	}
	return flagged
}
