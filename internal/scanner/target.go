package scanner

import (
	"net/url"
	"strings"
)

// TargetInfo is a scan target broken into the pieces the scanner needs:
// the URL to fetch and the host name the cookie scope is compared against.
type TargetInfo struct {
	Original string
	Scheme   string
	Host     string
	Port     string
	FullURL  string
}

// ParseTarget normalizes a target string into a TargetInfo. Accepted forms
// include bare hosts ("example.com"), hosts with ports ("example.com:8080"),
// and full URLs. Targets without a scheme default to http.
func ParseTarget(target string) *TargetInfo {
	info := &TargetInfo{Original: target}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme == "" || strings.Contains(parsed.Scheme, ".") {
		// A bare host, or a host:port that url.Parse read as scheme:opaque.
		parsed, err = url.Parse("http://" + target)
		if err != nil {
			parsed = nil
		}
	}

	if parsed != nil {
		info.Scheme = parsed.Scheme
		info.Host = parsed.Hostname()
		info.Port = parsed.Port()
		info.FullURL = parsed.String()
	}

	if info.Host == "" {
		// Last resort for inputs url.Parse rejects entirely.
		host := strings.TrimPrefix(strings.TrimPrefix(target, "http://"), "https://")
		host = strings.Split(host, "/")[0]
		if h, p, ok := strings.Cut(host, ":"); ok {
			info.Host, info.Port = h, p
		} else {
			info.Host = host
		}
		info.FullURL = "http://" + host
	}

	return info
}
