package scanner

import "strings"

// IsLooselyScoped reports whether a cookie's Domain attribute scopes the
// cookie more broadly than the host that set it. A loosely scoped cookie is
// transmitted to every host under the declared domain, so a cookie set by
// app.example.com with Domain=example.com is also sent to any sibling of
// app.example.com.
//
// The comparison is case-insensitive and works on dot-separated labels.
// A cookie is loosely scoped when its domain is a right-aligned suffix of
// the host with strictly fewer labels. Cookies whose last two labels do not
// match the host's at all are flagged as well; the check deliberately errs
// on the side of reporting a cookie scoped to an unrelated domain rather
// than staying quiet about it.
//
// An empty cookieDomain is never loose: without an explicit Domain attribute
// the cookie is scoped to the exact issuing host.
func IsLooselyScoped(cookieDomain, host string) bool {
	if cookieDomain == "" {
		return false
	}

	cookieLabels := SplitDomainLabels(cookieDomain)
	hostLabels := SplitDomainLabels(host)

	if !SameRegistrableDomain(cookieLabels, hostLabels) {
		return true
	}

	// The Watcher check this is derived from also compared the literal
	// cookie domain and host strings when the domain had no leading dot,
	// at least two labels, and a different registrable domain. That branch
	// is unreachable: the different-domain case has already returned above.
	// Omitted here.

	if len(cookieLabels) != 2 {
		// Normalize a leading-dot domain (".example.com") to the same
		// label form as "example.com".
		cookieLabels = SplitDomainLabels(cookieDomain[1:])
	}

	// A loosely scoped domain must be a proper superdomain: strictly fewer
	// labels than the host.
	if len(cookieLabels) == 0 || len(cookieLabels) >= len(hostLabels) {
		return false
	}

	// Compare right-to-left, TLD first.
	for i := 1; i <= len(cookieLabels); i++ {
		if !strings.EqualFold(cookieLabels[len(cookieLabels)-i], hostLabels[len(hostLabels)-i]) {
			return false
		}
	}

	return true
}

// SameRegistrableDomain reports whether two label sequences share the same
// registrable domain, approximated as the last two labels matching
// case-insensitively. It does not consult a public-suffix list, so
// multi-part suffixes such as co.uk are compared like any other labels.
//
// Degenerate inputs (an empty sequence, or a leading "null" label from a
// placeholder host) are treated as matching rather than flagged.
func SameRegistrableDomain(cookieLabels, hostLabels []string) bool {
	if len(cookieLabels) == 0 || len(hostLabels) == 0 ||
		strings.EqualFold(cookieLabels[0], "null") ||
		strings.EqualFold(hostLabels[0], "null") {
		return true
	}

	if !strings.EqualFold(cookieLabels[len(cookieLabels)-1], hostLabels[len(hostLabels)-1]) {
		return false
	}

	if len(cookieLabels) < 2 || len(hostLabels) < 2 ||
		!strings.EqualFold(cookieLabels[len(cookieLabels)-2], hostLabels[len(hostLabels)-2]) {
		return false
	}

	return true
}

// SplitDomainLabels splits a domain or host name into its dot-separated
// labels, leftmost label first. Trailing empty labels are dropped, so ""
// and "." both yield nil, while ".example.com" keeps its leading empty
// label. Callers index into the result, so the empty-input case must come
// back as a zero-length slice, not a single empty string.
func SplitDomainLabels(s string) []string {
	labels := strings.Split(s, ".")
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	if len(labels) == 0 {
		return nil
	}
	return labels
}
