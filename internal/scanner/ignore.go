package scanner

import "strings"

// IgnoreList is a set of cookie names excluded from scoping analysis,
// typically third-party or framework cookies with known, accepted loose
// scoping. Lookup is by exact name.
type IgnoreList map[string]struct{}

// NewIgnoreList builds an IgnoreList from configured names. Blank entries
// are dropped, so a missing or empty configuration yields an empty list.
func NewIgnoreList(names []string) IgnoreList {
	list := make(IgnoreList, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			list[name] = struct{}{}
		}
	}
	return list
}

// Contains reports whether the named cookie should be skipped.
func (l IgnoreList) Contains(name string) bool {
	_, ok := l[name]
	return ok
}
