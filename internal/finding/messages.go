package finding

import "fmt"

// DefaultLocale is the catalog every other locale falls back to.
const DefaultLocale = "en"

// Message keys for the loosely-scoped-cookie rule.
const (
	KeyName            = "cookielooselyscoped.name"
	KeyDescription     = "cookielooselyscoped.desc"
	KeySolution        = "cookielooselyscoped.soln"
	KeyReference       = "cookielooselyscoped.refs"
	KeyExtraInfo       = "cookielooselyscoped.extrainfo"
	KeyExtraInfoCookie = "cookielooselyscoped.extrainfo.cookie"
)

var catalogs = map[string]map[string]string{
	"en": {
		KeyName: "Loosely Scoped Cookie",
		KeyDescription: "Cookies can be scoped by domain or path. This check is only concerned " +
			"with domain scope. The domain scope applied to a cookie determines which domains " +
			"can access it. For example, a cookie can be scoped strictly to a subdomain such as " +
			"www.nottrusted.com, or loosely scoped to a parent domain such as nottrusted.com. " +
			"In the latter case, any subdomain of nottrusted.com can access the cookie. Loosely " +
			"scoped cookies are common in mega-applications, and in shared-hosting situations " +
			"they can be disclosed to or tampered with by unrelated applications on sibling hosts.",
		KeySolution: "Scope cookies to the host that sets them, omitting the Domain attribute " +
			"unless a broader scope is genuinely required, and never scope them to a parent " +
			"domain shared with untrusted hosts.",
		KeyReference:       "https://owasp.org/www-project-web-security-testing-guide/v42/4-Web_Application_Security_Testing/06-Session_Management_Testing/02-Testing_for_Cookies_Attributes",
		KeyExtraInfo:       "The origin domain used for comparison was: %s\nLoosely scoped cookies:\n%s",
		KeyExtraInfoCookie: "%s\n",
	},
	// Partial catalogs fall back to English per key.
	"vi": {
		KeyName: "Cookie có phạm vi lỏng lẻo",
	},
}

// Catalog resolves rule messages for one locale, falling back to the
// default locale for keys the locale does not translate.
type Catalog struct {
	locale string
}

// ForLocale returns the catalog for locale; unknown locales resolve
// entirely from the default catalog.
func ForLocale(locale string) *Catalog {
	if _, ok := catalogs[locale]; !ok {
		locale = DefaultLocale
	}
	return &Catalog{locale: locale}
}

// Get returns the message for key, or the key itself when no catalog
// defines it. Lookups never fail.
func (c *Catalog) Get(key string) string {
	if msg, ok := catalogs[c.locale][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Getf formats the message for key with args.
func (c *Catalog) Getf(key string, args ...any) string {
	return fmt.Sprintf(c.Get(key), args...)
}

// Locales lists the locales the catalog knows about.
func Locales() []string {
	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		locales = append(locales, locale)
	}
	return locales
}
