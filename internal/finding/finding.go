package finding

import (
	"strings"

	"github.com/khanhnv2901/cookiescope/internal/scanner"
)

// Identifiers preserved for compatibility with the upstream passive-scan
// rule this tool reimplements.
const (
	// PluginID is the stable rule identifier.
	PluginID = 90033
	// CWEID is CWE-565: Reliance on Cookies without Validation and Integrity.
	CWEID = 565
	// WASCID is WASC-15: Application Misconfiguration.
	WASCID = 15
)

// Risk classifies how severe a finding is.
type Risk int

const (
	RiskInfo Risk = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (r Risk) String() string {
	switch r {
	case RiskInfo:
		return "informational"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	}
	return "unknown"
}

// Confidence expresses how certain the rule is about a finding.
type Confidence int

const (
	ConfidenceFalsePositive Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceFalsePositive:
		return "false positive"
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	}
	return "unknown"
}

// AlertTags maps the rule's standard classification tags to references.
var AlertTags = map[string]string{
	"OWASP_2021_A08_INTEGRITY_FAIL": "https://owasp.org/Top10/A08_2021-Software_and_Data_Integrity_Failures/",
	"OWASP_2017_A06_SEC_MISCONFIG":  "https://owasp.org/www-project-top-ten/2017/A6_2017-Security_Misconfiguration.html",
	"WSTG-v42-SESS-02":              "https://owasp.org/www-project-web-security-testing-guide/v42/4-Web_Application_Security_Testing/06-Session_Management_Testing/02-Testing_for_Cookies_Attributes",
}

// Finding is one loosely-scoped-cookie report for a host: a single finding
// lists every flagged cookie from the response, matching the upstream rule,
// which raises one alert per response rather than one per cookie.
type Finding struct {
	PluginID    int                 `json:"plugin_id"`
	Name        string              `json:"name"`
	Host        string              `json:"host"`
	Risk        string              `json:"risk"`
	Confidence  string              `json:"confidence"`
	Description string              `json:"description"`
	OtherInfo   string              `json:"other_info"`
	Solution    string              `json:"solution"`
	Reference   string              `json:"reference"`
	CWEID       int                 `json:"cwe_id"`
	WASCID      int                 `json:"wasc_id"`
	Tags        map[string]string   `json:"tags"`
	Cookies     []scanner.SetCookie `json:"cookies"`
}

// New builds a finding for the given host and its flagged cookies, with all
// descriptive text drawn from the message catalog for the requested locale.
// A nil or empty cookie list still produces a well-formed finding; callers
// normally only construct one when at least one cookie was flagged.
func New(host string, cookies []scanner.SetCookie, locale string) Finding {
	catalog := ForLocale(locale)

	var sb strings.Builder
	for _, cookie := range cookies {
		line := cookie.Raw
		if line == "" {
			line = cookie.Name
		}
		sb.WriteString(catalog.Getf(KeyExtraInfoCookie, line))
	}

	return Finding{
		PluginID:    PluginID,
		Name:        catalog.Get(KeyName),
		Host:        host,
		Risk:        RiskInfo.String(),
		Confidence:  ConfidenceLow.String(),
		Description: catalog.Get(KeyDescription),
		OtherInfo:   catalog.Getf(KeyExtraInfo, host, sb.String()),
		Solution:    catalog.Get(KeySolution),
		Reference:   catalog.Get(KeyReference),
		CWEID:       CWEID,
		WASCID:      WASCID,
		Tags:        AlertTags,
		Cookies:     cookies,
	}
}

// Example returns the finding this rule produces for its canonical example:
// a cookie scoped to example.com set by subdomain.example.com.
func Example() Finding {
	return New("subdomain.example.com", []scanner.SetCookie{{
		Name:   "name",
		Value:  "value",
		Domain: "example.com",
		Raw:    "name=value; domain=example.com",
	}}, DefaultLocale)
}
