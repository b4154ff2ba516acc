package calendarexport

import "strings"

// Provider identifies a calendar product the user can add the event to.
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderApple     Provider = "apple"
	ProviderOutlook   Provider = "outlook"
	ProviderOffice365 Provider = "office365"
)

// DetectPreferred picks the default "quick add" calendar from a user-agent
// string. The caller passes the user agent in explicitly, so the choice is
// testable without a browser environment. Detection is best-effort and
// falls back to Google when inconclusive.
func DetectPreferred(userAgent string) Provider {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "iphone"),
		strings.Contains(ua, "ipad"),
		strings.Contains(ua, "ipod"):
		return ProviderApple
	case strings.Contains(ua, "android"):
		return ProviderGoogle
	case strings.Contains(ua, "windows"):
		return ProviderOutlook
	case strings.Contains(ua, "macintosh"),
		strings.Contains(ua, "mac os x"):
		return ProviderApple
	default:
		return ProviderGoogle
	}
}
