package calendarexport

import (
	"net/url"
	"time"
)

const (
	googleCalendarBase = "https://calendar.google.com/calendar/render"
	outlookComposeBase = "https://outlook.live.com/calendar/0/deeplink/compose"
	officeComposeBase  = "https://outlook.office.com/calendar/0/deeplink/compose"
)

// compactUTCLayout is the basic ISO form Google expects: YYYYMMDDTHHMMSSZ.
const compactUTCLayout = "20060102T150405Z"

func formatCompactUTC(t time.Time) string {
	return t.UTC().Format(compactUTCLayout)
}

// GoogleURL returns a Google Calendar "add event" deep-link.
func (e Event) GoogleURL() string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", formatCompactUTC(e.Start)+"/"+formatCompactUTC(e.End))
	params.Set("details", e.Description)
	params.Set("location", e.Location)

	return googleCalendarBase + "?" + params.Encode()
}

// OutlookURL returns an Outlook.com compose deep-link.
func (e Event) OutlookURL() string {
	return e.composeURL(outlookComposeBase)
}

// Office365URL returns an Office 365 compose deep-link.
func (e Event) Office365URL() string {
	return e.composeURL(officeComposeBase)
}

// composeURL builds the shared Outlook/Office365 query string.
// Both providers take the same parameters and differ only in host.
func (e Event) composeURL(base string) string {
	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("subject", e.Title)
	params.Set("body", e.Description)
	params.Set("location", e.Location)
	params.Set("startdt", e.Start.UTC().Format(time.RFC3339))
	params.Set("enddt", e.End.UTC().Format(time.RFC3339))

	return base + "?" + params.Encode()
}
