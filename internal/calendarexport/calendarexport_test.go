package calendarexport

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanbud-pl/booking-service/internal/domain"
	"github.com/sanbud-pl/booking-service/pkg/types"
)

var testCompany = CompanyInfo{
	Name:     "SanBud",
	Phone:    "+48 503 691 808",
	Email:    "sanbud.biuro@gmail.com",
	Location: "Mazowsze, Polska",
}

func testEvent(t *testing.T) Event {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	startTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	event, err := NewEvent(BookingDetails{
		Date:         time.Date(2025, 10, 14, 0, 0, 0, 0, loc),
		StartTime:    startTime,
		Service:      domain.ServiceWaterInstallations,
		CustomerName: "Jan Kowalski",
		Phone:        "+48123456789",
		Description:  "Cieknący kran w kuchni",
	}, testCompany, time.Hour, loc)
	require.NoError(t, err)

	return event
}

func TestNewEvent(t *testing.T) {
	event := testEvent(t)

	assert.Equal(t, "SanBud - Instalacje wodne", event.Title)
	assert.Equal(t, "Mazowsze, Polska", event.Location)
	assert.Equal(t, time.Hour, event.End.Sub(event.Start))
	assert.Contains(t, event.Description, "Klient: Jan Kowalski")
	assert.Contains(t, event.Description, "Telefon: +48123456789")
	assert.Contains(t, event.Description, "Kontakt: +48 503 691 808")
}

// The core correctness invariant: the start instant decoded from every
// export path must be identical.
func TestAllOutputsEncodeSameInstant(t *testing.T) {
	event := testEvent(t)
	want := event.Start.UTC()

	googleURL, err := url.Parse(event.GoogleURL())
	require.NoError(t, err)
	dates := googleURL.Query().Get("dates")
	require.NotEmpty(t, dates)
	googleStart, err := time.Parse("20060102T150405Z", strings.Split(dates, "/")[0])
	require.NoError(t, err)
	assert.True(t, googleStart.Equal(want), "google start mismatch")

	for name, raw := range map[string]string{
		"outlook":   event.OutlookURL(),
		"office365": event.Office365URL(),
	} {
		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		startdt, err := time.Parse(time.RFC3339, parsed.Query().Get("startdt"))
		require.NoError(t, err)
		assert.True(t, startdt.Equal(want), "%s start mismatch", name)
	}

	icsStart := parseICSEvent(t, event.ICS()).start
	assert.True(t, icsStart.Equal(want), "ics start mismatch")
}

func TestICSRoundTrip(t *testing.T) {
	event := testEvent(t)

	parsed := parseICSEvent(t, event.ICS())
	assert.Equal(t, event.Title, parsed.summary)
	assert.True(t, parsed.start.Equal(event.Start))
	assert.True(t, parsed.end.Equal(event.End))
	assert.Equal(t, event.Description, parsed.description)
	assert.Equal(t, event.Location, parsed.location)
}

func TestICSEscapesFreeText(t *testing.T) {
	loc := time.UTC
	startTime, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)

	event, err := NewEvent(BookingDetails{
		Date:         time.Date(2025, 11, 3, 0, 0, 0, 0, loc),
		StartTime:    startTime,
		Service:      domain.ServiceEmergency,
		CustomerName: "Kowalski; Jan",
		Phone:        "+48123456789",
		Description:  "Piętro 2, klatka B\nDomofon: 12",
	}, testCompany, time.Hour, loc)
	require.NoError(t, err)

	ics := event.ICS()
	assert.Contains(t, ics, "\\;")
	assert.Contains(t, ics, "\\,")
	assert.Contains(t, ics, "\\n")
	assert.NotContains(t, unfoldICS(ics), "Piętro 2, klatka B")

	// escaped text must survive the round-trip unchanged
	parsed := parseICSEvent(t, ics)
	assert.Equal(t, event.Description, parsed.description)
}

func TestICSIsDeterministic(t *testing.T) {
	event := testEvent(t)

	assert.Equal(t, event.ICS(), event.ICS())
	assert.Equal(t, event.GoogleURL(), event.GoogleURL())
	assert.Equal(t, event.OutlookURL(), event.OutlookURL())
	assert.Equal(t, event.Office365URL(), event.Office365URL())
}

func TestICSLineFolding(t *testing.T) {
	event := testEvent(t)
	// Long enough to need several continuation lines.
	event.Description = strings.Repeat("Wymiana pionu wodnego w kuchni i łazience. ", 8)

	ics := event.ICS()
	folded := false
	for _, line := range strings.Split(ics, "\r\n") {
		// Physical lines, the continuation space included, stay within
		// the 75-octet limit.
		assert.LessOrEqual(t, len(line), maxLineOctets,
			"line exceeds fold limit: %q", line)
		if strings.HasPrefix(line, " ") {
			folded = true
		}
	}
	assert.True(t, folded, "expected at least one folded continuation line")

	// Unfolding restores the original description text.
	unfolded := strings.ReplaceAll(ics, "\r\n ", "")
	assert.Contains(t, unfolded, escapeICSText(event.Description))
}

func TestFilename(t *testing.T) {
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	startTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	assert.Equal(t, "sanbud-2025-10-14-1000.ics", Filename(date, startTime))
}

func TestDetectPreferred(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      Provider
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", ProviderApple},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", ProviderApple},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", ProviderGoogle},
		{"windows", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", ProviderOutlook},
		{"mac", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)", ProviderApple},
		{"linux", "Mozilla/5.0 (X11; Linux x86_64)", ProviderGoogle},
		{"empty", "", ProviderGoogle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPreferred(tt.userAgent))
		})
	}
}

type parsedEvent struct {
	summary     string
	description string
	location    string
	start       time.Time
	end         time.Time
}

// parseICSEvent decodes the payload with a spec-compliant iCalendar parser
// and extracts the single VEVENT.
func parseICSEvent(t *testing.T, payload string) parsedEvent {
	t.Helper()

	cal, err := ical.NewDecoder(strings.NewReader(payload)).Decode()
	require.NoError(t, err)

	for _, child := range cal.Children {
		if child.Name != ical.CompEvent {
			continue
		}

		var out parsedEvent
		if prop := child.Props.Get(ical.PropSummary); prop != nil {
			text, err := prop.Text()
			require.NoError(t, err)
			out.summary = text
		}
		if prop := child.Props.Get(ical.PropDescription); prop != nil {
			text, err := prop.Text()
			require.NoError(t, err)
			out.description = text
		}
		if prop := child.Props.Get(ical.PropLocation); prop != nil {
			text, err := prop.Text()
			require.NoError(t, err)
			out.location = text
		}
		if prop := child.Props.Get(ical.PropDateTimeStart); prop != nil {
			ts, err := prop.DateTime(time.UTC)
			require.NoError(t, err)
			out.start = ts
		}
		if prop := child.Props.Get(ical.PropDateTimeEnd); prop != nil {
			ts, err := prop.DateTime(time.UTC)
			require.NoError(t, err)
			out.end = ts
		}
		return out
	}

	t.Fatal("no VEVENT found in payload")
	return parsedEvent{}
}

// unfoldICS reverses line folding so assertions can look at logical lines.
func unfoldICS(payload string) string {
	return strings.ReplaceAll(payload, "\r\n ", "")
}
