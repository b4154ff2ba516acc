package calendarexport

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// icsProdID identifies the generator in exported files.
const icsProdID = "-//SanBud//Booking System//EN"

// icsMIMEType is the Content-Type for .ics downloads.
const icsMIMEType = "text/calendar; charset=utf-8"

// maxLineOctets is the RFC 5545 content line limit before folding.
const maxLineOctets = 75

// MIMEType returns the Content-Type for serving ICS payloads.
func MIMEType() string {
	return icsMIMEType
}

// ICS renders the event as an iCalendar (RFC 5545) text block.
// Output is deterministic: the same event always yields byte-identical
// text, so DTSTAMP is derived from the event start rather than the clock
// and the UID is derived from the start instant.
func (e Event) ICS() string {
	start := formatCompactUTC(e.Start)
	end := formatCompactUTC(e.End)
	uid := fmt.Sprintf("sanbud-%s@sanbud.pl", start)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + start,
		"DTSTART:" + start,
		"DTEND:" + end,
		"SUMMARY:" + escapeICSText(e.Title),
		"DESCRIPTION:" + escapeICSText(e.Description),
		"LOCATION:" + escapeICSText(e.Location),
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
	}

	if e.OrganizerEmail != "" {
		lines = append(lines,
			fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", e.OrganizerName, e.OrganizerEmail))
	}

	lines = append(lines,
		"BEGIN:VALARM",
		"TRIGGER:-PT1H",
		"ACTION:DISPLAY",
		"DESCRIPTION:"+escapeICSText("Przypomnienie: Wizyta hydraulika za 1 godzinę"),
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	var b strings.Builder
	for _, line := range lines {
		writeFolded(&b, line)
	}
	return b.String()
}

// escapeICSText escapes TEXT values per RFC 5545 §3.3.11: backslash,
// semicolon and comma are backslash-escaped, newlines become literal \n.
// Calendar apps corrupt imported events when this is skipped.
func escapeICSText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// writeFolded writes a content line folded at 75 octets with CRLF + space
// continuations, never splitting inside a UTF-8 sequence. The leading
// space counts toward the 75-octet limit (RFC 5545 §3.1), so continuation
// segments carry one octet less of content.
func writeFolded(b *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxLineOctets - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}
