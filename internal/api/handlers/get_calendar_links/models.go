package get_calendar_links

// CalendarLinksResponse carries the "add to calendar" deep-links for one
// appointment, plus the provider preselected from the user agent.
type CalendarLinksResponse struct {
	Google    string `json:"google"`
	Outlook   string `json:"outlook"`
	Office365 string `json:"office365"`
	ICS       string `json:"ics"`      // download path for the .ics file
	Filename  string `json:"filename"` // suggested .ics filename
	Preferred string `json:"preferred"`
}
