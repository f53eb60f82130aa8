package app

// Event is a single waste collection entry of the calendar store
type Event struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// District holds the collection events of one district
type District struct {
	Events []Event `json:"events"`
}

// CalendarData is the JSON document written by the calendar service
type CalendarData struct {
	Year      int                  `json:"year"`
	Districts map[string]*District `json:"districts"`
	Metadata  map[string]string    `json:"metadata"`
}

// Summary returns the text the classifier matches against: the description if set,
// otherwise the display name of the waste type
func (e Event) Summary() string {
	if e.Description != "" {
		return e.Description
	}
	if name, ok := WasteTypes[e.Type]; ok {
		return name
	}
	return e.Type
}
