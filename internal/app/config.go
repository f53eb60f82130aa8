package app

// Constants
const (
	DefaultCalendarFile = "calendar_data.json"
	BackupSuffix        = ".backup"
	TmpSuffix           = ".tmp"
	FilePermissions     = 0644

	// Date layout of the calendar store and the classify exports
	DateLayout = "2006-01-02"

	// ICS constants
	ICSProductID = "-//Winterberg//Abfallkalender//DE"
	ICSTimezone  = "Europe/Berlin"
)

// Districts list
var Districts = []string{
	"Winterberg",
	"Siedlinghausen",
	"Züschen",
	"Silbach",
	"Niedersfeld",
	"Langewiese",
	"Mollseifen",
	"Neuastenberg",
	"Hoheleye",
	"Grönebach",
	"Hildfeld",
	"Elkeringhausen",
	"Altastenberg",
	"Altenfeld",
}

// WasteTypes maps waste type keys of the calendar store to their German display names.
// The display names are what the classifier sees as event summary.
var WasteTypes = map[string]string{
	"restmuell":    "Restmüll",
	"biotonne":     "Biotonne",
	"papiertonne":  "Papiertonne",
	"gelber_sack":  "Gelber Sack",
	"sondermuell":  "Sondermüll",
	"gartenabfall": "Gartenabfall",
	"altkleider":   "Altkleider",
}
