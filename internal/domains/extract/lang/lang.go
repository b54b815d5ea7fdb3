package lang

import "strings"

const (
	Hungarian = "hu"
	German    = "de"
	English   = "en"

	// Pivot is the language all pattern extraction runs against.
	Pivot = English
)

var hungarianKeywords = []string{
	"foglalás", "foglalni", "terem", "rendezvény", "esküvő",
	"vendég", "fő", "időpont", "tisztelt", "üdvözlettel", "szeretnénk",
}

var germanKeywords = []string{
	"buchung", "buchen", "veranstaltung", "hochzeit", "personen",
	"gäste", "termin", "sehr geehrte", "freundlichen grüßen", "wir möchten",
}

// Detect picks a language by keyword presence. Hungarian is tested before
// German; English is the fallback when nothing matches.
func Detect(text string) string {
	lowered := strings.ToLower(text)

	for _, keyword := range hungarianKeywords {
		if strings.Contains(lowered, keyword) {
			return Hungarian
		}
	}

	for _, keyword := range germanKeywords {
		if strings.Contains(lowered, keyword) {
			return German
		}
	}

	return English
}
