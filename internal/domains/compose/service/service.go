package service

import (
	"context"
	"fmt"
	"strings"

	"salesdesk/infras/otel"
	"salesdesk/internal/domains/extract/lang"
	"salesdesk/shared/constant"
)

// Composer renders the localized reply for an availability result.
type Composer interface {
	Compose(ctx context.Context, isAvailable bool, roomNames []string, language string) string
}

type templatePair struct {
	available    string
	notAvailable string
}

// German is deliberately partial; its missing half falls back to English,
// as does any language with no templates at all.
var templates = map[string]templatePair{
	lang.English: {
		available:    "Good news! The following rooms are available for your event: %s. Please let us know which one you would like to book.",
		notAvailable: "Unfortunately, we have no rooms available matching your request. Please consider a different date or a smaller guest count.",
	},
	lang.Hungarian: {
		available:    "Örömmel értesítjük, hogy a következő termek elérhetők a rendezvényéhez: %s. Kérjük, jelezze, melyiket szeretné lefoglalni.",
		notAvailable: "Sajnálattal tájékoztatjuk, hogy a kérésének megfelelő terem jelenleg nem elérhető. Kérjük, válasszon másik időpontot vagy kisebb létszámot.",
	},
	lang.German: {
		available: "Gute Nachrichten! Folgende Räume sind für Ihre Veranstaltung verfügbar: %s. Bitte teilen Sie uns mit, welchen Sie buchen möchten.",
	},
}

type serviceImpl struct {
	otel otel.Otel
}

func New(ot otel.Otel) Composer {
	return &serviceImpl{otel: ot}
}

// Compose fills the per-language template with the comma-joined room list.
func (s *serviceImpl) Compose(ctx context.Context, isAvailable bool, roomNames []string, language string) string {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compose")
	defer scope.End()

	fallback := templates[lang.English]

	pair, ok := templates[language]
	if !ok {
		pair = fallback
	}

	if isAvailable {
		template := pair.available
		if template == constant.Empty {
			template = fallback.available
		}

		return fmt.Sprintf(template, strings.Join(roomNames, ", "))
	}

	template := pair.notAvailable
	if template == constant.Empty {
		template = fallback.notAvailable
	}

	return template
}
