package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"salesdesk/infras/otel/mocks"
	"salesdesk/internal/domains/compose/service"
	"salesdesk/internal/domains/extract/lang"
)

func TestComposerService_Compose(t *testing.T) {
	svc := service.New(mocks.NewOtel())
	ctx := context.Background()

	tests := []struct {
		name        string
		isAvailable bool
		rooms       []string
		language    string
		want        string
	}{
		{
			name:        "english available joins rooms",
			isAvailable: true,
			rooms:       []string{"Fő terem", "Bálterem"},
			language:    lang.English,
			want:        "Good news! The following rooms are available for your event: Fő terem, Bálterem. Please let us know which one you would like to book.",
		},
		{
			name:        "english not available ignores rooms",
			isAvailable: false,
			rooms:       []string{"Fő terem"},
			language:    lang.English,
			want:        "Unfortunately, we have no rooms available matching your request. Please consider a different date or a smaller guest count.",
		},
		{
			name:        "hungarian available",
			isAvailable: true,
			rooms:       []string{"Bálterem"},
			language:    lang.Hungarian,
			want:        "Örömmel értesítjük, hogy a következő termek elérhetők a rendezvényéhez: Bálterem. Kérjük, jelezze, melyiket szeretné lefoglalni.",
		},
		{
			name:        "hungarian not available",
			isAvailable: false,
			language:    lang.Hungarian,
			want:        "Sajnálattal tájékoztatjuk, hogy a kérésének megfelelő terem jelenleg nem elérhető. Kérjük, válasszon másik időpontot vagy kisebb létszámot.",
		},
		{
			name:        "german available",
			isAvailable: true,
			rooms:       []string{"Fő terem"},
			language:    lang.German,
			want:        "Gute Nachrichten! Folgende Räume sind für Ihre Veranstaltung verfügbar: Fő terem. Bitte teilen Sie uns mit, welchen Sie buchen möchten.",
		},
		{
			name:        "german not available falls back to english",
			isAvailable: false,
			language:    lang.German,
			want:        "Unfortunately, we have no rooms available matching your request. Please consider a different date or a smaller guest count.",
		},
		{
			name:        "unknown language falls back to english",
			isAvailable: true,
			rooms:       []string{"Fő terem"},
			language:    "fr",
			want:        "Good news! The following rooms are available for your event: Fő terem. Please let us know which one you would like to book.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Compose(ctx, tt.isAvailable, tt.rooms, tt.language)

			assert.Equal(t, tt.want, got)
		})
	}
}
