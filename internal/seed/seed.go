// Package seed holds the demo catalog the store falls back to when no
// persisted catalog exists.
package seed

import (
	"fmt"
	"time"

	"acutia-backend/internal/models"
)

// PhotoPoolSize is the number of photos in the seed catalog.
const PhotoPoolSize = 48

var photographerNames = []string{"Ricardo Lemos", "Ana Beatriz", "Carlos Mendes", "Juliana Rocha"}

var tagSets = [][]string{
	{"torcida", "arquibancada"},
	{"familia", "torcida"},
	{"jogador", "campo"},
	{"torcida", "gol"},
	{"familia", "camarote"},
	{"jogador", "comemoração"},
	{"torcida", "festa"},
	{"familia", "selfie"},
}

var priceTiers = []int{990, 1490, 1990, 2490, 2990}

// Events returns the seed events. Callers own the returned slice.
func Events() []models.EventData {
	return []models.EventData{
		{
			ID:          "evt-1",
			Name:        "Gama x Rival FC — Campeonato Brasiliense",
			Date:        "2025-03-15",
			Location:    "Estádio Bezerrão, Gama-DF",
			Thumbnail:   "https://picsum.photos/seed/stadium1/800/500",
			Status:      models.EventStatusActive,
			Description: "Jogo decisivo do campeonato brasiliense com casa cheia.",
			PhotoCount:  1250,
		},
		{
			ID:          "evt-2",
			Name:        "Noite no Bezerrão — Show de Luzes",
			Date:        "2025-02-28",
			Location:    "Estádio Bezerrão, Gama-DF",
			Thumbnail:   "https://picsum.photos/seed/concert1/800/500",
			Status:      models.EventStatusEnded,
			Description: "Evento especial com show de luzes e música ao vivo.",
			PhotoCount:  850,
		},
		{
			ID:          "evt-3",
			Name:        "Final da Copa — Gama FC x Brasília FC",
			Date:        "2025-04-20",
			Location:    "Estádio Mané Garrincha, Brasília-DF",
			Thumbnail:   "https://picsum.photos/seed/finalcup/800/500",
			Status:      models.EventStatusActive,
			Description: "A grande final da copa local entre os dois maiores rivais.",
			PhotoCount:  3400,
		},
		{
			ID:          "evt-4",
			Name:        "Festival de Verão — Arena Capital",
			Date:        "2025-01-10",
			Location:    "Arena Capital, Brasília-DF",
			Thumbnail:   "https://picsum.photos/seed/festival1/800/500",
			Status:      models.EventStatusEnded,
			Description: "Festival de verão com atrações musicais e esportivas.",
			PhotoCount:  2100,
		},
		{
			ID:          "evt-5",
			Name:        "Clássico do Cerrado — Semifinal",
			Date:        "2025-05-05",
			Location:    "Estádio Serejão, Taguatinga-DF",
			Thumbnail:   "https://picsum.photos/seed/classic1/800/500",
			Status:      models.EventStatusActive,
			Description: "Semifinal emocionante do clássico regional.",
			PhotoCount:  1800,
		},
	}
}

// Photos returns the seed photo pool, spread evenly across the seed events.
// Callers own the returned slice.
func Photos() []models.Photo {
	events := Events()
	photos := make([]models.Photo, 0, PhotoPoolSize)
	for i := 0; i < PhotoPoolSize; i++ {
		event := events[i%len(events)]
		photos = append(photos, models.Photo{
			ID:               fmt.Sprintf("photo-%d", i+1),
			URL:              fmt.Sprintf("https://picsum.photos/seed/acutia%d/800/600", i+1),
			EventID:          event.ID,
			Tags:             append([]string(nil), tagSets[i%len(tagSets)]...),
			PriceCents:       priceTiers[i%len(priceTiers)],
			PhotographerName: photographerNames[i%len(photographerNames)],
			CreatedAt:        time.Date(2025, time.January, 1+i, 0, 0, 0, 0, time.UTC),
			Width:            800,
			Height:           600,
		})
	}
	return photos
}

// Photographers returns the seed photographers. Callers own the returned slice.
func Photographers() []models.Photographer {
	return []models.Photographer{
		{ID: "ph-1", Name: "Ricardo Lemos", Email: "ricardo@foto.com", Status: models.PhotographerStatusApproved, PhotosCount: 156},
		{ID: "ph-2", Name: "Ana Beatriz", Email: "ana@foto.com", Status: models.PhotographerStatusApproved, PhotosCount: 203},
		{ID: "ph-3", Name: "Carlos Mendes", Email: "carlos@foto.com", Status: models.PhotographerStatusPending, PhotosCount: 87},
		{ID: "ph-4", Name: "Juliana Rocha", Email: "juliana@foto.com", Status: models.PhotographerStatusApproved, PhotosCount: 142},
	}
}
