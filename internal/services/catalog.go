package services

import (
	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"
	"acutia-backend/internal/seed"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CatalogService handles catalog reads and mutations: events,
// photographers and the photo pool the match engine draws from.
type CatalogService struct {
	catalog *repository.CatalogRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Events retrieves the events, seed catalog when none are persisted.
func (s *CatalogService) Events() []models.EventData {
	return s.catalog.Events()
}

// SetEvents replaces the persisted event list.
func (s *CatalogService) SetEvents(events []models.EventData) []models.EventData {
	s.catalog.SetEvents(events)
	return events
}

// AddEvent prepends event to the list and persists it.
func (s *CatalogService) AddEvent(event models.EventData) []models.EventData {
	events := append([]models.EventData{event}, s.catalog.Events()...)
	s.catalog.SetEvents(events)

	log.Info().Str("event_id", event.ID).Str("name", event.Name).Msg("Event created")
	return events
}

// Photographers retrieves the photographers, seed catalog when none are
// persisted.
func (s *CatalogService) Photographers() []models.Photographer {
	return s.catalog.Photographers()
}

// SetPhotographers replaces the persisted photographer list.
func (s *CatalogService) SetPhotographers(photographers []models.Photographer) []models.Photographer {
	s.catalog.SetPhotographers(photographers)
	return photographers
}

// TogglePhotographerStatus flips the matching photographer between
// approved and pending. All other records and fields are untouched.
func (s *CatalogService) TogglePhotographerStatus(id string) []models.Photographer {
	photographers := s.catalog.Photographers()
	for i, p := range photographers {
		if p.ID != id {
			continue
		}
		if p.Status == models.PhotographerStatusApproved {
			photographers[i].Status = models.PhotographerStatusPending
		} else {
			photographers[i].Status = models.PhotographerStatusApproved
		}

		log.Info().Str("photographer_id", id).Str("status", string(photographers[i].Status)).Msg("Photographer status toggled")
		break
	}

	s.catalog.SetPhotographers(photographers)
	return photographers
}

// Photos returns the full catalog photo pool.
func (s *CatalogService) Photos() []models.Photo {
	return seed.Photos()
}

// PhotosByEvent returns the catalog photos belonging to eventID.
func (s *CatalogService) PhotosByEvent(eventID string) []models.Photo {
	photos := []models.Photo{}
	for _, p := range seed.Photos() {
		if p.EventID == eventID {
			photos = append(photos, p)
		}
	}
	return photos
}

// NewEventID generates a unique id for a caller-created event.
func NewEventID() string {
	return "evt-" + uuid.NewString()
}

// NewPhotographerID generates a unique id for a caller-created photographer.
func NewPhotographerID() string {
	return "ph-" + uuid.NewString()
}
