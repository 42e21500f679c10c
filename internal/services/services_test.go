package services

import (
	"math/rand"
	"time"

	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"
	"acutia-backend/internal/storage"
)

// testEnv wires every service over a fresh in-memory medium.
type testEnv struct {
	kv        *storage.Store
	session   *SessionService
	cart      *CartService
	favorites *FavoritesService
	catalog   *CatalogService
	orders    *OrderService
	match     *MatchService
}

func newTestEnv(seed int64) *testEnv {
	kv := storage.New(storage.NewMemoryBackend(), storage.DefaultPrefix)

	cartRepo := repository.NewCartRepository(kv)
	catalogSvc := NewCatalogService(repository.NewCatalogRepository(kv))

	return &testEnv{
		kv:        kv,
		session:   NewSessionService(repository.NewUserRepository(kv)),
		cart:      NewCartService(cartRepo),
		favorites: NewFavoritesService(repository.NewFavoritesRepository(kv)),
		catalog:   catalogSvc,
		orders: NewOrderServiceWithClock(
			repository.NewOrderRepository(kv),
			cartRepo,
			0,
			func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) },
		),
		match: NewMatchServiceWithRand(
			catalogSvc,
			repository.NewMatchRepository(kv),
			rand.New(rand.NewSource(seed)),
			0,
		),
	}
}

func testPhoto(id string, priceCents int) models.Photo {
	return models.Photo{
		ID:               id,
		URL:              "https://picsum.photos/seed/" + id + "/800/600",
		EventID:          "evt-1",
		Tags:             []string{"torcida"},
		PriceCents:       priceCents,
		PhotographerName: "Ana Beatriz",
	}
}
