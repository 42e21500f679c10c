package storage

// DefaultPrefix namespaces every persisted key.
const DefaultPrefix = "acutia_"

// Logical key names for the persisted entities.
const (
	KeyUser          = "user"
	KeyCart          = "cart"
	KeyFavorites     = "favorites"
	KeyMatchedPhotos = "matched_photos"
	KeyOrders        = "orders"
	KeyEvents        = "events"
	KeyPhotographers = "photographers"
)
