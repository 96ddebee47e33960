package handlers

import "github.com/go-redis/redis/v8"

// HandlerBundle groups the handlers and shared clients route registration
// needs.
type HandlerBundle struct {
	AuthCache *redis.Client

	Auth    *AuthHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
}
