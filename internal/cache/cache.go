// Package cache holds cached list responses for the admin API. List reads
// are served from here until their TTL expires or a mutation on the same
// resource invalidates them.
package cache

// Cache is the backend-agnostic interface handlers talk to. Implementations
// exist for in-process memory and Redis.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Collection keys. Lists scoped to an owner (variants of a product,
// mappings of a retailer) append the owner id.
const (
	KeyCategories = "categories"
	KeyProducts   = "products"
	KeyRetailers  = "retailers"
	KeyOrders     = "orders"
)

// OwnedKey builds a cache key for a list owned by a single parent resource.
func OwnedKey(collection, ownerID string) string {
	return collection + ":" + ownerID
}
