package handlers

import (
	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

var (
	categoryRepo        repo.CategoryRepository
	productRepo         repo.ProductRepository
	variantRepo         repo.VariantRepository
	retailerRepo        repo.RetailerRepository
	retailerProductRepo repo.RetailerProductRepository
	orderRepo           repo.OrderRepository
	userRepo            repo.UserRepository

	listCache cache.Cache
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetVariantRepo(r repo.VariantRepository) {
	variantRepo = r
}

func SetRetailerRepo(r repo.RetailerRepository) {
	retailerRepo = r
}

func SetRetailerProductRepo(r repo.RetailerProductRepository) {
	retailerProductRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

// SetListCache installs the response cache for list endpoints. A nil cache
// disables caching.
func SetListCache(c cache.Cache) {
	listCache = c
}
