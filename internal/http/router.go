package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/princesinghgemini-dotcom/veto/internal/http/handlers"
)

// NewRouter wires every route of the admin API. Auth endpoints are rate
// limited per IP; everything under /admin requires an admin bearer token.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", MetricsHandler())

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Use(RequireAdmin)

		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Patch("/categories/{id}", handlers.UpdateCategoryHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Patch("/products/{id}", handlers.UpdateProductHandler)

		r.Get("/products/{id}/variants", handlers.GetVariantsHandler)
		r.Post("/products/{id}/variants", handlers.CreateVariantHandler)
		r.Patch("/products/variants/{id}", handlers.UpdateVariantHandler)

		r.Get("/retailers", handlers.GetRetailersHandler)
		r.Post("/retailers", handlers.CreateRetailerHandler)
		r.Patch("/retailers/{id}", handlers.UpdateRetailerHandler)

		r.Get("/retailers/{id}/products", handlers.GetRetailerProductsHandler)
		r.Post("/retailers/{id}/products", handlers.CreateRetailerProductHandler)
		r.Patch("/retailer-products/{id}", handlers.UpdateRetailerProductHandler)

		r.Post("/users", handlers.RegisterAsAdminHandler)

		r.Get("/orders", handlers.GetOrdersHandler)
		r.Post("/orders", handlers.CreateOrderHandler)
		r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
		r.Patch("/orders/{id}", handlers.UpdateOrderStatusHandler)
	})

	return r
}
