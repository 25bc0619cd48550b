package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Users    *UserHandler
	Products *ProductHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Orders   *OrderHandler
	Messages *MessageHandler
	Settings *SettingsHandler
	Admin    *AdminHandler
}

// NewRouter builds the full route tree: public storefront reads, the
// authenticated customer surface and the admin surface.
func NewRouter(h Handlers, tokens *auth.TokenManager, users UserLoader, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Post("/users/register", h.Users.Register)
		r.Post("/users/login", h.Users.Login)
		r.Get("/products", h.Products.ListProducts)
		r.Get("/products/{id}", h.Products.GetProduct)
		r.Post("/messages", h.Messages.CreateMessage)

		// Authenticated storefront
		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens, users))

			r.Get("/users/profile", h.Users.Profile)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart.GetCart)
				r.Post("/", h.Cart.AddItem)
				r.Put("/", h.Cart.UpdateItem)
				r.Delete("/", h.Cart.ClearCart)
				r.Delete("/{productId}", h.Cart.RemoveItem)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.Wishlist.GetWishlist)
				r.Post("/", h.Wishlist.AddProduct)
				r.Delete("/", h.Wishlist.ClearWishlist)
				r.Delete("/{productId}", h.Wishlist.RemoveProduct)
			})

			r.Post("/orders", h.Orders.CreateOrder)
			r.Get("/orders/mine", h.Orders.ListMyOrders)
		})

		// Admin
		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens, users))
			r.Use(RequireRoles(user.RoleAdmin))

			r.Post("/products", h.Products.CreateProduct)
			r.Put("/products/{id}", h.Products.UpdateProduct)
			r.Delete("/products/{id}", h.Products.DeleteProduct)

			r.Get("/messages", h.Messages.ListMessages)
			r.Patch("/messages/{id}/read", h.Messages.MarkMessageRead)
			r.Post("/messages/{id}/reply", h.Messages.ReplyToMessage)
			r.Delete("/messages/{id}", h.Messages.DeleteMessage)

			r.Get("/settings", h.Settings.GetSettings)
			r.Post("/settings/payment", h.Settings.SavePaymentSettings)
			r.Post("/settings/gateway/test", h.Settings.TestGateway)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.Admin.ListUsers)
				r.Delete("/users/{id}", h.Admin.DeleteUser)
				r.Get("/orders", h.Orders.ListAllOrders)
				r.Put("/orders/{id}/status", h.Orders.UpdateOrderStatus)
			})
		})
	})

	return r
}
