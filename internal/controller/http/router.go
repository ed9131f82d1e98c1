package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/pgk/auth"
)

// InitRoutes mounts the API. Picker-only routes check the role claim,
// everything else under the authenticated group only needs a valid token.
func InitRoutes(r *chi.Mux, c *Controller, tokenSecret string) *chi.Mux {
	authenticate := auth.AuthBearerMiddlewareInit[model.TokenInfo](tokenSecret)
	pickerOnly := auth.RequireMiddlewareInit(func(info *model.TokenInfo) bool {
		return info.Role == model.RolePicker
	})

	r.Get("/ping", c.Ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", c.Register)
		r.Post("/auth/login", c.Login)
		r.Post("/picker/signup", c.RegisterPicker)
		r.Post("/picker/login", c.LoginPicker)

		r.Get("/order/get-items", c.GetItems)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/waste/upload", c.UploadWaste)
			r.Post("/waste/cancel-pickup-request", c.CancelPickup)
			r.Get("/waste/my-requests", c.GetMyRequests)

			r.Get("/user/balance", c.GetBalance)

			r.Post("/order/create", c.CreateOrder)
			r.Post("/order/request-order", c.RequestOrder)
			r.Post("/order/cancel-order", c.CancelOrder)
			r.Post("/order/add-to-card", c.AddToCart)
			r.Post("/order/cancel-from-addtocard", c.RemoveFromCart)
			r.Get("/order/get-all-orders/user/{userId}", c.GetOrdersByUser)
			r.Post("/order/get-all-addtocards/user", c.GetCart)

			r.Group(func(r chi.Router) {
				r.Use(pickerOnly)

				r.Post("/waste/in_progress-pickup", c.StartPickup)
				r.Post("/waste/complete-pickup", c.CompletePickup)
				r.Get("/picker/assigned-pickups", c.GetAssignedPickups)
				r.Get("/picker/emergency-pickups", c.GetEmergencyPickups)
				r.Post("/picker/complete-task", c.CompleteTask)
			})
		})
	})

	return r
}
