package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ordersvc/internal/order/controller"
)

func NewRouter(orders *controller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.Create)
		r.Get("/", orders.List)
		r.Get("/{orderId}", orders.Get)
		r.Put("/{orderId}", orders.UpdateStatus)
		r.Delete("/{orderId}", orders.Delete)
		r.Post("/{orderId}/payment", orders.RequestPayment)
	})

	return r
}
