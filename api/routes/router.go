package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/controllers"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/middleware"
	cartsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	catalogsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/catalog"
	checkoutsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/checkout"
	dashboardsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/dashboard"
	orderssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orders"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/session"
	userssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/users"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/config"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	carts *cartsvc.Manager,
	sessions *session.Manager,
	products controllers.ProductFetcher,
	catalogService catalogsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orderssvc.Service,
	usersService userssvc.Service,
	dashboardService dashboardsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Visitor(logg))

		r.Get("/home", controllers.Home(catalogService, logg))
		r.Get("/products", controllers.Products(catalogService, logg))
		r.Get("/products/{id}", controllers.Product(catalogService, logg))
		r.Get("/categories", controllers.Categories(catalogService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(sessions, logg))
			r.Post("/register", controllers.Register(sessions, logg))
			r.Post("/logout", controllers.Logout(sessions, logg))
			r.Get("/me", controllers.Me(sessions, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(carts, logg))
			r.Post("/items", controllers.CartAdd(carts, products, logg))
			r.Put("/items", controllers.CartUpdate(carts, logg))
			r.Delete("/items", controllers.CartRemove(carts, logg))
			r.Delete("/", controllers.CartClear(carts, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser(sessions, logg))

			r.Get("/checkout/summary", controllers.CheckoutSummary(checkoutService, carts, logg))
			r.Post("/checkout", controllers.Checkout(checkoutService, carts, logg))
			r.Get("/orders", controllers.MyOrders(ordersService, logg))
			r.Get("/orders/{id}", controllers.OrderDetail(ordersService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(sessions, logg))

			r.Get("/dashboard", controllers.Dashboard(dashboardService, logg))

			r.Get("/orders", controllers.AdminOrders(ordersService, logg))
			r.Put("/orders/{id}/status", controllers.AdminOrderStatusUpdate(ordersService, logg))

			r.Post("/products", controllers.AdminProductCreate(catalogService, logg))
			r.Put("/products/{id}", controllers.AdminProductUpdate(catalogService, logg))
			r.Delete("/products/{id}", controllers.AdminProductDelete(catalogService, logg))

			r.Get("/users", controllers.AdminUsers(usersService, logg))
			r.Get("/users/{id}", controllers.AdminUserDetail(usersService, logg))
			r.Put("/users/{id}", controllers.AdminUserUpdate(usersService, logg))
			r.Delete("/users/{id}", controllers.AdminUserDelete(usersService, logg))
		})
	})

	return r
}
