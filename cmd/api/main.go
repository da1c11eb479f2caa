package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	"github.com/starburger/foodcart-backend/internal/modules/auth"
	"github.com/starburger/foodcart-backend/internal/modules/catalog"
	"github.com/starburger/foodcart-backend/internal/modules/fulfillment"
	"github.com/starburger/foodcart-backend/internal/modules/location"
	"github.com/starburger/foodcart-backend/internal/modules/menu"
	"github.com/starburger/foodcart-backend/internal/modules/order"
	"github.com/starburger/foodcart-backend/internal/modules/restaurant"
	"github.com/starburger/foodcart-backend/internal/modules/user"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}
	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)
	staffOnly := auth.RequireStaff(authService)

	// ── Catalog, Restaurants & Menu ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(db)
	restaurantService := restaurant.NewService(restaurantRepo)
	restaurant.NewHandler(restaurantService).RegisterRoutes(router)

	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	menuRepo := menu.NewPostgresRepository(db)
	menuService := menu.NewService(menuRepo, restaurantRepo, catalogRepo)
	menu.NewHandler(menuService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Geocoding & Fulfillment Dashboard ───────────────────
	geocoder := location.NewYandexGeocoder(location.Config{
		APIKey:  os.Getenv("YANDEX_APIKEY"),
		BaseURL: os.Getenv("YANDEX_GEOCODER_URL"),
		Timeout: 10 * time.Second,
	})
	locationRepo := location.NewPostgresRepository(db)
	resolver := location.NewResolver(locationRepo, geocoder)

	fulfillmentService := fulfillment.NewService(orderRepo, menuRepo, restaurantRepo, resolver)
	fulfillment.NewHandler(fulfillmentService, staffOnly).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Foodcart API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
