package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/shashwotbhattarai/HandicraftHaven/internal/config"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/auth"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/cart"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/catalog"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/content"
	"github.com/shashwotbhattarai/HandicraftHaven/internal/modules/order"
)

func main() {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// ── Repositories ────────────────────────────────────────
	// The default backend is in-memory, seeded with the demo storefront.
	// DATABASE_URL switches catalog, orders and content to Postgres
	// (migrations/schema.sql); REDIS_ADDR moves carts into Redis.
	var (
		categoryRepo catalog.CategoryRepository
		productRepo  catalog.ProductRepository
		orderRepo    order.Repository
		heroRepo     content.HeroImageRepository
		storyRepo    content.MakerStoryRepository
		cartRepo     cart.Repository
	)

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")

		categoryRepo = catalog.NewCategoryPostgresRepository(db)
		productRepo = catalog.NewProductPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		heroRepo = content.NewHeroImagePostgresRepository(db)
		storyRepo = content.NewMakerStoryPostgresRepository(db)
	} else {
		categoryRepo = catalog.NewCategoryMemoryRepository()
		productRepo = catalog.NewProductMemoryRepository()
		orderRepo = order.NewMemoryRepository()
		heroRepo = content.NewHeroImageMemoryRepository()
		storyRepo = content.NewMakerStoryMemoryRepository()

		if err := catalog.SeedDemo(ctx, categoryRepo, productRepo); err != nil {
			log.Fatal(err)
		}
		if err := content.SeedDemo(ctx, heroRepo); err != nil {
			log.Fatal(err)
		}
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal(err)
		}
		cartRepo = cart.NewRedisRepository(rdb)
	} else {
		cartRepo = cart.NewMemoryRepository()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// ── Storefront ──────────────────────────────────────────
	catalogService := catalog.NewService(categoryRepo, productRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	cartService := cart.NewService(cartRepo, productRepo, categoryRepo)
	cart.NewHandler(cartService).RegisterRoutes(router)

	orderService := order.NewService(orderRepo, productRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	contentService := content.NewService(heroRepo, storyRepo)
	content.NewHandler(contentService).RegisterRoutes(router)

	// ── Admin login ─────────────────────────────────────────
	authService, err := auth.NewService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatal(err)
	}
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("HandicraftHaven API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
