package main

import (
	"log"

	"github.com/joho/godotenv"

	"damone-orders/config"
	httpapi "damone-orders/internal/api/http"
	"damone-orders/internal/catalog"
	"damone-orders/internal/service"
	"damone-orders/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cartStore := storage.NewRedisCartStore(rdb)
	analytics := storage.NewAnalyticsStore(rdb)
	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter(config.Getenv("KAFKA_ORDERS_TOPIC", "orders")))

	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}

	carts := service.NewCartSessions(cartStore, service.LogNotifier{})
	menu := service.NewMenuService(catalog.Load(), repo)
	checkout := service.NewCheckoutService(repo, repo, publisher, qr)
	auth := service.NewAuthService(repo, repo, config.MustJWTSecret())
	orders := service.NewOrderService(repo, analytics)
	comments := service.NewCommentService(repo)
	catering := service.NewCateringService(repo)

	handler := httpapi.NewHandler(carts, menu, checkout, auth, orders, comments, catering)
	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), httpapi.NewRouter(handler))
}
