package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/cart"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/payment"
	"app/internal/refresh"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	if err := db.SeedCategories(gormDB); err != nil {
		log.Fatalf("db seed: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//refresh合図のハブ
	hub := refresh.NewHub()

	//カートとドラフト。Redisが無ければドラフトはインメモリ
	carts := cart.NewManager()
	var drafts cart.DraftStore
	if cfg.RedisAddr != "" {
		drafts = cart.NewRedisDraftStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		log.Println("REDIS_ADDR not set; drafts will not survive a restart")
		drafts = cart.NewMemoryDraftStore()
	}

	//決済セッションのクライアント
	payments := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, hub)
	orderUC := usecase.NewOrderUsecase(txManager, hub)
	checkoutUC := usecase.NewCheckoutUsecase(carts, drafts, payments, orderUC, cfg.StoreLabel, cfg.BaseURL)

	//Handler生成
	e := server.New(server.Handlers{
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Cart:         handler.NewCartHandler(carts, productUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminOrder:   handler.NewAdminOrderHandler(orderUC, hub),
	})

	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	//Server起動
	go func() {
		if err := server.Start(e, addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	//SIGINT/SIGTERMで猶予付きshutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx, e); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
