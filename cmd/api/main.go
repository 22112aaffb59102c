package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-product-table.git/internal/config"
	"github.com/ariefcatur/go-product-table.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-product-table.git/internal/kafka"
	"github.com/ariefcatur/go-product-table.git/internal/postgres"
	"github.com/ariefcatur/go-product-table.git/internal/products"
	"github.com/ariefcatur/go-product-table.git/internal/redisx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer (product change events)
	prod := kafkax.NewProducer(cfg.KafkaBrokers, products.TopicProductChanged, 1024)
	prod.Start(ctx)

	// Repo & handler
	repo := &products.Repo{DB: db}
	router := httpx.NewRouter()
	ph := &httpx.ProductsHandler{
		Repo:     repo,
		Producer: prod,
		Redis:    rdb,
		Service:  cfg.ServiceName,
	}
	ph.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // close inbox -> flush & close writer
	prod.WaitClosed()
}
