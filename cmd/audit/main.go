package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ariefcatur/go-product-table.git/internal/audit"
	"github.com/ariefcatur/go-product-table.git/internal/config"
	kafkax "github.com/ariefcatur/go-product-table.git/internal/kafka"
	"github.com/ariefcatur/go-product-table.git/internal/products"
	"github.com/ariefcatur/go-product-table.git/internal/redisx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service
	svc := &audit.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-audit",
	}

	// Consumer
	group := getenv("AUDIT_GROUP", "audit-svc")
	workers := mustAtoi(os.Getenv("AUDIT_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, products.TopicProductChanged, workers)

	go func() {
		log.Printf("audit consumer started: group=%s topic=%s workers=%d", group, products.TopicProductChanged, workers)
		if err := cons.Start(ctx, svc.HandleProductChanged); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
