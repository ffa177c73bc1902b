package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"nextgenmobiles/backend/internal/config"
	"nextgenmobiles/backend/internal/handler"
	"nextgenmobiles/backend/internal/repository"
	"nextgenmobiles/backend/internal/service"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// 2. Setup in-memory stores with the demo seeds
	products := repository.NewProductRepository()
	orders := repository.NewOrderRepository(repository.DemoOrder())
	users := repository.NewUserRepository(repository.DemoUser())
	files := repository.NewFileRepository()
	contacts := repository.NewContactRepository()

	// 3. Setup Logic
	catalogService := service.NewCatalogService(products)
	orderService := service.NewOrderService(products, orders)
	userService := service.NewUserService(users)
	fileService := service.NewFileService(files, cfg.UploadDir)
	contactService := service.NewContactService(contacts)

	h := handler.New(cfg.StaticDir, catalogService, orderService, userService, fileService, contactService)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("Starting NextGen Mobiles backend on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		fmt.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	fmt.Println("Server exiting")
}
