package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Anhngoc0603/sneakerstore/internal/config"
	"github.com/Anhngoc0603/sneakerstore/internal/db"
	"github.com/Anhngoc0603/sneakerstore/internal/middleware"
	"github.com/Anhngoc0603/sneakerstore/internal/repository"
	"github.com/Anhngoc0603/sneakerstore/internal/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("SNEAKERSTORE_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	middleware.SetSecret(cfg.Server.JWTSecret)

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background(), cfg.Server.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	discountRepo := repository.NewDiscountRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	supportRepo := repository.NewSupportRepository(pool)
	refundRepo := repository.NewRefundRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	discountSvc := services.NewDiscountService(discountRepo)
	blogSvc := services.NewBlogService(blogRepo)
	supportSvc := services.NewSupportService(supportRepo)
	refundSvc := services.NewRefundService(refundRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerProductRoutes(api, productSvc)
	registerOrderRoutes(api, orderSvc)
	registerCustomerRoutes(api, customerSvc)
	registerCategoryRoutes(api, categorySvc)
	registerDiscountRoutes(api, discountSvc)
	registerBlogRoutes(api, blogSvc)
	registerSupportRoutes(api, supportSvc)
	registerRefundRoutes(api, refundSvc)

	// static fallback feeds for clients running without the API
	e.Static("/", cfg.API.DataDir)

	e.Logger.Fatal(e.Start(cfg.Server.Addr))
}
