package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JuanesPachon/Stockia/internal/application/auth"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/infrastructure/mongodb"
	"github.com/JuanesPachon/Stockia/internal/infrastructure/storage"
	httpRouter "github.com/JuanesPachon/Stockia/internal/interfaces/http"
	"github.com/JuanesPachon/Stockia/pkg/config"
	"github.com/JuanesPachon/Stockia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	providerRepo := mongodb.NewProviderRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)

	imageStore := storage.NewSupabaseStorage(cfg.Storage)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(userRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(userRepo, productRepo, categoryRepo, providerRepo, imageStore, log)
	providerUC := usecase.NewProviderUseCase(userRepo, providerRepo, categoryRepo)
	noteUC := usecase.NewNoteUseCase(userRepo, noteRepo, categoryRepo)
	expenseUC := usecase.NewExpenseUseCase(userRepo, expenseRepo, categoryRepo, providerRepo)
	saleUC := usecase.NewSaleUseCase(userRepo, saleRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		ProviderUC:   providerUC,
		NoteUC:       noteUC,
		ExpenseUC:    expenseUC,
		SaleUC:       saleUC,
		Validator:    validation.New(),
		JWTSecret:    cfg.JWT.Secret,
		SecureCookie: cfg.App.Env != "development",
		CookieMaxAge: time.Duration(cfg.JWT.ExpHours) * time.Hour,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
