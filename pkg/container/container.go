package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/database"

	"catalog-backend/internal/domains/category"
	categoryHandler "catalog-backend/internal/domains/category/handler"
	categoryRepo "catalog-backend/internal/domains/category/repository"
	categoryService "catalog-backend/internal/domains/category/service"

	"catalog-backend/internal/domains/product"
	productHandler "catalog-backend/internal/domains/product/handler"
	productRepo "catalog-backend/internal/domains/product/repository"
	productService "catalog-backend/internal/domains/product/service"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. All wiring is explicit constructor calls;
// there are no process-wide singletons beyond the pool it owns.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	CategoryRepo category.Repository
	ProductRepo  product.Repository

	CategoryService category.Service
	ProductService  product.Service

	CategoryHandler *categoryHandler.CategoryHandler
	ProductHandler  *productHandler.ProductHandler
}

// NewContainer builds the full dependency graph: config, then the
// database, then repositories, services and handlers on top. The
// seeder runs last, once the schema is in place.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	if cfg.Seed.OnEmpty {
		if err := database.Seed(ctx, db.Pool); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	c.CategoryRepo = categoryRepo.NewPostgresRepository(db.Pool)
	c.ProductRepo = productRepo.NewPostgresRepository(db.Pool)

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo)

	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases the resources the container owns.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("database connection closed")
	}
}
