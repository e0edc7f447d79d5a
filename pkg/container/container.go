package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-backend/internal/clients/openlibrary"
	"library-backend/internal/config"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/infrastructure/database"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	OpenLibrary *openlibrary.Client

	BookRepo    bookRepo.RepositoryInterface
	BookService bookService.ServiceInterface

	BookHandler   *bookHandler.BookHandler
	HealthHandler *bookHandler.HealthHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repository, client, service, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	if err := c.BookRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	c.OpenLibrary = openlibrary.NewClient(
		cfg.OpenLibrary.BaseURL,
		cfg.OpenLibrary.RequestTimeout,
		cfg.OpenLibrary.ProbeTimeout,
		cfg.OpenLibrary.RequestsPerSec,
	)

	c.BookService = bookService.NewBookService(c.OpenLibrary, c.BookRepo)

	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.HealthHandler = bookHandler.NewHealthHandler(c.OpenLibrary)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
