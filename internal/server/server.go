// Package server contains the HTTP handlers and wiring for the blog app.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/web"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	posts          repository.PostRepository
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	srv := NewServerWithDeps(cfg, db)
	srv.promMiddleware = fiberprometheus.New("quill")
	return srv, nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB. No metrics
// collectors are registered on this path, so it is safe to call repeatedly
// within one process.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config: cfg,
		db:     db,
		posts:  repository.NewPostRepository(db),
	}
}

// BuildApp constructs the Fiber application with views, middleware and routes.
func (s *Server) BuildApp() *fiber.App {
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates missing: %v", err))
	}
	engine := html.NewFileSystem(http.FS(templates), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Quill Blog",
		Views:        engine,
		ErrorHandler: s.errorHandler,
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	app.Use(recover.New())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}
}

// SetupRoutes registers the application's routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.ListPosts)
	app.Get("/post/:id", s.ShowPost)
	app.Get("/new-post", s.NewPost)
	app.Post("/new-post", s.CreatePost)
	app.Get("/edit-post/:id", s.EditPost)
	app.Post("/edit-post/:id", s.UpdatePost)
	app.Get("/delete/:id", s.DeletePost)

	app.Get("/about", s.About)
	app.Get("/contact", s.Contact)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
}

// errorHandler renders the HTML error page for any error escaping a handler.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong on our side."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if models.IsNotFound(err) {
		code = fiber.StatusNotFound
		message = err.Error()
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"Code":    code,
		"Message": message,
	}); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
