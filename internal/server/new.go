package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/config"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/llm"
	"github.com/minhngoc2704/article-flow/internal/logger"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/youtube"
)

// Server exposes the pipeline stages over HTTP.
type Server struct {
	app        *fiber.App
	cfg        *config.Config
	normalizer normalizer.Normalizer
	analyzer   analyzer.Analyzer
	generator  generator.Generator
	writer     llm.Writer
	provider   youtube.Provider
	validate   *validator.Validate
	log        *logrus.Logger
	logger     logger.Logger
}

// New wires the fiber app, middleware and routes. writer and provider
// may be nil; the corresponding request options are then unavailable.
func New(cfg *config.Config, norm normalizer.Normalizer, an analyzer.Analyzer, gen generator.Generator, writer llm.Writer, provider youtube.Provider, log logger.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		normalizer: norm,
		analyzer:   an,
		generator:  gen,
		writer:     writer,
		provider:   provider,
		validate:   validator.New(),
		log:        logger.NewLogrus(cfg.Logging.Level, cfg.Logging.Format),
		logger:     log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "article-flow",
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	s.app.Use(s.requestLogger())

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handleHealth)

	apiV1 := s.app.Group("/api/v1")
	apiV1.Post("/articles", s.handleGenerateArticle)
	apiV1.Post("/transcripts/normalize", s.handleNormalize)
	apiV1.Post("/transcripts/segment", s.handleSegment)
	apiV1.Post("/analyze", s.handleAnalyze)
	apiV1.Get("/templates", s.handleTemplates)
}

// Listen blocks serving HTTP on the configured port.
func (s *Server) Listen() error {
	return s.app.Listen(fmt.Sprintf(":%d", s.cfg.Server.Port))
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return respondWithError(c, code, err.Error())
}
