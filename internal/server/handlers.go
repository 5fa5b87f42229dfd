package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/normalizer"
	"github.com/minhngoc2704/article-flow/internal/segmenter"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

type normalizeRequest struct {
	Transcript transcript.Transcript `json:"transcript"`
	Options    *normalizer.Options   `json:"options"`
}

type segmentRequest struct {
	Transcript     transcript.Transcript `json:"transcript"`
	MaxWords       int                   `json:"max_words" validate:"omitempty,gt=0"`
	PauseThreshold float64               `json:"pause_threshold" validate:"omitempty,gte=0"`
}

type analyzeRequest struct {
	Transcript transcript.Transcript `json:"transcript"`
	Options    analyzer.Options      `json:"options"`
}

type articleRequest struct {
	URL             string                `json:"url" validate:"omitempty,url"`
	Transcript      transcript.Transcript `json:"transcript"`
	Metadata        video.Metadata        `json:"metadata"`
	AnalyzerOptions analyzer.Options      `json:"analyzer_options"`
	Options         generator.Options     `json:"options"`
	UseLLM          bool                  `json:"use_llm"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "article-flow is healthy",
	})
}

func (s *Server) handleNormalize(c *fiber.Ctx) error {
	var req normalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Transcript.Segments) == 0 {
		return respondWithError(c, fiber.StatusBadRequest, "transcript.segments must not be empty")
	}

	opts := normalizer.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	result := s.normalizer.Process(req.Transcript, opts)
	return respondWithJSON(c, fiber.StatusOK, result)
}

func (s *Server) handleSegment(c *fiber.Ctx) error {
	var req segmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return respondWithJSON(c, fiber.StatusBadRequest, fiber.Map{
			"errors": formatValidationErrors(err),
		})
	}
	if len(req.Transcript.Segments) == 0 {
		return respondWithError(c, fiber.StatusBadRequest, "transcript.segments must not be empty")
	}

	maxWords := req.MaxWords
	if maxWords == 0 {
		maxWords = 100
	}
	pause := req.PauseThreshold
	if pause == 0 {
		pause = 2.0
	}

	segments := segmenter.Segment(req.Transcript, maxWords, pause)
	return respondWithJSON(c, fiber.StatusOK, fiber.Map{
		"segments": segments,
		"count":    len(segments),
	})
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Transcript.Segments) == 0 {
		return respondWithError(c, fiber.StatusBadRequest, "transcript.segments must not be empty")
	}

	analysis := s.analyzer.Analyze(req.Transcript, req.Options)
	return respondWithJSON(c, fiber.StatusOK, analysis)
}

// handleGenerateArticle runs the full pipeline for either an inline
// transcript or a YouTube URL.
func (s *Server) handleGenerateArticle(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return respondWithJSON(c, fiber.StatusBadRequest, fiber.Map{
			"errors": formatValidationErrors(err),
		})
	}

	t := req.Transcript
	meta := req.Metadata

	if strings.TrimSpace(req.URL) != "" {
		if s.provider == nil {
			return respondWithError(c, fiber.StatusServiceUnavailable, "no video provider configured")
		}
		var err error
		meta, err = s.provider.FetchMetadata(c.Context(), req.URL)
		if err != nil {
			return respondWithError(c, fiber.StatusBadGateway, err.Error())
		}
		subtitlePath, err := s.provider.DownloadSubtitles(c.Context(), req.URL, s.cfg.Paths.Temp)
		if err != nil {
			return respondWithError(c, fiber.StatusBadGateway, err.Error())
		}
		t, err = transcript.LoadFile(subtitlePath)
		if err != nil {
			return respondWithError(c, fiber.StatusBadGateway, err.Error())
		}
	}

	if len(t.Segments) == 0 {
		return respondWithError(c, fiber.StatusBadRequest, "either url or a non-empty transcript is required")
	}

	result := s.normalizer.Process(t, normalizer.DefaultOptions())
	cleaned := result.AsTranscript()
	analysis := s.analyzer.Analyze(cleaned, req.AnalyzerOptions)

	opts := req.Options
	if opts.Tone == "" {
		opts.Tone = s.cfg.Generator.Tone
	}
	if opts.Length == "" {
		opts.Length = s.cfg.Generator.Length
	}

	var article generator.Article
	if req.UseLLM && s.writer != nil {
		drafted, err := s.writer.WriteArticle(c.Context(), analysis, meta, cleaned, opts)
		if err != nil {
			s.logger.Warn(c.Context(), "LLM draft failed, falling back to templates: %v", err)
			article = s.generator.Generate(analysis, meta, cleaned, opts)
		} else {
			article = drafted
		}
	} else {
		article = s.generator.Generate(analysis, meta, cleaned, opts)
	}

	return respondWithJSON(c, fiber.StatusOK, fiber.Map{
		"article":  article,
		"analysis": analysis,
	})
}

func (s *Server) handleTemplates(c *fiber.Ctx) error {
	return respondWithJSON(c, fiber.StatusOK, fiber.Map{
		"templates": s.generator.AvailableTemplates(),
	})
}
