package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/minhngoc2704/article-flow/internal/analyzer"
	"github.com/minhngoc2704/article-flow/internal/generator"
	"github.com/minhngoc2704/article-flow/internal/transcript"
	"github.com/minhngoc2704/article-flow/internal/video"
)

const articlePrompt = `You are an expert content writer who turns video transcripts into blog articles.

Write a complete blog article from the analysis and transcript below.

Requirements:
- Tone: %s. Target length: %s.
- Use the detected topics and key points; do not invent facts absent from the transcript.
- Respond with ONLY a JSON object, no markdown fences, matching exactly this shape:
  {"title": string, "introduction": string, "sections": [{"heading": string, "content": string, "subsections": [...]}], "conclusion": string}

Video title: %s
Channel: %s

Content analysis (JSON):
%s

Transcript:
---
%s
---`

// WriteArticle prompts Gemini for a complete article in strict JSON and
// parses it. Rotates API keys on 429 / quota errors.
func (w *implWriter) WriteArticle(ctx context.Context, analysis analyzer.ContentAnalysis, meta video.Metadata, t transcript.Transcript, opts generator.Options) (generator.Article, error) {
	if len(w.apiKeys) == 0 {
		return generator.Article{}, fmt.Errorf("no API keys configured")
	}

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return generator.Article{}, fmt.Errorf("marshal analysis: %w", err)
	}

	tone := opts.Tone
	if tone == "" {
		tone = generator.ToneProfessional
	}
	length := opts.Length
	if length == "" {
		length = generator.LengthMedium
	}

	prompt := fmt.Sprintf(articlePrompt,
		tone, length, meta.Title, meta.ChannelName, analysisJSON, t.FullText())

	raw, err := w.callGemini(ctx, prompt)
	if err != nil {
		return generator.Article{}, err
	}

	article, err := parseArticle(raw)
	if err != nil {
		return generator.Article{}, err
	}

	generator.Finalize(&article, analysis, meta)
	return article, nil
}

// parseArticle decodes the model output into an Article, tolerating
// markdown code fences that some models wrap around JSON.
func parseArticle(raw string) (generator.Article, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var article generator.Article
	if err := json.Unmarshal([]byte(cleaned), &article); err != nil {
		return generator.Article{}, fmt.Errorf("parse article JSON: %w", err)
	}
	if article.Title == "" || len(article.Sections) == 0 {
		return generator.Article{}, fmt.Errorf("incomplete article from model")
	}
	return article, nil
}

// callGemini sends the prompt to Gemini and returns the response text.
func (w *implWriter) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(w.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIndex := w.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			w.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, w.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				w.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				w.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// activeKey reads the current key and its index under the lock.
func (w *implWriter) activeKey() (string, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.apiKeys[w.currentKey], w.currentKey
}

func (w *implWriter) rotateKey() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentKey = (w.currentKey + 1) % len(w.apiKeys)
}
