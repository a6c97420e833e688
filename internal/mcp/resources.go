package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"steady-compass/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type stressLevelInfo struct {
	Level domain.StressLevel `json:"level"`
	Emoji string             `json:"emoji"`
	Score float64            `json:"score"`
}

func registerResources(server *mcp.Server, wellness WellnessReader) {
	server.AddResource(&mcp.Resource{
		URI:         "wellness://stress-levels",
		Name:        "stress-levels",
		Description: "Stress tiers with their emoji and fixed numeric scores",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		levels := []stressLevelInfo{
			{Level: domain.StressLow, Emoji: domain.StressLow.Emoji(), Score: 0.3},
			{Level: domain.StressMedium, Emoji: domain.StressMedium.Emoji(), Score: 0.6},
			{Level: domain.StressHigh, Emoji: domain.StressHigh.Emoji(), Score: 0.9},
		}
		return jsonResource(req.Params.URI, levels)
	})

	server.AddResource(&mcp.Resource{
		URI:         "wellness://emotion-types",
		Name:        "emotion-types",
		Description: "Emotion types the analyzer can detect, in tie-break order",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, domain.EmotionTypes)
	})

	server.AddResource(&mcp.Resource{
		URI:         "wellness://dimensions",
		Name:        "dimensions",
		Description: "Life dimensions detected from event text",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		dimensions := []string{
			domain.DimensionWork,
			domain.DimensionHealth,
			domain.DimensionSocial,
			domain.DimensionLearning,
			domain.DimensionOther,
		}
		return jsonResource(req.Params.URI, dimensions)
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "suggestions://{level}{?dimension,emotion}",
		Name:        "suggestions-by-level",
		Description: "Suggestions for a stress tier; optional dimension and emotion query params",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if wellness == nil {
			return nil, fmt.Errorf("wellness service unavailable")
		}

		parsed, err := url.Parse(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		if parsed.Scheme != "suggestions" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		level, err := normalizeStressLevel(strings.Trim(strings.TrimSpace(parsed.Host), "/"))
		if err != nil {
			return nil, err
		}
		dimension := strings.TrimSpace(parsed.Query().Get("dimension"))
		emotion := strings.TrimSpace(parsed.Query().Get("emotion"))

		suggestions := wellness.GetSuggestions(ctx, level, dimension, emotion)
		return jsonResource(req.Params.URI, suggestionsGetOutput{Suggestions: suggestions})
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(body),
		}},
	}, nil
}
