// Package ai wraps the Gemini generateContent REST API for team analysis and
// photo editing. Both calls degrade gracefully: with no API key configured
// the features are disabled, and transport failures never crash the caller.
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"obtconnect/internal/model"
)

const (
	baseURL    = "https://generativelanguage.googleapis.com/v1beta/models"
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"

	keyMissingMessage = "API Key not configured. Unable to generate AI insights."
	unavailableReply  = "Unable to connect to AI assistant at the moment."
)

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the Gemini API. A zero-key client is valid and reports
// Enabled() == false.
type Client struct {
	apiKey string
	http   *resty.Client
}

// NewClient creates a Gemini client. An empty apiKey disables AI features.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		log.Println("AI: no API key configured, features disabled")
	}
	return &Client{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

func (c *Client) generate(ctx context.Context, modelName string, req generateRequest) (*generateResponse, error) {
	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/%s:generateContent", modelName))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return nil, fmt.Errorf("gemini api: %s", msg)
	}
	return &out, nil
}

// AnalyzeTeam produces a short motivating summary of a district roster.
// Failures are converted to a user-facing message, never an error.
func (c *Client) AnalyzeTeam(ctx context.Context, districtName string, members []model.Member) string {
	if !c.Enabled() {
		return keyMissingMessage
	}

	var list strings.Builder
	for _, m := range members {
		fmt.Fprintf(&list, "- %s (%s)\n", m.Name, m.Designation)
	}

	prompt := fmt.Sprintf(`You are an expert HR and Team Management consultant for the "On Boarding Team (OBT)" in Tamil Nadu.

Analyze the following team composition for the district of %s.

Team Members:
%s
Please provide a short, motivating summary (max 100 words) encompassing:
1. Current strength (Total members vs max %d).
2. Leadership presence (Is there a captain?).
3. A quick tip for improving team efficiency.

Format the output as a clean, friendly paragraph with emojis.`, districtName, list.String(), 30)

	out, err := c.generate(ctx, textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Printf("AI: analyze team: %v", err)
		return unavailableReply
	}

	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return "Could not generate analysis."
}

// EditImage applies the prompt to the image and returns the edited bytes and
// mime type. It returns (nil, "", nil) when the response carries no image,
// and a non-nil error on transport or API failure.
func (c *Client) EditImage(ctx context.Context, image []byte, mimeType, prompt string) ([]byte, string, error) {
	if !c.Enabled() {
		return nil, "", fmt.Errorf("AI features are not configured")
	}

	out, err := c.generate(ctx, imageModel, generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: prompt},
		}}},
	})
	if err != nil {
		return nil, "", err
	}

	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, "", fmt.Errorf("decode image: %w", err)
				}
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return data, mime, nil
			}
		}
	}
	return nil, "", nil
}
