// Package llm wraps the Gemini text and Imagen image models
package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	ErrEmptyResponse = errors.New("model returned empty response")
	ErrNoImage       = errors.New("model returned no image")
)

type Client struct {
	genAI      *genai.Client
	textModel  string
	imageModel string
}

func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("empty API key")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{genAI: c, textModel: textModel, imageModel: imageModel}, nil
}

// GenerateText runs one prompt with a system instruction and returns the raw text of the answer
func (c *Client) GenerateText(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
		Temperature:     genai.Ptr[float32](0.7),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(system)}, genai.RoleUser)
	}

	resp, err := c.genAI.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateImage returns the bytes and MIME type of a single generated picture
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	resp, err := c.genAI.Models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate image: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, "", ErrNoImage
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return img.ImageBytes, mime, nil
}
