package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiService struct {
	ApiKey  string
	BaseURL string
	client  *http.Client
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		ApiKey:  apiKey,
		BaseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize asks Gemini to summarize the transcript following the user's
// instruction. Output is capped at 2000 tokens with a low temperature so the
// result stays focused rather than creative.
func (g *GeminiService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	url := fmt.Sprintf("%s/models/gemini-2.5-flash:generateContent?key=%s", g.BaseURL, g.ApiKey)

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: buildPrompt(transcript, instruction)}}},
		},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: 2000,
			Temperature:     0.3,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no summary returned")
	}

	summary := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if summary == "" {
		return "", fmt.Errorf("AI generated empty summary")
	}
	return summary, nil
}

func buildPrompt(transcript, instruction string) string {
	return fmt.Sprintf(`Please analyze the following meeting transcript and create a summary based on these specific instructions: %q

Meeting Transcript:
%s

Instructions: %s

Please provide a well-structured summary that follows the given instructions.`, instruction, transcript, instruction)
}
