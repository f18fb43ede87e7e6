package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/blessing-poultries/backend/internal/application/adapter"
)

// GeminiAdviceService implements the AdviceService using Google Gemini.
type GeminiAdviceService struct {
	apiKey    string
	modelName string
}

// NewGeminiAdviceService creates a new Gemini advice service instance.
func NewGeminiAdviceService(apiKey string) *GeminiAdviceService {
	return &GeminiAdviceService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiAdviceService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise analyzes the farm's financial figures and returns advisory notes.
func (s *GeminiAdviceService) Advise(ctx context.Context, request *adapter.AdviceRequest) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	advice, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return advice, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiAdviceService) buildPrompt(request *adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a financial advisor for small-scale poultry farms in Nigeria. You will receive a snapshot of a farm's finances for a period and must produce short, practical recommendations.

RULES:
- Each recommendation is a single sentence, actionable and specific to poultry farming
- Reference the actual figures where it strengthens the point
- Amounts are in Nigerian Naira (NGN)
- Do not repeat the figures back as a summary; give advice
- Return at most 3 recommendations

FINANCIAL SNAPSHOT:
`)

	sb.WriteString(fmt.Sprintf("- Period: %s\n", request.Period))
	sb.WriteString(fmt.Sprintf("- Total expenses: NGN %s\n", request.TotalExpenses))
	sb.WriteString(fmt.Sprintf("- Total income: NGN %s\n", request.TotalIncome))
	sb.WriteString(fmt.Sprintf("- Profit: NGN %s\n", request.Profit))
	sb.WriteString(fmt.Sprintf("- Profit margin: %.2f%%\n", request.ProfitMargin))
	if request.TopExpenseCategory != "" {
		sb.WriteString(fmt.Sprintf("- Largest expense category: %s\n", request.TopExpenseCategory))
	}
	if request.TopIncomeSource != "" {
		sb.WriteString(fmt.Sprintf("- Largest income source: %s\n", request.TopIncomeSource))
	}
	if request.BudgetUsage != nil {
		sb.WriteString(fmt.Sprintf("- Monthly budget usage: %.1f%%\n", *request.BudgetUsage))
	}

	sb.WriteString(`
Respond with a JSON array of strings, each string being one recommendation.

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into a list of recommendations.
func (s *GeminiAdviceService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var advice []string
	if err := json.Unmarshal([]byte(textContent), &advice); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	cleaned := make([]string, 0, len(advice))
	for _, a := range advice {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		cleaned = append(cleaned, a)
	}

	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}

	return cleaned, nil
}
