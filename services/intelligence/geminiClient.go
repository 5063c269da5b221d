// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"davi/models"
)

// GeminiInterpreter implements ScheduleInterpreter against the Gemini API.
type GeminiInterpreter struct {
	model    *genai.GenerativeModel
	location *time.Location
}

// NewGeminiInterpreter builds a Gemini-backed interpreter. loc is the civil
// timezone used to render the temporal context in the prompt.
func NewGeminiInterpreter(apiKey, modelName string, loc *time.Location) *GeminiInterpreter {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	return &GeminiInterpreter{model: model, location: loc}
}

func (g *GeminiInterpreter) InterpretSchedule(ctx context.Context, instructions string, now time.Time) ([]models.SlotRange, error) {
	prompt := buildSchedulePrompt(instructions, now, g.location)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generate error: %v", ErrInterpretation, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: empty model response", ErrInterpretation)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return ParseSlotRanges(sb.String())
}
