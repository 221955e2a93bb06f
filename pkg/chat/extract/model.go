package extract

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/llm"
)

const extractionPrompt = `Analyze the following user message to extract a Name and Phone Number.

User Message: "%s"

Rules:
1. Extract the Name if provided. It should be a proper name (e.g., "John Doe", "Rahul"). Ignore common words or refusal phrases.
2. Extract the Phone Number if provided. It must be at least 10 digits.
3. Determine the Intent:
   - 'provide_data': the user is providing a name or phone number.
   - 'refuse': the user explicitly refuses to provide information (e.g., "I will not give my number").
   - 'other': the user says something else unrelated.

Respond ONLY in JSON format:
{
    "name": "extracted name or null",
    "phoneNumber": "extracted phone or null",
    "intent": "provide_data | refuse | other"
}`

// ModelExtractor delegates slot-filling to the completion provider with a
// strict-JSON extraction prompt. Parse or call failures degrade to an empty
// Result with IntentOther; they never reach the caller.
type ModelExtractor struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewModelExtractor(provider llm.LLMProvider, logger *log.Logger) *ModelExtractor {
	return &ModelExtractor{provider: provider, logger: logger}
}

var _ Extractor = &ModelExtractor{}

func (e *ModelExtractor) Extract(ctx context.Context, text string) Result {
	fallback := Result{Intent: IntentOther}

	prompt := strings.Replace(extractionPrompt, "%s", escapeQuotes(text), 1)
	raw, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		e.logger.Printf("[WARN] extraction call failed: %v", err)
		return fallback
	}

	var parsed struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
		Intent      string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		e.logger.Printf("[WARN] extraction parse failed: %v (raw: %q)", err, raw)
		return fallback
	}

	result := Result{Intent: normalizeIntent(parsed.Intent)}

	// Post-validate: the model is not trusted to honor the length rules.
	if name := strings.TrimSpace(parsed.Name); chat.ValidName(name) && !isNullish(name) {
		result.Name = name
	}
	if phone := strings.TrimSpace(parsed.PhoneNumber); chat.ValidPhone(phone) {
		result.PhoneNumber = phone
	}

	return result
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func normalizeIntent(intent string) string {
	switch strings.ToLower(strings.TrimSpace(intent)) {
	case IntentProvideData:
		return IntentProvideData
	case IntentRefuse:
		return IntentRefuse
	default:
		return IntentOther
	}
}

func isNullish(s string) bool {
	switch strings.ToLower(s) {
	case "null", "none", "n/a":
		return true
	}
	return false
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
