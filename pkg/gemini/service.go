package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cropadvisor-backend/internal/apperr"
)

// systemInstruction keeps Ileana, the in-app assistant, scoped to practical
// farming guidance for Indian conditions.
const systemInstruction = `You are Ileana, an intelligent, friendly, highly reliable AI farming assistant built to support Indian farmers, agricultural students, and beginners.

Your mission is to:
- Simplify farming
- Prevent crop loss
- Increase yield
- Educate new farmers
- Provide accurate, actionable, and practical agricultural guidance

You are not a generic chatbot. You are a domain-specialized agricultural expert for Indian conditions.

Core Capabilities:
- Weather & Climate: Current weather, Weekly forecasts, Crop-specific weather advice, Alerts for extreme conditions.
- Crop Guidance: Crop selection, Sowing time, Spacing, Irrigation, Harvesting tips, Intercropping.
- Fertilizer & Pesticide Recommendations: Organic & chemical suggestions, Dosage, Timing, Safety precautions. Always include safe-use disclaimers.
- Disease & Pest Diagnosis: Identify from descriptions or images (ask for image if needed), Explain Symptoms, Cause, Prevention, Treatment.
- Market & Government Info: Market trends, MSP, Schemes, Subsidies.
- Learning Resources: Suggest YouTube videos or articles.

Language Rules:
- Multilingual First: Respond in the same language as the user (Telugu, Tamil, Kannada, Hindi, English, Marathi, etc.).
- Keep language simple, farmer-friendly, no jargon unless explained.

Tone:
- Warm, respectful, encouraging.
- Speak like a knowledgeable farming friend.
- Use bullet points for clarity.

Safety:
- Never give harmful, illegal, or unsafe instructions.
- Encourage soil testing and expert consultation when needed.

UI/UX Context:
- You are a popup chatbot. Keep responses concise where possible, but thorough enough to be helpful.
- Suggest next steps if the user is a beginner.

If asked about something unrelated to farming/agriculture/rural life, politely steer the conversation back to farming.`

// Turn is one prior conversation turn. Role is "user" or "model".
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type Service struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey, baseURL: defaultBaseURL, client: &http.Client{}}
}

// Chat relays a message plus prior history to the hosted model and returns
// the reply text. Quota and overload errors keep their upstream flavor so
// the delivery layer can map them to 429/503.
func (s *Service) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	url := s.baseURL + "/v1beta/models/gemini-flash-latest:generateContent?key=" + s.apiKey

	contents := make([]Turn, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, Turn{
		Role:  "user",
		Parts: []Part{{Text: message}},
	})

	payload := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []Part{{Text: systemInstruction}},
		},
		"contents": contents,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", apperr.Wrap(apperr.ErrUpstream, fmt.Sprintf("gemini API error %d: %s", resp.StatusCode, string(respBody)))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []Part `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", apperr.Wrap(apperr.ErrUpstream, "gemini response decode: "+err.Error())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", apperr.Wrap(apperr.ErrUpstream, "no reply returned")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// IsQuotaError reports whether the upstream failure was a rate/quota limit.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "exhausted") || strings.Contains(msg, "quota")
}

// IsOverloadedError reports whether the upstream model was overloaded.
func IsOverloadedError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "503") || strings.Contains(msg, "overloaded")
}
