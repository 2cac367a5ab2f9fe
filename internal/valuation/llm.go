package valuation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// systemPrompt encodes the valuation methodology the external model must
// follow. The statistics block it returns is ignored; only the valuation
// range and narrative are trusted.
const systemPrompt = `Eres un tasador inmobiliario experto en el mercado residencial español.
Recibirás un objeto JSON con la vivienda objetivo ("vivienda") y una lista de testigos comparables ("comparables").

Metodología obligatoria:
1. Descarta los comparables cuya superficie difiera más de un 25% de la vivienda objetivo.
2. Calcula el precio por m² de cada comparable restante y obtén media, mediana y desviación típica.
3. Aplica ajustes heurísticos acotados: estado de conservación (obra-nueva +8%, a-reformar -12%, máximo ±12%), ausencia de ascensor a partir de planta 2 (-8%), desviación de planta respecto al objetivo (±3% por planta, máximo ±6%), antigüedad relativa (±0,5% por año, máximo ±10%).
4. precio_min = (media - desviación) × superficie; precio_max = (media + desviación) × superficie; precio_sugerido = mediana × superficie con los ajustes del punto 3 aplicados.
5. confianza = "alta" si hay al menos 12 comparables y la desviación es inferior al 15% de la mediana; "media" si hay al menos 6 comparables; "baja" en otro caso.

Responde únicamente con JSON válido, sin texto adicional, con una de estas formas:
- {"faltan_datos": ["campo", ...]} si faltan campos imprescindibles de la vivienda.
- {"sin_comparables": "motivo"} si ningún comparable resulta utilizable.
- {"valoracion": {"precio_min": N, "precio_max": N, "precio_sugerido": N, "precio_m2_sugerido": N, "confianza": "alta|media|baja"}, "metodologia": "resumen breve"} en caso contrario.`

// LLMStrategy delegates the valuation to an OpenAI-compatible
// chat-completions endpoint. The credential is injected configuration; the
// HTTP client always carries a timeout and every call takes a context.
type LLMStrategy struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// LLMOption configures the LLMStrategy.
type LLMOption func(*LLMStrategy)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) LLMOption {
	return func(s *LLMStrategy) {
		s.client = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) LLMOption {
	return func(s *LLMStrategy) {
		s.client.Timeout = d
	}
}

// NewLLMStrategy creates the delegated strategy. The endpoint is the API
// base URL without the /v1/chat/completions suffix.
func NewLLMStrategy(endpoint, model, apiKey string, opts ...LLMOption) *LLMStrategy {
	s := &LLMStrategy{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	ResponseFmt *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type valuationInput struct {
	Vivienda    models.PropertyInfo         `json:"vivienda"`
	Comparables []models.ComparableProperty `json:"comparables"`
}

// Valuate sends the target and comparables to the model and parses its JSON
// reply into one of the three result shapes. Any transport or parse failure
// is returned as an error for the orchestrator to recover from; there is no
// retry at this layer.
func (s *LLMStrategy) Valuate(ctx context.Context, target models.PropertyInfo, comparables []models.ComparableProperty) (*models.ValuationResult, error) {
	input, err := json.Marshal(valuationInput{Vivienda: target, Comparables: comparables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal valuation input: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(input)},
		},
		Temperature: 0.2,
		ResponseFmt: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in chat completion response")
	}

	return parseModelReply(chat.Choices[0].Message.Content, target, comparables)
}

// parseModelReply maps the assistant's JSON content onto one of the three
// result cases. Unparseable content is a strategy failure.
func parseModelReply(content string, target models.PropertyInfo, comparables []models.ComparableProperty) (*models.ValuationResult, error) {
	var reply models.ValuationResult
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("model reply is not valid JSON: %w", err)
	}

	if len(reply.FaltanDatos) > 0 {
		return models.NewMissingFieldsResult(reply.FaltanDatos...), nil
	}
	if reply.SinComparables != "" {
		return models.NewNoComparablesResult(reply.SinComparables), nil
	}
	if reply.Valoracion == nil {
		return nil, fmt.Errorf("model reply has no valuation block")
	}

	stats := ComputeStats(comparables)
	if reply.Valoracion.Confianza == "" {
		reply.Valoracion.Confianza = ConfidenceFor(stats.N, stats.DesviacionM2, stats.MedianaM2)
	}

	result := models.NewValuedResult(target, *reply.Valoracion, stats)
	result.Metodologia = reply.Metodologia
	return result, nil
}
