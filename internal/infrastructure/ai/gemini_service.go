// Package ai contiene el adaptador del asistente respaldado por la API REST
// de Google Gemini.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Thahab-api/internal/application/ports"
	"github.com/jhoicas/Thahab-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa AdvisorService.
var _ ports.AdvisorService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// describePromptTmpl prompt en árabe para el texto comercial de una pieza.
	// La salida se publica tal cual en redes sociales, por eso se pide árabe
	// listo para publicar.
	describePromptTmpl = `اكتب وصفاً تسويقياً جذاباً وقصيراً لقطعة مجوهرات بالمواصفات التالية لمحلات ذهب:
النوع: %s
العيار: %s
الوزن: %s جرام
التصنيف: %s

الرد يجب أن يكون باللغة العربية وجاهز للنشر على وسائل التواصل الاجتماعي.`

	// analyzePromptTmpl prompt en árabe para el análisis de tendencias; recibe
	// la muestra de ventas serializada como JSON.
	analyzePromptTmpl = `بصفتك خبير اقتصادي في سوق الذهب، قم بتحليل بيانات المبيعات التالية وقدم نصائح باللغة العربية للمدير:
%s

ركز على:
1. العيارات الأكثر مبيعاً.
2. نصيحة للمخزون.
3. نصيحة تسويقية.
اجعل الرد مختصراً في نقاط.`

	// Campos en árabe cuando una pieza borrador llega incompleta.
	unspecified     = "غير محدد"
	generalCategory = "عام"
)

// GeminiService adaptador que implementa AdvisorService llamando a la API REST
// de Google Gemini. Usa únicamente net/http; no requiere el SDK oficial.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
// Si apiKey está vacío las llamadas devuelven error descriptivo; el caso de
// uso lo degrada al texto fijo de cortesía.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// DescribeProduct redacta el texto comercial en árabe de una pieza de joyería.
func (s *GeminiService) DescribeProduct(ctx context.Context, p entity.Product) (string, error) {
	name := p.Name
	if name == "" {
		name = unspecified
	}
	karat := string(p.Karat)
	if karat == "" {
		karat = unspecified
	}
	category := p.Category
	if category == "" {
		category = generalCategory
	}
	prompt := fmt.Sprintf(describePromptTmpl, name, karat, p.Weight.String(), category)
	return s.generate(ctx, prompt, 512)
}

// SummarizeSales analiza la muestra de ventas y devuelve consejos en árabe.
func (s *GeminiService) SummarizeSales(ctx context.Context, sales []entity.Sale) (string, error) {
	sample, err := json.Marshal(sales)
	if err != nil {
		return "", fmt.Errorf("AI: serializar muestra de ventas: %w", err)
	}
	prompt := fmt.Sprintf(analyzePromptTmpl, string(sample))
	return s.generate(ctx, prompt, 1024)
}

// generate envía un prompt de un solo turno y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			MaxOutputTokens: maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
