// Package ai talks to Gemini. Every call follows the same shape: build a
// prompt, constrain the response to a JSON schema, decode defensively. A
// failed call or a malformed reply degrades to the documented fallback and
// is never surfaced as an error to the caller.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"almacen-pos/internal/models"
	logx "almacen-pos/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gateway is the client for all four advisory operations.
type Gateway struct {
	client *genai.Client
	model  string
}

// NewGateway dials Gemini with the given API key.
func NewGateway(ctx context.Context, apiKey, model string) (*Gateway, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Gateway{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	return g.client.Close()
}

// generate runs one schema-constrained generation and decodes the reply,
// returning fallback on any failure.
func generate[T any](ctx context.Context, g *Gateway, schema *genai.Schema, fallback T, parts ...genai.Part) T {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		logx.Warn().Err(err).Msg("gemini call failed, using fallback")
		return fallback
	}
	return decode(resp, fallback)
}

// decode extracts the text part of the response and unmarshals it into T.
func decode[T any](resp *genai.GenerateContentResponse, fallback T) T {
	raw := responseText(resp)
	if raw == "" {
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logx.Warn().Err(err).Str("raw", raw).Msg("gemini reply is not the expected JSON, using fallback")
		return fallback
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt)
			}
		}
	}
	return ""
}

var saleLinesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"product_id": {Type: genai.TypeString},
			"quantity":   {Type: genai.TypeInteger},
		},
		Required: []string{"product_id", "quantity"},
	},
}

var insightsSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

var strategiesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Description: "offer, liquidation or bundle"},
			"impact":      {Type: genai.TypeString, Description: "high or medium"},
		},
		Required: []string{"title", "description", "type", "impact"},
	},
}

// defaultInsights keeps the dashboard alive when the model is unreachable.
var defaultInsights = []string{"¡Seguí así!", "Revisá el stock.", "Anotá todo."}

func inventoryIndex(inventory []models.Product) string {
	entries := make([]string, 0, len(inventory))
	for _, p := range inventory {
		entries = append(entries, fmt.Sprintf("%s (ID: %s)", p.Name, p.ID))
	}
	return strings.Join(entries, ", ")
}

// ParseSaleText asks the model to match a free-text sale description
// against the catalog. Unknown products come back empty, never as an error.
func (g *Gateway) ParseSaleText(ctx context.Context, message string, inventory []models.Product) []models.SaleLine {
	prompt := fmt.Sprintf(`Sos un asistente para un almacén en Uruguay. Analizá este mensaje de venta y extraé los productos y cantidades.

Inventario disponible:
%s

Mensaje del usuario: %q

Respondé solo con un JSON que sea un array de objetos: [{ "product_id": string, "quantity": number }].
Si no encontrás el producto exacto, intentá matchear con el más parecido del inventario.`,
		inventoryIndex(inventory), message)

	return generate(ctx, g, saleLinesSchema, []models.SaleLine(nil), genai.Text(prompt))
}

// ParseSaleImage does the same for a photo of the sale (a handwritten note,
// a receipt, the counter).
func (g *Gateway) ParseSaleImage(ctx context.Context, image []byte, mimeType string, inventory []models.Product) []models.SaleLine {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	prompt := fmt.Sprintf(`Extraé ventas basándote en este inventario: %s. JSON: [{ "product_id": string, "quantity": number }]`,
		inventoryIndex(inventory))

	return generate(ctx, g, saleLinesSchema, []models.SaleLine(nil),
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(prompt),
	)
}

// Insights returns three short pieces of advice for the shopkeeper.
func (g *Gateway) Insights(ctx context.Context, sales []models.Sale, inventory []models.Product) []string {
	type stockRow struct {
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	}
	rows := make([]stockRow, 0, len(inventory))
	for _, p := range inventory {
		rows = append(rows, stockRow{Name: p.Name, Stock: p.Stock})
	}
	stock, _ := json.Marshal(rows)

	prompt := fmt.Sprintf(`Sos un asesor experto en almacenes uruguayos.
Analizá estos datos y dame 3 consejos cortos en español rioplatense (usá "che", "tenés", "viste").
Ventas registradas: %d
Stock actual: %s
Respondé solo un array JSON de strings.`, len(sales), stock)

	return generate(ctx, g, insightsSchema, defaultInsights, genai.Text(prompt))
}

// Strategies returns merchandising suggestions to move slow stock.
func (g *Gateway) Strategies(ctx context.Context, inventory []models.Product, sales []models.Sale) []models.Strategy {
	type priceRow struct {
		Name  string  `json:"name"`
		Stock int     `json:"stock"`
		Price float64 `json:"price"`
	}
	rows := make([]priceRow, 0, len(inventory))
	for _, p := range inventory {
		rows = append(rows, priceRow{Name: p.Name, Stock: p.Stock, Price: p.SellingPrice})
	}
	data, _ := json.Marshal(rows)

	prompt := fmt.Sprintf(`Sos un estratega de ventas para almacenes de barrio en Uruguay.
Tu objetivo es ayudar al almacenero a ganar más plata y mover el stock que no se vende.

Datos de inventario: %s
Ventas registradas: %d

Identificá productos con mucho stock y sugerí 3 estrategias claras (combos, ofertas, liquidación).
Usá lenguaje uruguayo ("¡Meté un combo!", "Liquidá esto").

Respondé un array JSON de objetos con: title, description, type (offer|liquidation|bundle), impact (high|medium).`,
		data, len(sales))

	return generate(ctx, g, strategiesSchema, []models.Strategy(nil), genai.Text(prompt))
}
