// Package recs bridges the chat assistant to OpenAI. It is stateless per
// request and fully isolated from cart and order state: a failure here is
// always recoverable.
package recs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/dnicolas/tienda/internal/domain"
)

// Defensive cap so a hung call cannot pin a chat request forever.
const requestTimeout = 25 * time.Second

const systemPrompt = "Eres un asistente de compras virtual amigable y servicial para " +
	"\"DISTRIBUCIONES NICOLAS\", una tienda en línea que vende productos de farmacia y limpieza. " +
	"Tu tono debe ser cercano y profesional."

type Gateway struct {
	client *openai.Client
	model  string
}

func NewGateway(apiKey, model string) *Gateway {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Gateway{client: openai.NewClient(apiKey), model: model}
}

func (g *Gateway) Recommend(ctx context.Context, userText string, catalog []domain.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var b strings.Builder
	for _, p := range catalog {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Description)
	}

	prompt := fmt.Sprintf(`Tu tarea es recomendar productos basándote en la necesidad del usuario.
Comienza tu respuesta con un saludo amigable.

Aquí está la lista de productos disponibles con sus descripciones:
%s
Necesidad del usuario: %q

Recomienda de 1 a 3 productos de la lista proporcionada que sean más relevantes.
Para cada recomendación, menciona el nombre exacto del producto y explica
brevemente por qué es una buena opción en 1 o 2 frases.
Si ningún producto parece adecuado, explica amablemente que no encontraste una
coincidencia y sugiere que exploren el catálogo.
No uses markdown. Utiliza saltos de línea para separar las recomendaciones.`, b.String(), userText)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   600,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("respuesta vacía del modelo")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Debug().Int("productos", len(catalog)).Int("chars", len(reply)).Msg("recomendación generada")
	return reply, nil
}
