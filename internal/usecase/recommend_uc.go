package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dnicolas/tienda/internal/domain"
)

// FallbackMessage is what the chat shows whenever the recommendation call
// fails. The failure never leaves the chat feature.
const FallbackMessage = "Lo siento, no pude obtener una recomendación en este momento. Por favor, intenta de nuevo."

type RecommendUC struct {
	Recs domain.Recommender
}

// Ask forwards the user's free text plus the current (possibly filtered)
// catalog to the recommender. Any failure degrades to the fixed fallback.
func (uc *RecommendUC) Ask(ctx context.Context, userText string, catalog []domain.Product) string {
	text := strings.TrimSpace(userText)
	if text == "" || uc.Recs == nil {
		return FallbackMessage
	}
	reply, err := uc.Recs.Recommend(ctx, text, catalog)
	if err != nil {
		log.Error().Err(err).Msg("recomendación falló")
		return FallbackMessage
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackMessage
	}
	return reply
}
