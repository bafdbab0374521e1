package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"captionary/internal/models/db_models"
	"captionary/internal/models/request_models"
	"captionary/internal/models/response_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

const defaultHistoryLimit = 10

type HistoryServiceInterface interface {
	HistoryRecorder
	ListHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]response_models.CaptionHistoryEntry, error)
	FindSimilar(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]response_models.CaptionHistoryEntry, error)
}

type HistoryService struct {
	captions  repositories.ICaptionRepository
	embedding utils.EmbeddingClientInterface
}

func NewHistoryService(captions repositories.ICaptionRepository, embedding utils.EmbeddingClientInterface) HistoryServiceInterface {
	return &HistoryService{captions: captions, embedding: embedding}
}

// RecordGeneration persists the winning variant of a completed generation.
// The media description is embedded so the row is reachable through
// similarity search later.
func (s *HistoryService) RecordGeneration(ctx context.Context, accountID, requestID uuid.UUID, provider string,
	req request_models.GenerateCaptionRequest, variant response_models.CaptionVariant) error {

	reqSnapshot, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request snapshot: %w", err)
	}
	variantSnapshot, err := json.Marshal(variant)
	if err != nil {
		return fmt.Errorf("marshal variant snapshot: %w", err)
	}

	embedding, err := s.embedding.GetEmbedding(ctx, req.MediaDescription)
	if err != nil {
		return fmt.Errorf("embed media description: %w", err)
	}

	row := &db_models.Caption{
		AccountID:       accountID,
		RequestID:       requestID,
		CaptionText:     variant.Caption,
		Hashtags:        variant.Hashtags,
		AltText:         variant.AltText,
		Tone:            variant.Tone,
		Provider:        provider,
		QualityScore:    variant.QualityScore,
		RequestSnapshot: reqSnapshot,
		VariantSnapshot: variantSnapshot,
		Embedding:       embedding,
	}

	if err := s.captions.Save(ctx, row); err != nil {
		return fmt.Errorf("save caption: %w", err)
	}
	return nil
}

func (s *HistoryService) ListHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]response_models.CaptionHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := s.captions.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toHistoryEntries(rows), nil
}

func (s *HistoryService) FindSimilar(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]response_models.CaptionHistoryEntry, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	embedding, err := s.embedding.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.captions.FindSimilar(ctx, accountID, embedding, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toHistoryEntries(rows), nil
}

func toHistoryEntries(rows []db_models.Caption) []response_models.CaptionHistoryEntry {
	entries := make([]response_models.CaptionHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, response_models.CaptionHistoryEntry{
			ID:           row.ID.String(),
			Caption:      row.CaptionText,
			Hashtags:     row.Hashtags,
			AltText:      row.AltText,
			Tone:         row.Tone,
			Provider:     row.Provider,
			QualityScore: row.QualityScore,
			CreatedAt:    row.CreatedAt,
		})
	}
	return entries
}
