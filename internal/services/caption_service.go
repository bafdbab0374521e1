package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"captionary/internal/models/request_models"
	"captionary/internal/models/response_models"
	"captionary/internal/repositories"
	mem "captionary/pkg/memcache"
	"captionary/pkg/utils"
)

const defaultProviderTimeout = 30 * time.Second

// HistoryRecorder is the persistence collaborator the engine hands the
// winning variant to. Best-effort: failures never fail the generation.
type HistoryRecorder interface {
	RecordGeneration(ctx context.Context, accountID, requestID uuid.UUID, provider string,
		req request_models.GenerateCaptionRequest, variant response_models.CaptionVariant) error
}

type CaptionServiceInterface interface {
	GenerateCaptions(ctx context.Context, accountID uuid.UUID, sub SubscriptionInfo,
		req request_models.GenerateCaptionRequest) (*response_models.CaptionGenerationResponse, error)
}

// CaptionEngineConfig tunes the engine. Zero values fall back to defaults.
type CaptionEngineConfig struct {
	ProviderTimeout time.Duration
	Now             func() time.Time
}

// CaptionService sequences a generation: quota check, provider routing,
// provider call, ranking, history write, in that order. Stateless across
// requests except for the per-account single-flight guard.
type CaptionService struct {
	ledger    repositories.IUsageLedger
	providers map[utils.CaptionProvider]utils.CaptionProviderInterface
	router    *CostRouter
	ranker    *VariantRanker
	history   HistoryRecorder
	inflight  mem.InflightStore

	providerTimeout time.Duration
	now             func() time.Time
}

func NewCaptionService(
	ledger repositories.IUsageLedger,
	providers map[utils.CaptionProvider]utils.CaptionProviderInterface,
	router *CostRouter,
	ranker *VariantRanker,
	history HistoryRecorder,
	inflight mem.InflightStore,
	cfg CaptionEngineConfig,
) CaptionServiceInterface {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CaptionService{
		ledger:          ledger,
		providers:       providers,
		router:          router,
		ranker:          ranker,
		history:         history,
		inflight:        inflight,
		providerTimeout: cfg.ProviderTimeout,
		now:             cfg.Now,
	}
}

// GenerateCaptions runs one generation end to end.
//
// The quota unit is consumed before the provider call and is not refunded if
// the provider fails: a consumed attempt counts. History persistence is
// fire-and-forget; once quota is committed and variants exist, the caller
// sees success regardless of the history write.
func (s *CaptionService) GenerateCaptions(ctx context.Context, accountID uuid.UUID, sub SubscriptionInfo,
	req request_models.GenerateCaptionRequest) (*response_models.CaptionGenerationResponse, error) {

	if err := ValidateWizardSelections(req); err != nil {
		return nil, err
	}

	// At most one in-flight generation per account; concurrent submissions
	// are rejected, not queued.
	if !s.inflight.Begin(accountID) {
		return nil, utils.ErrGenerationBusy
	}
	defer s.inflight.End(accountID)

	limit, err := LimitFor(sub.Tier)
	if err != nil {
		return nil, err
	}

	periodKey := utils.PeriodKeyFor(s.now())
	consume, err := s.ledger.TryConsume(ctx, accountID, periodKey, limit)
	if err != nil {
		// Entitlement unknown: abort rather than guess.
		return nil, fmt.Errorf("%w: %v", utils.ErrLedgerUnavailable, err)
	}
	if !consume.Granted {
		log.Printf("quota exceeded: account=%s period=%s limit=%d", accountID, periodKey, limit)
		return nil, utils.ErrQuotaExceeded
	}

	provider := s.router.SelectProvider(req)
	client, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: no client registered for provider %q", utils.ErrGenerationFailed, provider)
	}

	log.Printf("generating: account=%s provider=%s est_cost=%.3f remaining=%d",
		accountID, provider, s.router.EstimatedCost(req, provider), consume.RemainingAfter)

	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	started := s.now()
	candidates, err := client.GenerateCaptions(callCtx, utils.CaptionFields{
		Mood:             req.Mood,
		MediaDescription: req.MediaDescription,
		Goal:             req.Goal,
		Tone:             req.Tone,
		Platform:         req.Platform,
	})
	processing := time.Since(started)

	if err != nil {
		log.Printf("provider call failed: account=%s provider=%s after=%s err=%v", accountID, provider, processing, err)
		if utils.IsTransientProviderError(err) {
			return nil, fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: provider %s returned no candidates", utils.ErrProviderUnavailable, provider)
	}

	variants := s.ranker.Rank(candidates, req)
	requestID := uuid.New()

	// Best-effort history write; never blocks user-visible success.
	go s.recordHistory(accountID, requestID, string(provider), req, variants[0])

	return &response_models.CaptionGenerationResponse{
		Variants:       variants,
		RequestID:      requestID.String(),
		ProcessingTime: processing.Seconds(),
		Provider:       string(provider),
	}, nil
}

func (s *CaptionService) recordHistory(accountID, requestID uuid.UUID, provider string,
	req request_models.GenerateCaptionRequest, best response_models.CaptionVariant) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.history.RecordGeneration(ctx, accountID, requestID, provider, req, best); err != nil {
		log.Printf("history-write-failed: account=%s request=%s err=%v", accountID, requestID, err)
	}
}
