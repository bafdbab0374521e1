package captionfx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"captionary/internal/repositories"
	"captionary/internal/services"
	mem "captionary/pkg/memcache"
	"captionary/pkg/utils"
)

var Module = fx.Provide(
	provideProviders,
	provideInflightGuards,
	provideRouter,
	provideRanker,
	provideCaptionService,
)

// provideProviders builds the provider registry from the keys present in the
// environment. A missing key means that provider is simply not registered;
// routing to it then fails the generation rather than the boot.
func provideProviders() map[utils.CaptionProvider]utils.CaptionProviderInterface {
	providers := make(map[utils.CaptionProvider]utils.CaptionProviderInterface)

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client, err := utils.NewCaptionProvider("openai", key, os.Getenv("OPENAI_MODEL"))
		if err != nil {
			log.Printf("Error initializing openai provider: %v", err)
		} else {
			providers[client.Name()] = client
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewCaptionProvider("gemini", key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Error initializing gemini provider: %v", err)
		} else {
			providers[client.Name()] = client
		}
	}

	if len(providers) == 0 {
		log.Printf("Warning: no caption providers configured, generation will fail")
	}

	return providers
}

func provideInflightGuards() mem.InflightStore {
	return mem.NewInflightGuards()
}

func provideRouter() *services.CostRouter {
	return services.NewCostRouter()
}

func provideRanker() *services.VariantRanker {
	return services.NewVariantRanker()
}

func provideCaptionService(
	ledger repositories.IUsageLedger,
	providers map[utils.CaptionProvider]utils.CaptionProviderInterface,
	router *services.CostRouter,
	ranker *services.VariantRanker,
	history services.HistoryServiceInterface,
	inflight mem.InflightStore,
) services.CaptionServiceInterface {
	return services.NewCaptionService(ledger, providers, router, ranker, history, inflight,
		services.CaptionEngineConfig{})
}
