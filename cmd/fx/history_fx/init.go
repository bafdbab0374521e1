package historyfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"captionary/internal/repositories"
	"captionary/internal/services"
	"captionary/pkg/utils"
)

var Module = fx.Provide(
	provideCaptionRepo, provideEmbeddingClient, provideHistoryService)

func provideCaptionRepo(db *gorm.DB) repositories.ICaptionRepository {
	return repositories.NewCaptionRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	client, err := utils.NewEmbeddingClient(os.Getenv("EMBEDDING_PROVIDER"), os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Printf("Error initializing embedding client, falling back to local: %v", err)
		return utils.NewHashEmbeddingClient()
	}
	return client
}

func provideHistoryService(captions repositories.ICaptionRepository, embedding utils.EmbeddingClientInterface) services.HistoryServiceInterface {
	return services.NewHistoryService(captions, embedding)
}
