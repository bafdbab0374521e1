package paymentfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"captionary/internal/services"
)

var payOSCfg = services.PayOSConfig{
	ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
	ApiKey:       os.Getenv("PAYOS_API_KEY"),
	ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
	ReturnURL:    os.Getenv("PAYOS_RETURN_URL"),
	CancelURL:    os.Getenv("PAYOS_CANCEL_URL"),
	ProviderName: "payos",
}

var Module = fx.Provide(
	providePaymentService)

func providePaymentService(db *gorm.DB) services.PaymentService {
	instance, err := services.NewPaymentService(db, payOSCfg)
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
	}

	return instance
}
