// Package app provides service initialization.
package app

import (
	"github.com/raitocraft/craft-service/config"
	"github.com/raitocraft/craft-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator  service.CraftCalculator
	Calculation service.CalculationService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	calculator := service.NewCraftCalculatorService()

	var opts []service.CalculationOption
	if cfg.Size > 0 {
		opts = append(opts, service.WithCalculationCache(cfg.Size, cfg.TTL))
	}
	calculation := service.NewCalculationService(calculator, opts...)

	return &ServiceComponents{
		Calculator:  calculator,
		Calculation: calculation,
	}
}
