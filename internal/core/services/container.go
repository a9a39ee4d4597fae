package services

import (
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/travel_insurance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, rateProvider portssvc.ExchangeRateProvider) *portssvc.ServiceContainer {
	calculator := NewInsuranceCalculator(domain.NewDailyRateTable(cfg.DailyRates), rateProvider)

	return &portssvc.ServiceContainer{
		Validator:  NewRequestValidator(),
		Calculator: calculator,
		Tariffs:    calculator,
	}
}
