package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/raitocraft/craft-service/internal/domain/dto"
	"github.com/raitocraft/craft-service/internal/domain/model"
	"github.com/raitocraft/craft-service/internal/service/cache"
)

// CalculationService defines the interface for the full cost/profit
// calculation flow over a recipe and user-entered market data.
type CalculationService interface {
	Calculate(recipe *model.Recipe, req dto.CalculateRequest) (model.CalculationResult, error)
	// InvalidateCache clears the calculation cache (useful when recipes change).
	InvalidateCache()
}

// CalculationOption configures a calculationService.
type CalculationOption func(*calculationService)

// calculationService orchestrates lot reconciliation, the cost and
// profit engines, and display formatting into a single result.
type calculationService struct {
	calculator CraftCalculator
	cache      cache.Cache
}

// NewCalculationService creates a new CalculationService with the given options.
func NewCalculationService(calculator CraftCalculator, opts ...CalculationOption) CalculationService {
	s := &calculationService{calculator: calculator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCalculationCache enables result caching with the specified capacity and TTL.
func WithCalculationCache(capacity int, ttl time.Duration) CalculationOption {
	return func(s *calculationService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCalculationCacheInterface allows injecting a custom cache implementation.
func WithCalculationCacheInterface(c cache.Cache) CalculationOption {
	return func(s *calculationService) {
		s.cache = c
	}
}

// Calculate runs the full flow: reconcile the declared price lots,
// price the recipe's materials, derive profit, and format the display
// payload. Blocking lot problems abort before any arithmetic runs.
func (s *calculationService) Calculate(recipe *model.Recipe, req dto.CalculateRequest) (model.CalculationResult, error) {
	key := calculationKey(recipe, req)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	unitPrices, lotStates, warnings, err := ReconcileLots(recipe, req.Lots, req.DesiredPacks)
	if err != nil {
		return model.CalculationResult{}, err
	}

	cost := s.calculator.CalculateCraftingCost(recipe, unitPrices, req.DesiredPacks, req.ProfessionCosts)

	// The request carries the market sell price per pack; revenue for the
	// batch is price x packs.
	sellPrices := model.SellPrices{}
	if req.MarketSellPrice != nil {
		sellPrices.Market = *req.MarketSellPrice * float64(req.DesiredPacks)
	}
	profit := s.calculator.CalculateProfit(cost, recipe, sellPrices, req.DesiredPacks)

	percent, unbounded := MarketProfitPercent(profit.ProfitMarket, cost)

	result := model.CalculationResult{
		RecipeName:          recipe.Name,
		DesiredPacks:        req.DesiredPacks,
		TotalOutputUnits:    recipe.QuantityProduced * req.DesiredPacks,
		TotalCost:           cost,
		Profit:              profit,
		MarketProfitPercent: percent,
		PercentUnbounded:    unbounded,
		Materials:           lotStates,
		Warnings:            warnings,
		Display:             buildDisplay(cost, profit, percent, unbounded),
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result, nil
}

// InvalidateCache clears the calculation cache.
func (s *calculationService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// buildDisplay renders the formatted currency strings shown alongside
// the raw numbers.
func buildDisplay(cost float64, profit model.ProfitResult, percent float64, unbounded bool) model.CalculationDisplay {
	display := model.CalculationDisplay{
		TotalCost:          FormatCurrency(cost),
		ProfitMarket:       FormatCurrency(profit.ProfitMarket),
		ProfitNPC:          FormatCurrency(profit.ProfitNPC),
		TotalRevenueMarket: FormatCurrency(profit.TotalRevenueMarket),
		TotalRevenueNPC:    FormatCurrency(profit.TotalRevenueNPC),
	}
	if unbounded {
		display.MarketProfitPercent = "(∞%)"
	} else {
		display.MarketProfitPercent = fmt.Sprintf("(%.1f%%)", percent)
	}
	return display
}

// calculationKey builds a stable cache key from the recipe identity and
// the full calculation input. The recipe's UpdatedAt is part of the key
// so edits naturally miss stale entries.
func calculationKey(recipe *model.Recipe, req dto.CalculateRequest) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(recipe.ID.Hex())
	_ = enc.Encode(recipe.UpdatedAt.UnixNano())
	_ = enc.Encode(req)
	return hex.EncodeToString(h.Sum(nil))
}
