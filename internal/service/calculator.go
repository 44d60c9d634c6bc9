package service

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

// CraftCalculator defines the interface for cost and profit calculations.
type CraftCalculator interface {
	// CalculateCraftingCost computes the total material cost of crafting
	// desiredPacks packs of the recipe, given per-unit market prices for
	// drop/buy materials and optional per-unit overrides for profession
	// materials. Never fails: invalid input degrades to 0.
	CalculateCraftingCost(recipe *model.Recipe, unitMarketPrices map[string]float64, desiredPacks int, professionOverrides map[string]float64) float64

	// CalculateProfit derives market and NPC profit from a computed cost.
	// Never fails: invalid input degrades to an all-zero result.
	CalculateProfit(cost float64, recipe *model.Recipe, sellPrices model.SellPrices, desiredPacks int) model.ProfitResult
}

// CraftCalculatorService implements CraftCalculator as pure arithmetic
// over a snapshot of user input. Soft-invalid input (missing recipe,
// non-positive pack count, missing prices) degrades to zero with a
// logged warning so the caller stays non-blocking.
type CraftCalculatorService struct{}

// NewCraftCalculatorService creates a new CraftCalculatorService.
func NewCraftCalculatorService() *CraftCalculatorService {
	return &CraftCalculatorService{}
}

// CalculateCraftingCost sums the cost contribution of every material line.
//
// Drop/buy materials contribute totalNeeded x unit market price; a missing
// or negative price contributes 0 and logs a warning. Profession materials
// contribute only when an override is present and non-negative; absence of
// an override is a valid default (self-supplied, free), not an error.
func (s *CraftCalculatorService) CalculateCraftingCost(recipe *model.Recipe, unitMarketPrices map[string]float64, desiredPacks int, professionOverrides map[string]float64) float64 {
	if recipe == nil || len(recipe.Materials) == 0 || desiredPacks <= 0 {
		log.Warn().
			Int("desired_packs", desiredPacks).
			Bool("has_recipe", recipe != nil).
			Msg("Invalid input for crafting cost, returning 0")
		return 0
	}

	var totalCost float64
	for _, material := range recipe.Materials {
		totalNeeded := float64(material.TotalNeeded(desiredPacks))

		switch {
		case material.MaterialType.Purchasable():
			price, ok := unitMarketPrices[material.MaterialName]
			if !ok || price < 0 || math.IsNaN(price) {
				log.Warn().
					Str("material", material.MaterialName).
					Msg("Missing or invalid unit market price, using 0")
				price = 0
			}
			totalCost += totalNeeded * price

		case material.MaterialType == model.MaterialTypeProfession:
			if override, ok := professionOverrides[material.MaterialName]; ok && override >= 0 && !math.IsNaN(override) {
				totalCost += totalNeeded * override
			}
		}
	}

	return totalCost
}

// CalculateProfit compares the crafting cost against the two revenue
// models: the user-entered market total and the recipe's NPC price times
// pack count. Results are not floored or clamped; a negative profit is a
// meaningful loss.
func (s *CraftCalculatorService) CalculateProfit(cost float64, recipe *model.Recipe, sellPrices model.SellPrices, desiredPacks int) model.ProfitResult {
	if recipe == nil || desiredPacks <= 0 {
		log.Warn().
			Int("desired_packs", desiredPacks).
			Bool("has_recipe", recipe != nil).
			Msg("Invalid input for profit calculation, returning zeros")
		return model.EmptyProfit()
	}

	totalRevenueMarket := sellPrices.Market
	totalRevenueNPC := float64(recipe.NpcSellPrice * desiredPacks)

	return model.ProfitResult{
		ProfitMarket:       totalRevenueMarket - cost,
		ProfitNPC:          totalRevenueNPC - cost,
		TotalRevenueMarket: totalRevenueMarket,
		TotalRevenueNPC:    totalRevenueNPC,
	}
}

// MarketProfitPercent frames the market profit relative to cost
// (profit/cost*100). When cost is zero the ratio is undefined:
// a positive profit is unbounded (reported via the bool), anything
// else is 0.
func MarketProfitPercent(profit, cost float64) (percent float64, unbounded bool) {
	if cost > 0 {
		return profit / cost * 100, false
	}
	if profit > 0 {
		return 0, true
	}
	return 0, false
}
