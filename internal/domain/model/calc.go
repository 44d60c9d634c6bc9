package model

// SellPrices carries the aggregated revenue inputs for a profit
// calculation. Market is the total market revenue for the whole batch
// (unit sell price x desired packs, already aggregated by the caller).
type SellPrices struct {
	Market float64 `json:"market"`
}

// ProfitResult is the outcome of a profit calculation. Values may be
// negative; a loss is a valid, meaningful result.
//
// @Description Profit projection for both market and NPC sale
type ProfitResult struct {
	// ProfitMarket is total market revenue minus crafting cost.
	ProfitMarket float64 `json:"profit_market" example:"20"`
	// ProfitNPC is total NPC revenue minus crafting cost.
	ProfitNPC float64 `json:"profit_npc" example:"10"`
	// TotalRevenueMarket is the user-entered market revenue for the batch.
	TotalRevenueMarket float64 `json:"total_revenue_market" example:"50"`
	// TotalRevenueNPC is recipe NPC sell price x desired packs.
	TotalRevenueNPC float64 `json:"total_revenue_npc" example:"40"`
} // @name ProfitResult

// EmptyProfit returns an all-zero profit result, used for the soft-fail
// path when the recipe or pack count is invalid.
func EmptyProfit() ProfitResult {
	return ProfitResult{}
}

// LotStatus classifies a material's declared lot quantities against the
// quantity required for the current pack count.
type LotStatus string

const (
	// LotStatusValid means declared lots exactly cover the requirement.
	LotStatusValid LotStatus = "valid"
	// LotStatusWarning means lots under-cover the requirement; calculation
	// may proceed but the cost understates the real total.
	LotStatusWarning LotStatus = "warning"
	// LotStatusInvalid means lots over-cover the requirement, which signals
	// double-counting and blocks the final calculation.
	LotStatusInvalid LotStatus = "invalid"
)

// PriceLot is one declared purchase batch of a material. Fields are
// pointers so a blank input is distinguishable from an explicit zero:
// a fully blank lot is skipped, a half-filled lot is a data-entry error.
type PriceLot struct {
	UnitPrice   *float64 `json:"unit_price,omitempty" example:"10"`
	LotQuantity *int     `json:"lot_quantity,omitempty" example:"5"`
} // @name PriceLot

// Blank reports whether both fields are unset.
func (l PriceLot) Blank() bool {
	return l.UnitPrice == nil && l.LotQuantity == nil
}

// MaterialLotState is the per-material reconciliation snapshot returned
// alongside a calculation so clients can render validation feedback.
type MaterialLotState struct {
	MaterialName string    `json:"material_name"`
	TotalNeeded  int       `json:"total_needed"`
	DeclaredSum  int       `json:"declared_sum"`
	Status       LotStatus `json:"status"`
	// AverageUnitPrice is the quantity-weighted average over usable lots.
	AverageUnitPrice float64 `json:"average_unit_price"`
} // @name MaterialLotState

// CalculationResult is the complete outcome of a cost/profit run.
//
// @Description Crafting cost and profit projection for a recipe batch
type CalculationResult struct {
	RecipeName       string  `json:"recipe_name" example:"Ice Sword"`
	DesiredPacks     int     `json:"desired_packs" example:"5"`
	TotalOutputUnits int     `json:"total_output_units" example:"5"`
	TotalCost        float64 `json:"total_cost" example:"30"`

	Profit ProfitResult `json:"profit"`

	// MarketProfitPercent is profit relative to cost (profit/cost*100).
	// When cost is zero and profit is positive the ratio is unbounded:
	// PercentUnbounded is set and MarketProfitPercent is left at zero.
	MarketProfitPercent float64 `json:"market_profit_percent" example:"66.7"`
	PercentUnbounded    bool    `json:"percent_unbounded,omitempty"`

	// Materials carries the per-material reconciliation states.
	Materials []MaterialLotState `json:"materials"`

	// Warnings lists non-blocking advisories (under-covered lots).
	Warnings []string `json:"warnings,omitempty"`

	// Display carries pre-formatted strings for the UI.
	Display CalculationDisplay `json:"display"`
} // @name CalculationResult

// CalculationDisplay holds locale-formatted renderings of the result.
type CalculationDisplay struct {
	TotalCost           string `json:"total_cost" example:"30"`
	ProfitMarket        string `json:"profit_market" example:"20"`
	ProfitNPC           string `json:"profit_npc" example:"10"`
	TotalRevenueMarket  string `json:"total_revenue_market" example:"50"`
	TotalRevenueNPC     string `json:"total_revenue_npc" example:"40"`
	MarketProfitPercent string `json:"market_profit_percent" example:"(66.7%)"`
} // @name CalculationDisplay
