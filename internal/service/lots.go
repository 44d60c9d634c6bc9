package service

import (
	"fmt"

	"github.com/raitocraft/craft-service/internal/domain/model"
)

// OverCoverageError reports lots that declare more units than the recipe
// requires. Over-coverage blocks the calculation because the averaged
// unit price would be diluted by units that are never consumed.
type OverCoverageError struct {
	MaterialName string
	DeclaredSum  int
	TotalNeeded  int
}

func (e *OverCoverageError) Error() string {
	return fmt.Sprintf("lots for %q declare %d units but the recipe requires %d", e.MaterialName, e.DeclaredSum, e.TotalNeeded)
}

// MalformedLotError reports a lot with exactly one of its two fields
// filled in. A half-filled lot is ambiguous, so it blocks instead of
// being silently skipped like a fully blank one.
type MalformedLotError struct {
	MaterialName string
	UnitPrice    *float64
	LotQuantity  *int
}

func (e *MalformedLotError) Error() string {
	if e.UnitPrice != nil {
		return fmt.Sprintf("lot for %q has unit price %.2f but no quantity", e.MaterialName, *e.UnitPrice)
	}
	return fmt.Sprintf("lot for %q has quantity %d but no unit price", e.MaterialName, *e.LotQuantity)
}

// LotValueError reports a lot whose fields are filled in but out of
// range. A negative price would subtract cost; a non-positive quantity
// is a data-entry mistake, not an empty row.
type LotValueError struct {
	MaterialName string
	UnitPrice    float64
	LotQuantity  int
}

func (e *LotValueError) Error() string {
	return fmt.Sprintf("lot for %q has unit price %.2f and quantity %d; price must be at least 0 and quantity above 0",
		e.MaterialName, e.UnitPrice, e.LotQuantity)
}

// ClassifyLots compares the declared lot coverage against the required
// total for one material. Exact coverage is valid, under-coverage is a
// non-blocking warning, over-coverage is invalid.
func ClassifyLots(lots []model.PriceLot, totalNeeded int) (declaredSum int, status model.LotStatus) {
	for _, lot := range lots {
		if lot.LotQuantity != nil {
			declaredSum += *lot.LotQuantity
		}
	}

	switch {
	case declaredSum > totalNeeded:
		return declaredSum, model.LotStatusInvalid
	case declaredSum < totalNeeded:
		return declaredSum, model.LotStatusWarning
	default:
		return declaredSum, model.LotStatusValid
	}
}

// WeightedAverage computes the quantity-weighted average unit price over
// the usable lots. Fully blank lots are skipped; a half-filled lot or one
// with a negative price or non-positive quantity is a blocking error.
// Zero usable quantity yields 0.
func WeightedAverage(materialName string, lots []model.PriceLot) (float64, error) {
	var totalValue float64
	var totalQuantity int

	for _, lot := range lots {
		if lot.Blank() {
			continue
		}
		if lot.UnitPrice == nil || lot.LotQuantity == nil {
			return 0, &MalformedLotError{
				MaterialName: materialName,
				UnitPrice:    lot.UnitPrice,
				LotQuantity:  lot.LotQuantity,
			}
		}
		if *lot.UnitPrice < 0 || *lot.LotQuantity <= 0 {
			return 0, &LotValueError{
				MaterialName: materialName,
				UnitPrice:    *lot.UnitPrice,
				LotQuantity:  *lot.LotQuantity,
			}
		}
		totalValue += *lot.UnitPrice * float64(*lot.LotQuantity)
		totalQuantity += *lot.LotQuantity
	}

	if totalQuantity == 0 {
		return 0, nil
	}
	return totalValue / float64(totalQuantity), nil
}

// ReconcileLots validates and averages the declared lots for every
// purchasable material of the recipe. It fails fast: the first blocking
// problem (malformed lot, out-of-range values or over-coverage) stops
// the reconciliation.
//
// On success it returns the per-material averaged unit prices, the
// per-material lot state for the response payload, and human-readable
// warnings for under-covered materials. Materials are processed in
// recipe order so errors and warnings are deterministic.
func ReconcileLots(recipe *model.Recipe, lots map[string][]model.PriceLot, desiredPacks int) (map[string]float64, []model.MaterialLotState, []string, error) {
	unitPrices := make(map[string]float64)
	states := make([]model.MaterialLotState, 0, len(recipe.Materials))
	var warnings []string

	for _, material := range recipe.Materials {
		if !material.MaterialType.Purchasable() {
			continue
		}

		totalNeeded := material.TotalNeeded(desiredPacks)
		materialLots := lots[material.MaterialName]

		average, err := WeightedAverage(material.MaterialName, materialLots)
		if err != nil {
			return nil, nil, nil, err
		}

		declaredSum, status := ClassifyLots(materialLots, totalNeeded)
		if status == model.LotStatusInvalid {
			return nil, nil, nil, &OverCoverageError{
				MaterialName: material.MaterialName,
				DeclaredSum:  declaredSum,
				TotalNeeded:  totalNeeded,
			}
		}
		if status == model.LotStatusWarning {
			warnings = append(warnings, fmt.Sprintf(
				"lots for %q cover %d of %d required units; cost is based on the declared lots",
				material.MaterialName, declaredSum, totalNeeded,
			))
		}

		// The cost contract is "only what was declared": an under-covered
		// material contributes the declared lot value, not the average
		// extrapolated over the full requirement. Scaling the unit price
		// by coverage makes totalNeeded x price equal the declared value.
		effective := average
		if totalNeeded > 0 && declaredSum != totalNeeded {
			effective = average * float64(declaredSum) / float64(totalNeeded)
		}

		unitPrices[material.MaterialName] = effective
		states = append(states, model.MaterialLotState{
			MaterialName:     material.MaterialName,
			TotalNeeded:      totalNeeded,
			DeclaredSum:      declaredSum,
			Status:           status,
			AverageUnitPrice: average,
		})
	}

	return unitPrices, states, warnings, nil
}
