// Package zakat computes zakat liability from a wealth assessment.
package zakat

// Wealth is the asset and liability breakdown submitted by the calculator
// form. All amounts are in the same currency, conventionally USD.
type Wealth struct {
	Cash        float64
	Savings     float64
	Gold        float64
	Silver      float64
	Business    float64
	Investments float64
	Debts       float64
}

// Result is the computed liability.
type Result struct {
	TotalAssets    float64 `json:"total_assets"`
	TotalDebts     float64 `json:"total_debts"`
	NetWealth      float64 `json:"net_wealth"`
	NisabThreshold float64 `json:"nisab_threshold"`
	ZakatDue       float64 `json:"zakat_due"`
	IsEligible     bool    `json:"is_eligible"`
}

// NisabConfig sets the metal weights and per-gram prices that define the
// nisab threshold. Prices move with the market, so they are configuration
// rather than constants baked into the calculation.
type NisabConfig struct {
	GoldGrams          float64
	SilverGrams        float64
	GoldPricePerGram   float64
	SilverPricePerGram float64
}

// DefaultNisab uses the classical weights (20 mithqal of gold, 200 dirham of
// silver) with indicative USD prices.
func DefaultNisab() NisabConfig {
	return NisabConfig{
		GoldGrams:          87.48,
		SilverGrams:        612.36,
		GoldPricePerGram:   65,
		SilverPricePerGram: 0.8,
	}
}

// rate is the zakat rate on net wealth at or above nisab.
const rate = 0.025

// Calculate sums assets, nets out debts, and applies the 2.5% rate when net
// wealth meets the lower of the two nisab thresholds (the silver threshold
// is normally lower, which favors the recipient side).
func Calculate(w Wealth, nisab NisabConfig) Result {
	totalAssets := w.Cash + w.Savings + w.Gold + w.Silver + w.Business + w.Investments
	netWealth := totalAssets - w.Debts

	goldNisab := nisab.GoldGrams * nisab.GoldPricePerGram
	silverNisab := nisab.SilverGrams * nisab.SilverPricePerGram
	threshold := goldNisab
	if silverNisab < threshold {
		threshold = silverNisab
	}

	eligible := netWealth >= threshold
	due := 0.0
	if eligible {
		due = netWealth * rate
	}

	return Result{
		TotalAssets:    totalAssets,
		TotalDebts:     w.Debts,
		NetWealth:      netWealth,
		NisabThreshold: threshold,
		ZakatDue:       due,
		IsEligible:     eligible,
	}
}
