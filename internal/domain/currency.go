package domain

// Currency is either a crypto token used as collateral or a fiat currency
// used as debt. Decimals is the token's native precision (8 for BTC, 18 for
// ETH); fiat currencies are always handled at 18 decimals.
type Currency struct {
	ID       string
	Symbol   string
	Decimals uint
	IsFiat   bool
}
