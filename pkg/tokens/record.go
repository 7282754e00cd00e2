package tokens

// Record is one token-safety check as published in the snapshot document.
// Missing JSON fields decode to zero values; nothing here is validated.
type Record struct {
	Timestamp       string   `json:"timestamp"`
	Token           string   `json:"token"`
	Pair            string   `json:"pair"`
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	Passed          bool     `json:"passed"`
	LiquidityETH    float64  `json:"liquidityETH"`
	BuyTax          float64  `json:"buyTax"`
	SellTax         float64  `json:"sellTax"`
	OwnerPercent    float64  `json:"ownerPercent"`
	LPBurnedPercent float64  `json:"lpBurnedPercent"`
	Failures        []string `json:"failures"`
	CheckTimeMs     float64  `json:"checkTimeMs"`
}

// Key identifies a record for expansion tracking. A token can reappear with a
// later check, so the timestamp is part of the identity.
func (r Record) Key() string {
	return r.Token + r.Timestamp
}
