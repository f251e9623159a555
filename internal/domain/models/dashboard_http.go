package models

// ListStocksRequest is the query of the stock list route.
type ListStocksRequest struct {
	Q      string `query:"q" validate:"max=64"`
	Offset int    `query:"offset" validate:"gte=0"`
	Limit  int    `query:"limit" default:"50" validate:"gte=1,lte=500"`
}

// StockViewRequest navigates the viewer to a ticker. Reload forces a refetch
// of the ticker already on screen; WaitMs long-polls until every slot settled.
type StockViewRequest struct {
	Ticker string `param:"ticker" validate:"required,max=32"`
	Reload bool   `query:"reload"`
	WaitMs int    `query:"wait_ms" validate:"gte=0,lte=10000"`
}

// GenerateRequest asks for a forecast of the ticker on screen.
type GenerateRequest struct {
	Ticker string `param:"ticker" validate:"required,max=32"`
}
