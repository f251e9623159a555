package presenter

import (
	"net/url"

	"Nivesh/internal/domain/models"
	"Nivesh/internal/usecase"
)

// ListRow is one stock of the landing list.
type ListRow struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector,omitempty"`
	Link   string `json:"link"`
}

// ListPage is the filtered landing list.
type ListPage struct {
	Query string    `json:"query,omitempty"`
	Rows  []ListRow `json:"rows"`
	Total int       `json:"total"`
}

// BuildListPage filters stocks by q and links each row to its detail view.
func BuildListPage(stocks []models.Stock, q string) ListPage {
	filtered := usecase.FilterStocks(stocks, q)
	page := ListPage{Query: q, Rows: make([]ListRow, 0, len(filtered)), Total: len(filtered)}
	for _, s := range filtered {
		row := ListRow{
			Ticker: s.Ticker,
			Name:   s.Name,
			Link:   DetailLink(s.Ticker),
		}
		if s.Sector != nil {
			row.Sector = *s.Sector
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

// DetailLink is the web route of a stock's detail view.
func DetailLink(ticker string) string {
	return "/api/stocks/" + url.PathEscape(ticker) + "/view"
}
