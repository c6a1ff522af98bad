package get_quote

// QuoteRequest параметры запроса котировки
type QuoteRequest struct {
	Size  string `json:"size" validate:"required,locker_size"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Size            string  `json:"size"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	BillableDays    int     `json:"billableDays"`
	BasePricePerDay float64 `json:"basePricePerDay"`
	DiscountRate    float64 `json:"discountRate"`
	Price           float64 `json:"price"`
}
