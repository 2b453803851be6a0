package readmodel

type DifficultyRM struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GameRM struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category_name"`
	ExternalID   *string `json:"external_id,omitempty"`
}

type ShopRM struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type TableRM struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	ShopID int64   `json:"shop_id"`
	Shop   *ShopRM `json:"shop,omitempty"`
}
