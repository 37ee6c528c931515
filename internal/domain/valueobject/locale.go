package valueobject

// Locale is a coarse classification of where a client connects from.
type Locale struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	IsDomestic  bool   `json:"is_domestic"`
}
