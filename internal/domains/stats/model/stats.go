package model

// Stats holds cumulative counters. Sold counts every successful delete, not
// current inventory.
type Stats struct {
	Sold int `json:"sold"`
}

// Summary is the public stats view.
type Summary struct {
	BooksListed  int `json:"booksListed"`
	SellersCount int `json:"sellersCount"`
	Sold         int `json:"sold"`
}
