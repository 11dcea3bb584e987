package models

// PriceUpdateStatusWaiting is the only status a freshly created price-update
// notice carries; notices are removed once handled rather than transitioned.
const PriceUpdateStatusWaiting = "Waiting"

// PriceUpdate is a shared notice that a supplier price list changed and the
// catalogue needs updating.
type PriceUpdate struct {
	// ID is the document identifier assigned by the store.
	ID string `json:"id"`

	// Description says which supplier/product range changed.
	Description string `json:"description"`

	// Status is always "Waiting" for open notices.
	Status string `json:"status"`

	// Date is the creation day in YYYY-MM-DD form; lists order by it,
	// newest first.
	Date string `json:"date"`
}
