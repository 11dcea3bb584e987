package models

// OceanFreight is a shared notice about an inbound ocean-freight shipment
// that needs follow-up (customs, warehousing, customer allocation).
type OceanFreight struct {
	// ID is the document identifier assigned by the store.
	ID string `json:"id"`

	// Description identifies the shipment and what is pending on it.
	Description string `json:"description"`

	// Status is "Waiting" while the notice is open.
	Status string `json:"status"`

	// Date is the creation day in YYYY-MM-DD form; lists order by it,
	// newest first.
	Date string `json:"date"`
}
