package models

// Order is the persisted record for one customer purchase. IDs are assigned
// by the database, starting at 100000, and never reused.
type Order struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Items    []string `json:"items"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Extras   []string `json:"extras"`
	Status   string   `json:"status"`
}

// OrderRequest is the inbound payload for create and update. Pointer fields
// distinguish absent from zero-valued so the validator can report missing
// required fields; a client-supplied id is ignored.
type OrderRequest struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Items    []string `json:"items"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Extras   []string `json:"extras"`
	Status   *string  `json:"status"`
}

// DefaultStatus applies when a request carries no status.
const DefaultStatus = "Pending"

// ToOrder builds an Order from a validated request. Absent status defaults,
// absent extras normalize to an empty slice, and the id is left unset.
func (r *OrderRequest) ToOrder() Order {
	order := Order{
		Items:  r.Items,
		Extras: r.Extras,
		Status: DefaultStatus,
	}
	if r.Name != nil {
		order.Name = *r.Name
	}
	if r.Quantity != nil {
		order.Quantity = *r.Quantity
	}
	if r.Price != nil {
		order.Price = *r.Price
	}
	if r.Status != nil {
		order.Status = *r.Status
	}
	if order.Items == nil {
		order.Items = []string{}
	}
	if order.Extras == nil {
		order.Extras = []string{}
	}
	return order
}
