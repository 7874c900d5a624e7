package request

// BusinessRequest carries the customer business details of a submission.
type BusinessRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// ProductRequest represents a line item in the request
type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateBillRequest represents the create bill request body.
// Field presence is checked by the service layer so that missing fields
// produce the billing validation taxonomy rather than a bind error.
type CreateBillRequest struct {
	Business      BusinessRequest  `json:"business"`
	Products      []ProductRequest `json:"products"`
	Discount      float64          `json:"discount"`
	Tax           float64          `json:"tax"`
	PendingAmount float64          `json:"pendingAmount"`
}
