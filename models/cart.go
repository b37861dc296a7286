package models

// CartItem is one line of the unsubmitted order draft.
type CartItem struct {
	MenuItemID          uint    `json:"menuItemId"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	TaxRate  float64 `json:"taxRate"`
}
