package models

type MenuItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	Available    bool    `json:"available"`
	DisplayOrder int     `json:"displayOrder"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

type Category struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
	Description  string `json:"description,omitempty"`
	Active       bool   `json:"active"`
}

// MenuItemRequest is the body of menu item create and update calls.
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
