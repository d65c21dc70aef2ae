package model

type ProductListItem struct {
	ID         uint64  `db:"product_id" json:"product_id"`
	CategoryID uint64  `db:"category_id" json:"category_id"`
	Name       string  `db:"product_name" json:"product_name"`
	ImageURL   string  `db:"product_img" json:"product_img"`
	Price      float64 `db:"price" json:"price"`
	Stock      int64   `db:"stock" json:"stock"`
	Status     int     `db:"status" json:"status"`
}

type ProductDetail struct {
	ID          uint64  `db:"product_id" json:"product_id"`
	CategoryID  uint64  `db:"category_id" json:"category_id"`
	Name        string  `db:"product_name" json:"product_name"`
	ImageURL    string  `db:"product_img" json:"product_img"`
	Price       float64 `db:"price" json:"price"`
	Stock       int64   `db:"stock" json:"stock"`
	Description string  `db:"description" json:"description,omitempty"`
	Status      int     `db:"status" json:"status"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
