package repository

import "nextgenmobiles/backend/internal/model"

// The catalog is code-defined and never mutated at runtime.
var catalog = []model.Product{
	{
		ID:          1,
		Name:        "iPhone 15 Pro",
		Price:       999,
		Image:       "https://via.placeholder.com/300x300?text=iPhone+15+Pro",
		Description: "Latest iPhone with advanced camera system",
		Brand:       "Apple",
		Storage:     "128GB",
		Color:       "Natural Titanium",
	},
	{
		ID:          2,
		Name:        "Samsung Galaxy S24",
		Price:       899,
		Image:       "https://via.placeholder.com/300x300?text=Galaxy+S24",
		Description: "Premium Android smartphone with AI features",
		Brand:       "Samsung",
		Storage:     "256GB",
		Color:       "Titanium Gray",
	},
	{
		ID:          3,
		Name:        "Google Pixel 8",
		Price:       699,
		Image:       "https://via.placeholder.com/300x300?text=Pixel+8",
		Description: "Pure Android experience with excellent camera",
		Brand:       "Google",
		Storage:     "128GB",
		Color:       "Obsidian",
	},
	{
		ID:          4,
		Name:        "OnePlus 12",
		Price:       799,
		Image:       "https://via.placeholder.com/300x300?text=OnePlus+12",
		Description: "Fast charging and smooth performance",
		Brand:       "OnePlus",
		Storage:     "256GB",
		Color:       "Silky Black",
	},
	{
		ID:          5,
		Name:        "Xiaomi 14",
		Price:       599,
		Image:       "https://via.placeholder.com/300x300?text=Xiaomi+14",
		Description: "Great value flagship smartphone",
		Brand:       "Xiaomi",
		Storage:     "128GB",
		Color:       "Black",
	},
	{
		ID:          6,
		Name:        "Huawei P60 Pro",
		Price:       899,
		Image:       "https://via.placeholder.com/300x300?text=P60+Pro",
		Description: "Premium camera and design",
		Brand:       "Huawei",
		Storage:     "256GB",
		Color:       "Rococo Pearl",
	},
	{
		ID:          7,
		Name:        "Sony Xperia 1 V",
		Price:       1299,
		Image:       "https://via.placeholder.com/300x300?text=Xperia+1+V",
		Description: "Professional camera smartphone",
		Brand:       "Sony",
		Storage:     "256GB",
		Color:       "Black",
	},
	{
		ID:          8,
		Name:        "Nothing Phone 2",
		Price:       599,
		Image:       "https://via.placeholder.com/300x300?text=Nothing+Phone+2",
		Description: "Unique transparent design",
		Brand:       "Nothing",
		Storage:     "128GB",
		Color:       "White",
	},
}

type ProductRepository struct {
	products []model.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: catalog}
}

func (r *ProductRepository) All() []model.Product {
	return r.products
}

func (r *ProductRepository) ByID(id int) (model.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (r *ProductRepository) Count() int {
	return len(r.products)
}
