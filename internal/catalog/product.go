package catalog

import "time"

// Category values accepted for a product.
var Categories = []string{"Spice", "Herb", "Blend", "Seed", "Other"}

type Review struct {
	Name   string `bson:"name" json:"name"`
	Date   string `bson:"date" json:"date"`
	Rating int    `bson:"rating" json:"rating"`
	Text   string `bson:"text" json:"text"`
}

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	Image       string    `bson:"image" json:"image"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Stock       int       `bson:"stock" json:"stock"`
	Rating      float64   `bson:"rating" json:"rating"`
	Reviews     []Review  `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
