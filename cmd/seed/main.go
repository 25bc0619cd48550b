package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/catalog"
	"github.com/chei-t/spice.com/internal/storage"
	"github.com/chei-t/spice.com/internal/user"
)

var products = []catalog.Product{
	{
		Name:        "Ceylon Cinnamon",
		Image:       "/images/cinnamon.jpg",
		Price:       6.50,
		Description: "True cinnamon quills from Sri Lanka, sweet and delicate.",
		Category:    "Spice",
		Stock:       120,
		Rating:      4.8,
	},
	{
		Name:        "Smoked Paprika",
		Image:       "/images/paprika.jpg",
		Price:       4.20,
		Description: "Oak-smoked Spanish pimentón with a deep, warm flavor.",
		Category:    "Spice",
		Stock:       80,
		Rating:      4.6,
	},
	{
		Name:        "Whole Nutmeg",
		Image:       "/images/nutmeg.jpg",
		Price:       5.00,
		Description: "Whole nutmeg seeds for grating, aromatic and long-lasting.",
		Category:    "Seed",
		Stock:       60,
		Rating:      4.7,
	},
	{
		Name:        "Dried Oregano",
		Image:       "/images/oregano.jpg",
		Price:       3.10,
		Description: "Mediterranean oregano, sun-dried and hand-crumbled.",
		Category:    "Herb",
		Stock:       150,
		Rating:      4.4,
	},
	{
		Name:        "Garam Masala",
		Image:       "/images/garam-masala.jpg",
		Price:       5.80,
		Description: "House blend of toasted warming spices, ground fresh.",
		Category:    "Blend",
		Stock:       90,
		Rating:      4.9,
	},
	{
		Name:        "Saffron Threads",
		Image:       "/images/saffron.jpg",
		Price:       12.90,
		Description: "Grade one saffron threads with intense color and aroma.",
		Category:    "Spice",
		Stock:       25,
		Rating:      5.0,
	},
}

func main() {
	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDBName := getEnv("MONGO_DB_NAME", "spicedb")
	adminEmail := getEnv("ADMIN_EMAIL", "admin@spice.example.com")
	adminPassword := getEnv("ADMIN_PASSWORD", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storage.ConnectMongoDB(ctx, mongoURI, mongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := seedProducts(ctx, db); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	if adminPassword != "" {
		if err := seedAdmin(ctx, db, adminEmail, adminPassword); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	} else {
		log.Println("ADMIN_PASSWORD not set, skipping admin account")
	}

	log.Println("seeding complete")
}

// seedProducts upserts the canonical catalog keyed by slug, so re-running
// the seeder never duplicates products.
func seedProducts(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("products")

	for _, p := range products {
		p.Slug = slug.Make(p.Name)
		now := time.Now()

		update := bson.M{
			"$set": bson.M{
				"name":        p.Name,
				"slug":        p.Slug,
				"image":       p.Image,
				"price":       p.Price,
				"description": p.Description,
				"category":    p.Category,
				"stock":       p.Stock,
				"rating":      p.Rating,
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID().Hex(),
				"reviews":    []catalog.Review{},
				"created_at": now,
			},
		}

		opts := options.Update().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, bson.M{"slug": p.Slug}, update, opts); err != nil {
			return err
		}
		log.Printf("seeded product %q", p.Name)
	}

	return nil
}

// seedAdmin creates the admin account unless it already exists.
func seedAdmin(ctx context.Context, db *mongo.Database, email, password string) error {
	collection := db.Collection("users")

	count, err := collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("admin %s already exists, skipping", email)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = collection.InsertOne(ctx, user.User{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "Store Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	log.Printf("created admin %s", email)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
