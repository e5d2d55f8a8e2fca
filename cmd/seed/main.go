package main

import (
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chirathr/ecommerce/config"
	"github.com/chirathr/ecommerce/models"
)

var categoryNames = []string{
	"Laptops",
	"Fruits",
	"Vegetables",
	"Stationery",
	"Mobile",
	"Dress",
}

type productFixture struct {
	name     string
	category string
	price    int64
	discount float64
	rating   int
	quantity int
}

var productFixtures = []productFixture{
	{"Notebook", "Stationery", 120, 10, 4, 50},
	{"Fountain pen", "Stationery", 89, 0, 5, 200},
	{"Ultrabook", "Laptops", 950, 15, 4, 12},
	{"Gaming laptop", "Laptops", 1000, 5, 5, 8},
	{"Apple", "Fruits", 95, 0, 3, 500},
	{"Banana", "Fruits", 90, 20, 4, 800},
	{"Carrot", "Vegetables", 92, 50, 2, 300},
	{"Smartphone", "Mobile", 700, 25, 4, 30},
	{"Summer dress", "Dress", 230, 10, 5, 40},
}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedCategories(db)
	seedProducts(db)
	seedUsers(db)

	log.Println("Seeding complete")
}

func seedCategories(db *gorm.DB) {
	for _, name := range categoryNames {
		var count int64
		db.Model(&models.ProductCategory{}).Where("name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&models.ProductCategory{Name: name}).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
	}
	log.Printf("Seeded %d categories", len(categoryNames))
}

func seedProducts(db *gorm.DB) {
	for _, fixture := range productFixtures {
		var count int64
		db.Model(&models.Product{}).Where("name = ?", fixture.name).Count(&count)
		if count > 0 {
			continue
		}

		var category models.ProductCategory
		if err := db.Where("name = ?", fixture.category).First(&category).Error; err != nil {
			log.Fatalf("Missing category %q: %v", fixture.category, err)
		}

		rating := fixture.rating
		product := models.Product{
			Name:            fixture.name,
			Description:     fmt.Sprintf("%s from the %s range.", fixture.name, fixture.category),
			Price:           fixture.price,
			DiscountPercent: fixture.discount,
			Rating:          &rating,
			Quantity:        fixture.quantity,
			CategoryID:      &category.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", fixture.name, err)
		}

		image := models.Image{
			ProductID: product.ID,
			Name:      fixture.name,
			Path:      fmt.Sprintf("products/%d.jpg", product.ID),
			Type:      models.ImageTypeFeatured,
		}
		if err := db.Create(&image).Error; err != nil {
			log.Fatalf("Failed to create image for %q: %v", fixture.name, err)
		}
	}
	log.Printf("Seeded %d products", len(productFixtures))
}

func seedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("qwerty@123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	for i := 1; i <= 20; i++ {
		username := fmt.Sprintf("demo%02d", i)

		var count int64
		db.Model(&models.User{}).Where("username = ?", username).Count(&count)
		if count > 0 {
			continue
		}

		user := models.User{
			Username:      username,
			Email:         username + "@example.com",
			Password:      string(hash),
			FirstName:     "Demo",
			LastName:      fmt.Sprintf("User %02d", i),
			WalletBalance: int64(rand.Intn(9901) + 100), // 100..10000
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %q: %v", username, err)
		}
	}
	log.Println("Seeded demo users")
}
