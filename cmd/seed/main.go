package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Balamathias/glafrica/internal/model"
	"github.com/Balamathias/glafrica/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding catalog data...")

	categories := seedCategories(db)
	eggCategories := seedEggCategories(db)
	tags := seedTags(db)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seedDemoLivestock(db, categories, tags)
		seedDemoEggs(db, eggCategories)
	} else {
		color.Yellow("Skipping demo rows (set SEED_DEMO_DATA=true to include them)")
	}

	color.Green("Seeding completed!")
}

func seedCategories(db *gorm.DB) map[string]model.Category {
	categories := []model.Category{
		{Name: "Cattle", Slug: "cattle", Description: "Cows, bulls, calves and oxen"},
		{Name: "Goats", Slug: "goats", Description: "Goats, bucks, does and kids"},
		{Name: "Sheep", Slug: "sheep", Description: "Sheep, rams, ewes and lambs"},
		{Name: "Pigs", Slug: "pigs", Description: "Pigs, boars, sows and piglets"},
		{Name: "Poultry", Slug: "poultry", Description: "Chickens, turkeys, ducks and other birds"},
	}

	out := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		var existing model.Category
		if err := db.Where("slug = ?", c.Slug).First(&existing).Error; err == nil {
			out[c.Slug] = existing
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating category %q: %v", c.Name, err)
			continue
		}
		color.Green("Created category: %s", c.Name)
		out[c.Slug] = c
	}
	return out
}

func seedEggCategories(db *gorm.DB) map[string]model.EggCategory {
	categories := []model.EggCategory{
		{Name: "Chicken", Slug: "chicken", Description: "Chicken eggs, the everyday staple", Order: 1},
		{Name: "Turkey", Slug: "turkey", Description: "Large, rich turkey eggs", Order: 2},
		{Name: "Guinea Fowl", Slug: "guinea-fowl", Description: "Hard-shelled guinea fowl eggs", Order: 3},
		{Name: "Quail", Slug: "quail", Description: "Small, speckled quail eggs", Order: 4},
		{Name: "Duck", Slug: "duck", Description: "Duck eggs, prized for baking", Order: 5},
		{Name: "Goose", Slug: "goose", Description: "Seasonal goose eggs", Order: 6},
	}

	out := make(map[string]model.EggCategory, len(categories))
	for _, c := range categories {
		var existing model.EggCategory
		if err := db.Where("slug = ?", c.Slug).First(&existing).Error; err == nil {
			out[c.Slug] = existing
			continue
		}
		c.IsActive = true
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating egg category %q: %v", c.Name, err)
			continue
		}
		color.Green("Created egg category: %s", c.Name)
		out[c.Slug] = c
	}
	return out
}

func seedTags(db *gorm.DB) map[string]model.Tag {
	tags := []model.Tag{
		{Name: "healthy", Slug: "healthy"},
		{Name: "vaccinated", Slug: "vaccinated"},
		{Name: "premium", Slug: "premium"},
		{Name: "breeding stock", Slug: "breeding-stock"},
		{Name: "free range", Slug: "free-range"},
	}

	out := make(map[string]model.Tag, len(tags))
	for _, t := range tags {
		var existing model.Tag
		if err := db.Where("slug = ?", t.Slug).First(&existing).Error; err == nil {
			out[t.Slug] = existing
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating tag %q: %v", t.Name, err)
			continue
		}
		out[t.Slug] = t
	}
	return out
}

func seedDemoLivestock(db *gorm.DB, categories map[string]model.Category, tags map[string]model.Tag) {
	color.Cyan("Seeding demo livestock...")

	healthy := tags["healthy"]
	vaccinated := tags["vaccinated"]

	rows := []model.Livestock{
		{
			Name: "Boer Buck", CategoryId: categories["goats"].Id, Breed: "boer",
			Age: "18 months", Weight: "45kg", Gender: "M",
			Price: 85000, Location: "Lagos",
			Description:        "Strong Boer buck from a disease-free herd, ready for breeding.",
			HealthStatus:       "Excellent, dewormed last month",
			VaccinationHistory: datatypes.JSON([]byte(`["PPR", "anthrax"]`)),
			Tags:               []*model.Tag{&healthy, &vaccinated},
		},
		{
			Name: "White Fulani Heifer", CategoryId: categories["cattle"].Id, Breed: "white fulani",
			Age: "2 years", Weight: "210kg", Gender: "F",
			Price: 450000, Location: "Kano",
			Description:        "Well-fed White Fulani heifer suitable for dairy or breeding.",
			HealthStatus:       "Good",
			VaccinationHistory: datatypes.JSON([]byte(`["CBPP", "FMD"]`)),
			Tags:               []*model.Tag{&vaccinated},
		},
		{
			Name: "Yankasa Ram", CategoryId: categories["sheep"].Id, Breed: "yankasa",
			Age: "14 months", Weight: "38kg", Gender: "M",
			Price: 95000, Location: "Abuja",
			Description:        "Prime Yankasa ram, ideal for festivities.",
			HealthStatus:       "Excellent",
			VaccinationHistory: datatypes.JSON([]byte(`["PPR"]`)),
			Tags:               []*model.Tag{&healthy},
		},
	}

	for _, row := range rows {
		var count int64
		db.Model(&model.Livestock{}).Where("name = ? AND location = ?", row.Name, row.Location).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Error creating livestock %q: %v", row.Name, err)
		} else {
			color.Green("Created livestock: %s", row.Name)
		}
	}
}

func seedDemoEggs(db *gorm.DB, categories map[string]model.EggCategory) {
	color.Cyan("Seeding demo eggs...")

	date := func(daysFromNow int) *time.Time {
		d := time.Now().AddDate(0, 0, daysFromNow)
		return &d
	}

	rows := []model.Egg{
		{
			Name: "Farm Fresh Chicken Crate", Slug: "farm-fresh-chicken-crate",
			CategoryId: categories["chicken"].Id, Breed: "isa brown",
			EggType: "table", Size: "large", Packaging: "crate_30", EggsPerUnit: 30,
			Price: 4500, QuantityAvailable: 120,
			ProductionDate: date(-2), ExpiryDate: date(26),
			Location: "Lagos", Description: "Large table eggs collected daily from our Ikorodu farm.",
			IsAvailable: true, IsFeatured: true,
		},
		{
			Name: "Organic Quail Eggs Tray", Slug: "organic-quail-eggs-tray",
			CategoryId: categories["quail"].Id,
			EggType: "organic", Size: "small", Packaging: "tray", EggsPerUnit: 24,
			Price: 3200, QuantityAvailable: 45,
			ProductionDate: date(-1), ExpiryDate: date(20),
			Location: "Abuja", Description: "Organically fed quail eggs, rich in protein.",
			IsAvailable: true,
		},
		{
			Name: "Fertilized Guinea Fowl Eggs", Slug: "fertilized-guinea-fowl-eggs",
			CategoryId: categories["guinea-fowl"].Id,
			EggType: "fertilized", Size: "medium", Packaging: "half_crate_15", EggsPerUnit: 15,
			Price: 6000, QuantityAvailable: 18,
			ProductionDate: date(0), ExpiryDate: date(14),
			Location: "Kano", Description: "Fertilized eggs for hatching, from healthy breeding stock.",
			IsAvailable: true,
		},
	}

	for _, row := range rows {
		var count int64
		db.Model(&model.Egg{}).Where("slug = ?", row.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Error creating egg listing %q: %v", row.Name, err)
		} else {
			color.Green("Created egg listing: %s", row.Name)
		}
	}
}
