package main

import (
	"log"
	"os"

	"studiorental/internal/database"
	"studiorental/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Space{},
		&domain.Equipment{},
		&domain.Prop{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old catalog...")
	db.Exec("DELETE FROM props")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM spaces")

	log.Println("Creating spaces...")
	spaces := []domain.Space{
		{ID: "loft", Name: "Daylight Loft", Description: "120 sqm loft with south-facing windows", AreaSqm: 120, PricePerHour: 300, PricePerDay: 1250, Available: true},
		{ID: "cyclorama", Name: "Cyclorama Stage", Description: "White cyc wall, 6m ceiling", AreaSqm: 90, PricePerHour: 450, PricePerDay: 2000, Available: true},
		{ID: "darkroom", Name: "Darkroom", Description: "Analog development room", AreaSqm: 25, PricePerHour: 150, PricePerDay: 600, Available: false},
	}
	for i := range spaces {
		db.Create(&spaces[i])
	}

	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{ID: "strobe-kit", Name: "Profoto strobe kit", Category: "lighting", PricePerHour: 50, PricePerDay: 200, Available: true},
		{ID: "backdrop-set", Name: "Seamless backdrop set", Category: "backdrops", PricePerHour: 20, PricePerDay: 80, Available: true},
		{ID: "fog-machine", Name: "Fog machine", Category: "effects", PricePerHour: 25, PricePerDay: 90, Available: false},
	}
	for i := range equipment {
		db.Create(&equipment[i])
	}

	log.Println("Creating props...")
	props := []domain.Prop{
		{ID: "velvet-sofa", Name: "Green velvet sofa", Category: "furniture", PricePerDay: 500, Available: true},
		{ID: "neon-sign", Name: "Neon sign collection", Category: "decor", PricePerDay: 150, Available: true},
		{ID: "plant-wall", Name: "Plant wall", Category: "decor", PricePerDay: 250, Available: true},
	}
	for i := range props {
		db.Create(&props[i])
	}

	// convenience for local setups: print a hash for the default admin password
	if os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		log.Println("No ADMIN_PASSWORD_HASH set. For password admin123 use:")
		log.Println("ADMIN_PASSWORD_HASH=" + string(hash))
	}

	log.Println("Seed complete.")
}
