package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"hospital-app-server/internal/config"
	"hospital-app-server/internal/models"
)

var departments = []string{
	"Cardiology",
	"Dermatology",
	"Neurology",
	"Oncology",
	"Orthopedics",
	"Pediatrics",
	"Radiology",
	"ENT",
}

func main() {
	doctors := flag.Int("doctors", 0, "number of fake doctors to create")
	patients := flag.Int("patients", 0, "number of fake patients to create")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := seedFirstAdmin(db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedDoctors(db, *doctors); err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	if err := seedPatients(db, *patients); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

// seedFirstAdmin creates the bootstrap administrator unless one exists.
func seedFirstAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists, skipping")
		return nil
	}

	admin := models.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@hospital.com",
		Phone:     "1234567890",
		NIC:       "1234567",
		DOB:       "1990-01-01",
		Gender:    "Male",
		Role:      models.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("created first admin %s (change the password after first login)", admin.Email)
	return nil
}

func seedDoctors(db *gorm.DB, count int) error {
	if count == 0 {
		return nil
	}
	log.Printf("seeding %d doctors", count)

	for i := 0; i < count; i++ {
		doctor := models.User{
			FirstName:        gofakeit.FirstName(),
			LastName:         gofakeit.LastName(),
			Email:            fmt.Sprintf("doctor%d@hospital.com", i+1),
			Phone:            gofakeit.Phone(),
			NIC:              gofakeit.DigitN(7),
			DOB:              gofakeit.DateRange(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Gender:           gofakeit.RandomString([]string{"Male", "Female"}),
			Role:             models.RoleDoctor,
			DoctorDepartment: gofakeit.RandomString(departments),
		}
		if err := doctor.SetPassword(gofakeit.Password(true, true, true, false, false, 12)); err != nil {
			return err
		}
		if err := db.Create(&doctor).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPatients(db *gorm.DB, count int) error {
	if count == 0 {
		return nil
	}
	log.Printf("seeding %d patients", count)

	for i := 0; i < count; i++ {
		patient := models.User{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     fmt.Sprintf("patient%d@example.com", i+1),
			Phone:     gofakeit.Phone(),
			NIC:       gofakeit.DigitN(7),
			DOB:       gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Gender:    gofakeit.RandomString([]string{"Male", "Female"}),
			Role:      models.RolePatient,
		}
		if err := patient.SetPassword(gofakeit.Password(true, true, true, false, false, 12)); err != nil {
			return err
		}
		if err := db.Create(&patient).Error; err != nil {
			return err
		}
	}
	return nil
}
