package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/config"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
	"github.com/Abdudhi100/dr-olaosebikan/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Development seeder: one doctor account, the service catalogue, a handful of
// publications and achievements, and a batch of patient accounts.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.Clinic.Timezone)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}

	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	doctor, err := seedDoctor(db)
	if err != nil {
		log.Fatalf("seed doctor: %v", err)
	}
	if err := seedServices(db, doctor); err != nil {
		log.Fatalf("seed services: %v", err)
	}
	if err := seedPublications(db, doctor); err != nil {
		log.Fatalf("seed publications: %v", err)
	}
	if err := seedPatients(db, 50); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func seedDoctor(db *gorm.DB) (*entity.User, error) {
	var existing entity.User
	err := db.Where("role = ?", entity.RoleDoctor).First(&existing).Error
	if err == nil {
		log.Println("doctor account already present, skipping")
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	active := true
	doctor := &entity.User{
		Role:     entity.RoleDoctor,
		Email:    "doctor@clinic.local",
		Password: string(hash),
		FullName: "Dr. " + gofakeit.Name(),
		Phone:    gofakeit.Phone(),
		IsActive: &active,
	}
	if err := db.Create(doctor).Error; err != nil {
		return nil, err
	}

	log.Printf("doctor seeded: %s", doctor.Email)
	return doctor, nil
}

func seedServices(db *gorm.DB, doctor *entity.User) error {
	services := []struct {
		name     string
		duration int
		price    string
		icon     string
	}{
		{"General Consultation", 30, "15000.00", "stethoscope"},
		{"Follow-up Visit", 15, "8000.00", "calendar-check"},
		{"Antenatal Care", 45, "20000.00", "heart-pulse"},
		{"Minor Procedure", 60, "35000.00", "scissors"},
		{"Telemedicine Call", 20, "10000.00", "video"},
	}

	active := true
	for i, s := range services {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return err
		}
		svc := &entity.Service{
			DoctorID:        doctor.ID,
			Name:            s.name,
			Description:     gofakeit.Sentence(12),
			DurationMinutes: s.duration,
			Price:           price,
			IsActive:        &active,
			Position:        i,
			Icon:            s.icon,
		}
		err = db.Where("doctor_id = ? AND name = ?", doctor.ID, s.name).
			FirstOrCreate(svc).Error
		if err != nil {
			return err
		}
	}

	log.Printf("%d services seeded", len(services))
	return nil
}

func seedPublications(db *gorm.DB, doctor *entity.User) error {
	published := true
	for i := 0; i < 8; i++ {
		pub := &entity.Publication{
			DoctorID:    doctor.ID,
			Title:       gofakeit.Sentence(8),
			Journal:     gofakeit.Company() + " Journal of Medicine",
			Year:        gofakeit.Number(2010, 2025),
			Authors:     gofakeit.Name() + ", " + gofakeit.Name(),
			Abstract:    gofakeit.Paragraph(1, 4, 12, " "),
			IsFeatured:  i < 2,
			IsPublished: &published,
		}
		if err := db.Create(pub).Error; err != nil {
			return err
		}
	}

	for i := 0; i < 4; i++ {
		ach := &entity.Achievement{
			DoctorID:     doctor.ID,
			Title:        gofakeit.Sentence(5),
			Description:  gofakeit.Sentence(15),
			Year:         gofakeit.Number(2005, 2025),
			Organization: gofakeit.Company(),
			IsPublished:  &published,
		}
		if err := db.Create(ach).Error; err != nil {
			return err
		}
	}

	log.Println("publications and achievements seeded")
	return nil
}

func seedPatients(db *gorm.DB, count int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	active := true
	for i := 0; i < count; i++ {
		patient := &entity.User{
			Role:     entity.RolePatient,
			Email:    fmt.Sprintf("patient%03d@example.com", i),
			Password: string(hash),
			FullName: gofakeit.Name(),
			Phone:    gofakeit.Phone(),
			IsActive: &active,
		}
		err := db.Where("email = ?", patient.Email).FirstOrCreate(patient).Error
		if err != nil {
			return err
		}
	}

	log.Printf("%d patients seeded", count)
	return nil
}
