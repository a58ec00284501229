package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"studiobook/internal/database"
	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

const day = 24 * time.Hour

func main() {
	db, err := database.Connect("studiobook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	log.Println("Running AutoMigrate...")
	for _, m := range []interface{ AutoMigrate() error }{
		userRepo, bookingRepo, equipmentRepo, paymentRepo, settingsRepo,
	} {
		if err := m.AutoMigrate(); err != nil {
			log.Fatal("AutoMigrate failed:", err)
		}
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM user_settings")
	db.Exec("DELETE FROM system_config")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	now := time.Now()

	log.Println("Creating users...")
	admin := createUser(ctx, userRepo, "admin@empirehouse.com", "Admin123!", "System Administrator", "+1234567890", domain.RoleAdmin)
	log.Println("Admin created:", admin.Email, "/ Admin123!")

	createUser(ctx, userRepo, "staff@empirehouse.com", "Staff123!", "Front Desk", "+1234567891", domain.RoleStaff)
	client := createUser(ctx, userRepo, "client@empirehouse.com", "Client123!", "Jane Doe", "+1234567892", domain.RoleClient)

	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{Name: "Canon EOS R5", Category: "Camera", Description: "Professional mirrorless camera with 45MP sensor", PricePerHour: 50.0, IsAvailable: true, MaintenanceDue: now.Add(30 * day).UnixMilli()},
		{Name: "Sony FX6", Category: "Camera", Description: "Cinema camera with full-frame sensor", PricePerHour: 75.0, IsAvailable: true, MaintenanceDue: now.Add(45 * day).UnixMilli()},
		{Name: "ARRI Alexa Mini", Category: "Camera", Description: "Professional cinema camera for high-end productions", PricePerHour: 100.0, IsAvailable: false, MaintenanceDue: now.Add(-day).UnixMilli()},
		{Name: "DJI Ronin RS3", Category: "Stabilizer", Description: "3-axis gimbal stabilizer for smooth footage", PricePerHour: 25.0, IsAvailable: true, MaintenanceDue: now.Add(60 * day).UnixMilli()},
		{Name: "Aputure 300D", Category: "Lighting", Description: "LED light with high output and color accuracy", PricePerHour: 30.0, IsAvailable: true, MaintenanceDue: now.Add(90 * day).UnixMilli()},
		{Name: "Rode NTG5", Category: "Audio", Description: "Shotgun microphone for professional audio recording", PricePerHour: 15.0, IsAvailable: true, MaintenanceDue: now.Add(120 * day).UnixMilli()},
		{Name: "Blackmagic URSA Mini", Category: "Camera", Description: "4.6K cinema camera with global shutter", PricePerHour: 80.0, IsAvailable: true, MaintenanceDue: now.Add(15 * day).UnixMilli()},
		{Name: "Teradek Bolt", Category: "Wireless", Description: "Wireless video transmission system", PricePerHour: 40.0, IsAvailable: true, MaintenanceDue: now.Add(75 * day).UnixMilli()},
	}
	for i := range equipment {
		equipment[i].ID = uuid.NewString()
		if err := equipmentRepo.Create(ctx, &equipment[i]); err != nil {
			log.Fatal("equipment seed failed:", err)
		}
	}

	log.Println("Creating sample booking...")
	camera := equipment[0]
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.FullName,
		Studio:      domain.StudioA,
		Equipment:   []domain.Equipment{camera},
		Date:        now.Add(2 * day).UnixMilli(),
		StartTime:   "10:00",
		EndTime:     "14:00",
		TotalHours:  4,
		TotalAmount: camera.PricePerHour * 4,
		Status:      domain.BookingConfirmed,
		CreatedAt:   now,
	}
	if err := bookingRepo.Create(ctx, booking); err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Println("Saving default system config...")
	cfg := domain.DefaultSystemConfig()
	if err := settingsRepo.SaveSystemConfig(ctx, &cfg); err != nil {
		log.Fatal("system config seed failed:", err)
	}

	log.Println("Seed complete.")
}

func createUser(ctx context.Context, repo *repository.UserRepository, email, password, fullName, phone string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal("user seed failed:", err)
	}
	return u
}
