package configs

import (
	"log"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedAdmin creates the first admin user from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:       email,
		Password:    string(hash),
		Name:        "Admin",
		PhoneNumber: getEnv("ADMIN_PHONE", ""),
		Role:        "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the status/method lookup rows and the settings row.
func SeedLookups() error {
	db := DB()

	// Order statuses
	for _, name := range []string{
		entity.StatusPendingPayment,
		entity.StatusBeingPrepared,
		entity.StatusReadyForPickup,
		entity.StatusOnTheWay,
		entity.StatusDelivered,
		entity.StatusCanceled,
	} {
		db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name})
	}

	// Payment
	for _, name := range []string{
		entity.PaymentMethodPix,
		entity.PaymentMethodCreditCard,
		entity.PaymentMethodCashOnDelivery,
	} {
		db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: name})
	}
	for _, name := range []string{entity.PaymentStatusPending, entity.PaymentStatusPaid} {
		db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: name})
	}

	// Store settings singleton
	var cnt int64
	db.Model(&entity.StoreSettings{}).Count(&cnt)
	if cnt == 0 {
		settings := entity.StoreSettings{
			OpeningHours:            "14:00-23:00",
			DeliveryFee:             decimal.NewFromFloat(3.00),
			FreeDeliveryActive:      false,
			FreeDeliveryMinSubtotal: decimal.NewFromFloat(30.00),
			FreeDeliveryWeekdays:    datatypes.JSON([]byte("[]")),
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	log.Println("lookup tables seeded")
	return nil
}
