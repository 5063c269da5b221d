// Seeds a demo specialist account with a week of availability and a couple
// of leads, for local development against the WhatsApp automation.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"davi/config"
	"davi/database"
	"davi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tenantColl := db.Collection("tenants")
	slotColl := db.Collection("availability_slots")
	leadColl := db.Collection("leads")

	// Clear existing demo data.
	for _, coll := range []string{"tenants", "availability_slots", "leads", "appointments"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	tenantID := uuid.New().String()
	tenant := models.Tenant{
		ID:             tenantID,
		Name:           "Dra. Ana Ribeiro",
		Email:          "ana@demo.contabil.br",
		Phone:          "+5511999990000",
		PasswordHash:   string(hash),
		Classification: models.DefaultClassification(),
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := tenantColl.InsertOne(ctx, tenant); err != nil {
		log.Fatalf("Failed to insert demo tenant: %v", err)
	}

	// One week of weekday business-hour slots, stored as wall-clock UTC.
	var slots []interface{}
	day := time.Now().UTC().AddDate(0, 0, 1)
	for d := 0; d < 7; d++ {
		current := day.AddDate(0, 0, d)
		if wd := current.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for hour := 9; hour < 12; hour++ {
			start := time.Date(current.Year(), current.Month(), current.Day(), hour, 0, 0, 0, time.UTC)
			slots = append(slots, models.AvailabilitySlot{
				ID:        uuid.New().String(),
				TenantID:  tenantID,
				StartTime: start,
				EndTime:   start.Add(time.Hour),
				IsBooked:  false,
				CreatedAt: time.Now().UTC(),
			})
		}
	}
	if _, err := slotColl.InsertMany(ctx, slots); err != nil {
		log.Fatalf("Failed to insert demo slots: %v", err)
	}

	leads := []interface{}{
		models.Lead{
			ID:              uuid.New().String(),
			TenantID:        tenantID,
			Name:            "Carlos Mendes",
			Contact:         "+5511988881111",
			ProductInterest: "Gestão Financeira",
			MainNeed:        "atraso nas guias de imposto",
			Budget:          "30 mil de faturamento mensal",
			Classification:  "tier2",
			Summary:         "Dono de transportadora, quer organizar o fiscal",
			Status:          models.LeadStatusQualified,
			CreatedAt:       time.Now().UTC(),
		},
		models.Lead{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      "Fernanda Costa",
			Contact:   "+5511977772222",
			Status:    models.LeadStatusIncoming,
			CreatedAt: time.Now().UTC(),
		},
	}
	if _, err := leadColl.InsertMany(ctx, leads); err != nil {
		log.Fatalf("Failed to insert demo leads: %v", err)
	}

	fmt.Printf("Seeded tenant %s with %d slots and %d leads\n", tenantID, len(slots), len(leads))
	fmt.Println("Login: ana@demo.contabil.br / demo1234")
}
