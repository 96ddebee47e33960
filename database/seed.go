package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"homeserve/models"
)

// generateOpenSlots builds the open-slot set for a fresh offering: six
// times a day for each of the next 30 days.
func generateOpenSlots(now time.Time) []time.Time {
	times := []struct{ hour, minute int }{
		{9, 0}, {10, 0}, {11, 0}, {14, 0}, {15, 0}, {16, 0},
	}
	var slots []time.Time
	for day := 1; day <= 30; day++ {
		date := now.AddDate(0, 0, day)
		for _, t := range times {
			slots = append(slots, time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, 0, 0, time.UTC))
		}
	}
	return slots
}

// Seed populates the services and packages collections when they are empty.
// Unlike a dev fixture it never wipes existing data: reseeding on every
// restart would resurrect slots that were already booked.
func Seed(ctx context.Context, db *mongo.Database) error {
	serviceColl := db.Collection("services")
	packageColl := db.Collection("packages")

	count, err := serviceColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	services := []models.Service{
		{
			ID:                uuid.New().String(),
			Name:              "House Cleaning",
			Description:       "Professional house cleaning service with eco-friendly products",
			Category:          "cleaning",
			Price:             80,
			Duration:          180,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Masks required",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Basic Plumbing Service",
			Description:       "Professional plumbing repair and maintenance",
			Category:          "plumbing",
			Price:             100,
			Duration:          120,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Social distancing required",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Garden Maintenance",
			Description:       "Professional garden maintenance and landscaping",
			Category:          "gardening",
			Price:             60,
			Duration:          120,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Outdoor service",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Electrical Inspection",
			Description:       "Comprehensive electrical system inspection and safety check",
			Category:          "electrical",
			Price:             90,
			Duration:          60,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Masks required",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Emergency Electrical Repair",
			Description:       "24/7 emergency electrical repair service",
			Category:          "electrical",
			Price:             150,
			Duration:          120,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Social distancing required",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Emergency Plumbing",
			Description:       "24/7 emergency plumbing repair service",
			Category:          "plumbing",
			Price:             180,
			Duration:          120,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Social distancing required",
		},
		{
			ID:                uuid.New().String(),
			Name:              "Drain Cleaning",
			Description:       "Professional drain cleaning and maintenance",
			Category:          "plumbing",
			Price:             120,
			Duration:          90,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Social distancing required",
		},
	}

	serviceDocs := make([]interface{}, len(services))
	for i, s := range services {
		serviceDocs[i] = s
	}
	if _, err := serviceColl.InsertMany(ctx, serviceDocs); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	packages := []models.ServicePackage{
		{
			ID:          uuid.New().String(),
			Name:        "Home Starter Package",
			Description: "Basic home maintenance package including cleaning and garden care",
			Items: []models.PackageItem{
				{ServiceID: services[0].ID, Quantity: 1}, // House Cleaning
				{ServiceID: services[2].ID, Quantity: 1}, // Garden Maintenance
			},
			Price:             130,
			Discount:          10,
			Duration:          300,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Masks required for indoor services",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Complete Home Care",
			Description: "Comprehensive home maintenance package",
			Items: []models.PackageItem{
				{ServiceID: services[0].ID, Quantity: 1}, // House Cleaning
				{ServiceID: services[1].ID, Quantity: 1}, // Basic Plumbing
				{ServiceID: services[2].ID, Quantity: 1}, // Garden Maintenance
			},
			Price:             220,
			Discount:          15,
			Duration:          420,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Masks required for indoor services",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Home Safety Package",
			Description: "Complete home safety inspection and maintenance",
			Items: []models.PackageItem{
				{ServiceID: services[3].ID, Quantity: 1}, // Electrical Inspection
				{ServiceID: services[1].ID, Quantity: 1}, // Basic Plumbing
			},
			Price:             170,
			Discount:          12,
			Duration:          180,
			OpenSlots:         generateOpenSlots(now),
			CovidRestrictions: "Masks required for all services",
		},
	}

	packageDocs := make([]interface{}, len(packages))
	for i, p := range packages {
		packageDocs[i] = p
	}
	if _, err := packageColl.InsertMany(ctx, packageDocs); err != nil {
		return fmt.Errorf("failed to seed packages: %w", err)
	}
	return nil
}
