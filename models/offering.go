package models

import (
	"sort"
	"time"
)

// OfferingKind discriminates the two bookable offering variants.
type OfferingKind string

const (
	OfferingService OfferingKind = "service"
	OfferingPackage OfferingKind = "package"
)

// OfferingRef is an explicit tagged reference to a bookable offering.
// A booking carries exactly one of these; the kind selects the collection.
type OfferingRef struct {
	Kind OfferingKind `bson:"kind" json:"kind"`
	ID   string       `bson:"id" json:"id"`
}

// Offering is the capability shared by services and packages: identity,
// pricing, duration, the open-slot set and restriction text.
type Offering interface {
	OfferingID() string
	Kind() OfferingKind
	DisplayName() string
	BasePrice() float64
	FinalPrice() float64
	DurationMinutes() int
	Slots() []time.Time
	Restrictions() string
}

// Service is a single bookable home service.
type Service struct {
	ID                string      `bson:"id" json:"id"`
	Name              string      `bson:"name" json:"name"`
	Description       string      `bson:"description" json:"description"`
	Category          string      `bson:"category" json:"category"`
	Price             float64     `bson:"price" json:"price"`
	Duration          int         `bson:"duration" json:"duration"` // in minutes
	OpenSlots         []time.Time `bson:"openSlots" json:"openSlots"`
	CovidRestrictions string      `bson:"covidRestrictions" json:"covidRestrictions"`
}

func (s Service) OfferingID() string   { return s.ID }
func (s Service) Kind() OfferingKind   { return OfferingService }
func (s Service) DisplayName() string  { return s.Name }
func (s Service) BasePrice() float64   { return s.Price }
func (s Service) FinalPrice() float64  { return s.Price }
func (s Service) DurationMinutes() int { return s.Duration }
func (s Service) Slots() []time.Time   { return s.OpenSlots }
func (s Service) Restrictions() string { return s.CovidRestrictions }

// Ref returns the tagged reference for this service.
func (s Service) Ref() OfferingRef { return OfferingRef{Kind: OfferingService, ID: s.ID} }

// PackageItem is one component service of a package, with a quantity.
type PackageItem struct {
	ServiceID string   `bson:"serviceId" json:"serviceId"`
	Quantity  int      `bson:"quantity" json:"quantity"`
	Service   *Service `bson:"-" json:"service,omitempty"` // populated at read time
}

// ServicePackage bundles several services at a discounted price.
type ServicePackage struct {
	ID                string        `bson:"id" json:"id"`
	Name              string        `bson:"name" json:"name"`
	Description       string        `bson:"description" json:"description"`
	Items             []PackageItem `bson:"items" json:"items"`
	Price             float64       `bson:"price" json:"price"`
	Discount          float64       `bson:"discount" json:"discount"` // percentage
	Duration          int           `bson:"duration" json:"duration"` // total, in minutes
	OpenSlots         []time.Time   `bson:"openSlots" json:"openSlots"`
	CovidRestrictions string        `bson:"covidRestrictions" json:"covidRestrictions"`
}

func (p ServicePackage) OfferingID() string  { return p.ID }
func (p ServicePackage) Kind() OfferingKind  { return OfferingPackage }
func (p ServicePackage) DisplayName() string { return p.Name }
func (p ServicePackage) BasePrice() float64  { return p.Price }

// FinalPrice applies the percentage discount to the base price.
func (p ServicePackage) FinalPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}

func (p ServicePackage) DurationMinutes() int { return p.Duration }
func (p ServicePackage) Slots() []time.Time   { return p.OpenSlots }
func (p ServicePackage) Restrictions() string { return p.CovidRestrictions }

// Ref returns the tagged reference for this package.
func (p ServicePackage) Ref() OfferingRef { return OfferingRef{Kind: OfferingPackage, ID: p.ID} }

// SlotGroup lists the open times of one calendar day, for client display.
type SlotGroup struct {
	Date  string   `json:"date"`  // "2006-01-02"
	Times []string `json:"times"` // "15:04", ascending
}

// GroupSlotsByDate orders timestamps and groups them by calendar date (UTC).
// Duplicate timestamps collapse into a single entry.
func GroupSlotsByDate(slots []time.Time) []SlotGroup {
	byDate := make(map[string]map[string]bool)
	for _, slot := range slots {
		utc := slot.UTC()
		dateStr := utc.Format("2006-01-02")
		timeStr := utc.Format("15:04")
		if byDate[dateStr] == nil {
			byDate[dateStr] = make(map[string]bool)
		}
		byDate[dateStr][timeStr] = true
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]SlotGroup, 0, len(dates))
	for _, d := range dates {
		times := make([]string, 0, len(byDate[d]))
		for t := range byDate[d] {
			times = append(times, t)
		}
		sort.Strings(times)
		groups = append(groups, SlotGroup{Date: d, Times: times})
	}
	return groups
}
