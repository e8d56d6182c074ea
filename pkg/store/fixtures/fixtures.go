// Package fixtures holds the demo dataset shared by the memory store and `olivectl seed`.
package fixtures

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"olive/entities"
)

// DemoPassword opens every fixture account.
const DemoPassword = "olive123"

type Dataset struct {
	Users      []entities.User
	Fields     []entities.Field
	Tasks      []entities.Task
	Lifecycles []entities.Lifecycle
}

const (
	AdminID      = "u-admin"
	OwnerID      = "u-owner"
	AgronomistID = "u-agronomist"
	ProviderID   = "u-provider"

	KoroneikiID = "f-koroneiki"
	TerraceID   = "f-terrace"
	ValleyID    = "f-valley"
)

func ptr[T any](v T) *T { return &v }

// Build assembles the dataset with timestamps spread around now.
func Build(now time.Time) Dataset {
	day := func(offset int) time.Time {
		return now.Truncate(24*time.Hour).AddDate(0, 0, offset).Add(8 * time.Hour)
	}
	// Fixture accounts only; the low cost keeps store construction fast in tests.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	pw := string(hash)

	users := []entities.User{
		{ID: AdminID, Email: "admin@olive.example", FirstName: "Eleni", LastName: "Papadaki", Role: entities.RoleAdministrator, PasswordHash: pw},
		{ID: OwnerID, Email: "owner@olive.example", FirstName: "Nikos", LastName: "Kostas", Role: entities.RoleFieldOwner, PasswordHash: pw},
		{ID: AgronomistID, Email: "agronomist@olive.example", FirstName: "Maria", LastName: "Lopez", Role: entities.RoleAgronomist, PasswordHash: pw},
		{ID: ProviderID, Email: "provider@olive.example", FirstName: "Yannis", Role: entities.RoleServiceProvider, PasswordHash: pw},
	}
	for i := range users {
		users[i].CreatedAt = day(-120)
		users[i].UpdatedAt = day(-120)
	}

	fields := []entities.Field{
		{ID: KoroneikiID, OwnerID: OwnerID, Name: "Koroneiki North Grove", Latitude: ptr(37.0389), Longitude: ptr(22.1142),
			Area: 4.2, Variety: "Koroneiki", TreeAge: ptr(35), GroundType: "Clay loam", Irrigation: true,
			CurrentLifecycleYear: entities.LifecycleHigh, CreatedAt: day(-90), UpdatedAt: day(-90)},
		{ID: TerraceID, OwnerID: OwnerID, Name: "Hillside Terrace", Latitude: ptr(37.0521), Longitude: ptr(22.0917),
			Area: 1.8, Variety: "Kalamata", TreeAge: ptr(60), GroundType: "Stony", Irrigation: false,
			CurrentLifecycleYear: entities.LifecycleLow, CreatedAt: day(-80), UpdatedAt: day(-80)},
		{ID: ValleyID, OwnerID: AdminID, Name: "Valley Estate", Area: 7.5, Variety: "Manaki",
			Irrigation: true, CurrentLifecycleYear: entities.LifecycleLow, CreatedAt: day(-60), UpdatedAt: day(-60)},
	}

	tasks := []entities.Task{
		{ID: "t-prune-north", FieldID: KoroneikiID, Type: "Pruning", Title: "Winter pruning, rows 1-20",
			Status: entities.TaskCompleted, AssignedTo: ProviderID,
			ScheduledStart: ptr(day(-30)), ScheduledEnd: ptr(day(-27)),
			ActualStart: ptr(day(-30)), ActualEnd: ptr(day(-28)),
			LifecycleYear: entities.LifecycleHigh, Cost: ptr(640.0), CreatedAt: day(-35),
			Evidence: []entities.Evidence{{ID: "e-prune-1", TaskID: "t-prune-north", Notes: "Rows 1-20 done, brush chipped on site.", Timestamp: day(-28)}}},
		{ID: "t-fert-north", FieldID: KoroneikiID, Type: "Fertilization", Title: "Nitrogen application",
			Status: entities.TaskInProgress, AssignedTo: ProviderID,
			ScheduledStart: ptr(day(-1)), ScheduledEnd: ptr(day(2)), ActualStart: ptr(day(-1)),
			LifecycleYear: entities.LifecycleHigh, CreatedAt: day(-10)},
		{ID: "t-irrig-north", FieldID: KoroneikiID, Type: "Irrigation", Title: "Drip line inspection",
			Status: entities.TaskPending, ScheduledStart: ptr(day(3)), ScheduledEnd: ptr(day(6)),
			LifecycleYear: entities.LifecycleHigh, CreatedAt: day(-5)},
		{ID: "t-spray-terrace", FieldID: TerraceID, Type: "Pest Control", Title: "Olive fly bait spray",
			Status: entities.TaskCompleted, ScheduledStart: ptr(day(-15)), ScheduledEnd: ptr(day(-14)),
			ActualStart: ptr(day(-15)), ActualEnd: ptr(day(-14)),
			LifecycleYear: entities.LifecycleLow, Cost: ptr(180.0), CreatedAt: day(-20)},
		{ID: "t-soil-terrace", FieldID: TerraceID, Type: "Soil Analysis", Title: "Soil sampling",
			Status: entities.TaskCompleted, ActualEnd: ptr(day(-8)),
			LifecycleYear: entities.LifecycleLow, Cost: ptr(0.0), CreatedAt: day(-12)},
		{ID: "t-harvest-valley", FieldID: ValleyID, Type: "Harvest", Title: "Early harvest planning",
			Status: entities.TaskPending, AssignedTo: AgronomistID,
			ScheduledStart: ptr(day(10)), ScheduledEnd: ptr(day(20)),
			LifecycleYear: entities.LifecycleLow, CreatedAt: day(-2)},
	}
	for i := range tasks {
		tasks[i].UpdatedAt = tasks[i].CreatedAt
		if tasks[i].Evidence == nil {
			tasks[i].Evidence = []entities.Evidence{}
		}
	}

	lifecycles := []entities.Lifecycle{
		{ID: "l-koroneiki", FieldID: KoroneikiID, CurrentYear: entities.LifecycleHigh, CycleStartDate: day(-90),
			CreatedAt: day(-90), UpdatedAt: day(-90)},
	}

	return Dataset{Users: users, Fields: fields, Tasks: tasks, Lifecycles: lifecycles}
}
