package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"repaircore/pkg/domain"
)

func TestInsertSQLQuotesIdentifiers(t *testing.T) {
	got := InsertSQL("Order", []string{"uuid", "client", "status"}, Dollar)
	want := `INSERT INTO "Order" ("uuid", "client", "status") VALUES ($1, $2, $3)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got = InsertSQL("OrderService", []string{"order", "service"}, Question)
	want = `INSERT INTO "OrderService" ("order", "service") VALUES (?, ?)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBindRecordCoversEveryEntity(t *testing.T) {
	now := time.Now().UTC()
	meta := domain.MetaAt(now)
	records := []domain.Record{
		domain.ComponentKind{ID: uuid.New(), Name: "Battery"},
		domain.Service{ID: uuid.New(), Name: "Battery replacement", Meta: meta},
		domain.Position{ID: uuid.New(), Name: "Manager", Salary: decimal.NewFromInt(1200), Meta: meta},
		domain.Manufacturer{ID: uuid.New(), Name: "Apple", Country: "US"},
		domain.Person{ID: uuid.New(), FirstName: "A", LastName: "B", Email: "a@b", Phone: "1", Meta: meta},
		domain.Supplier{ID: uuid.New(), Name: "Acme", IBAN: "X", SWIFT: "Y", Address: "Z", Country: "US"},
		domain.LaborContract{ID: uuid.New(), Person: uuid.New(), Passport: "123", Status: domain.ContractActive, Signed: &now, Meta: meta},
		domain.PhoneModel{ID: uuid.New(), Name: "IPhone 13", Manufacturer: uuid.New()},
		domain.Staff{ID: uuid.New(), Contract: uuid.New(), Position: uuid.New(), Status: domain.StaffWorking},
		domain.Component{ID: uuid.New(), Name: "IPhone 13 Battery", Kind: uuid.New(), PhoneModel: uuid.New(), Manufacturer: uuid.New()},
		domain.Phone{ID: uuid.New(), Person: uuid.New(), IMEI: "1", Wifi: "2", Bluetooth: "3", Model: uuid.New(), Color: domain.ColorBlack, Meta: meta},
		domain.Account{ID: uuid.New(), Staff: uuid.New(), Login: "x", Password: "y", Role: domain.RoleManager, Status: domain.AccountActive, Meta: meta},
		domain.SupplyContract{ID: uuid.New(), Supplier: uuid.New(), Manager: uuid.New(), Status: domain.ContractReview, Meta: meta},
		domain.Order{ID: uuid.New(), Client: uuid.New(), Phone: uuid.New(), Serviceman: uuid.New(), Shopman: uuid.New(), Status: domain.OrderActive, Meta: meta},
		domain.Supply{ID: uuid.New(), Contract: uuid.New(), Staff: uuid.New(), Status: domain.SupplyPaid, Signed: &now, Meta: meta},
		domain.Warehouse{ID: uuid.New(), Component: uuid.New(), Supplier: uuid.New(), Price: decimal.NewFromInt(10), Amount: 2, Meta: meta},
		domain.ServicePhoneModel{Service: uuid.New(), PhoneModel: uuid.New(), Price: decimal.NewFromInt(5), Meta: meta},
		domain.WarehouseSupply{Item: uuid.New(), Supply: uuid.New(), Amount: 1, Created: now},
		domain.OrderService{Order: uuid.New(), Service: uuid.New(), Price: decimal.NewFromInt(3)},
		domain.OrderWarehouse{Order: uuid.New(), Item: uuid.New(), Amount: 1, Price: decimal.NewFromInt(4)},
	}
	if len(records) != len(Schema) {
		t.Fatalf("covering %d entities but schema has %d tables", len(records), len(Schema))
	}
	for _, rec := range records {
		table, columns, args, err := BindRecord(rec)
		if err != nil {
			t.Fatalf("BindRecord(%T): %v", rec, err)
		}
		if table != rec.Table() {
			t.Errorf("%T bound to table %q, want %q", rec, table, rec.Table())
		}
		if len(columns) != len(args) {
			t.Errorf("%T: %d columns but %d args", rec, len(columns), len(args))
		}
	}
}

func TestBindRecordRejectsUnknownType(t *testing.T) {
	if _, _, _, err := BindRecord(unknownRecord{}); err == nil {
		t.Fatal("expected error for unknown record type")
	}
}

type unknownRecord struct{}

func (unknownRecord) Table() string { return "Unknown" }

func TestSchemaCreatesEveryTable(t *testing.T) {
	for _, stmt := range Schema {
		if !strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS") {
			t.Errorf("statement not idempotent: %.50s", stmt)
		}
	}
}
