// Package persistence holds the relational schema and the record-to-row
// binding shared by the SQL-backed record stores.
package persistence

import (
	"fmt"
	"strings"

	"repaircore/pkg/domain"
)

// Placeholder renders the parameter marker for the i-th column (1-based).
type Placeholder func(i int) string

// Dollar renders $1, $2, ... (postgres).
func Dollar(i int) string { return fmt.Sprintf("$%d", i) }

// Question renders ? for every position (sqlite).
func Question(int) string { return "?" }

// InsertSQL builds an INSERT statement for the given table and columns. All
// identifiers are quoted; several table names (Order) collide with SQL
// keywords.
func InsertSQL(table string, columns []string, ph Placeholder) string {
	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = `"` + c + `"`
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf(`INSERT INTO %q (%s) VALUES (%s)`,
		table, strings.Join(quoted, ", "), strings.Join(marks, ", "))
}

// BindRecord maps an entity to its table, column list, and argument vector.
// uuid.UUID and decimal.Decimal implement driver.Valuer, so values pass
// through database/sql unchanged.
func BindRecord(rec domain.Record) (table string, columns []string, args []any, err error) {
	switch r := rec.(type) {
	case domain.ComponentKind:
		return r.Table(),
			[]string{"uuid", "name", "details"},
			[]any{r.ID, r.Name, r.Details}, nil
	case domain.Service:
		return r.Table(),
			[]string{"uuid", "name", "description", "created", "updated"},
			[]any{r.ID, r.Name, r.Description, r.Meta.Created, r.Meta.Updated}, nil
	case domain.Position:
		return r.Table(),
			[]string{"uuid", "name", "details", "salary", "created", "updated"},
			[]any{r.ID, r.Name, r.Details, r.Salary, r.Meta.Created, r.Meta.Updated}, nil
	case domain.Manufacturer:
		return r.Table(),
			[]string{"uuid", "name", "country"},
			[]any{r.ID, r.Name, r.Country}, nil
	case domain.Person:
		return r.Table(),
			[]string{"uuid", "first_name", "middle_name", "last_name", "email", "phone", "created", "updated"},
			[]any{r.ID, r.FirstName, r.MiddleName, r.LastName, r.Email, r.Phone, r.Meta.Created, r.Meta.Updated}, nil
	case domain.Supplier:
		return r.Table(),
			[]string{"uuid", "name", "iban", "swift", "address", "country"},
			[]any{r.ID, r.Name, r.IBAN, r.SWIFT, r.Address, r.Country}, nil
	case domain.LaborContract:
		return r.Table(),
			[]string{"uuid", "person", "passport", "status", "signed", "created", "updated"},
			[]any{r.ID, r.Person, r.Passport, string(r.Status), r.Signed, r.Meta.Created, r.Meta.Updated}, nil
	case domain.PhoneModel:
		return r.Table(),
			[]string{"uuid", "name", "description", "manufacturer"},
			[]any{r.ID, r.Name, r.Description, r.Manufacturer}, nil
	case domain.Staff:
		return r.Table(),
			[]string{"uuid", "contract", "position", "status"},
			[]any{r.ID, r.Contract, r.Position, string(r.Status)}, nil
	case domain.Component:
		return r.Table(),
			[]string{"uuid", "name", "kind", "phone_model", "manufacturer"},
			[]any{r.ID, r.Name, r.Kind, r.PhoneModel, r.Manufacturer}, nil
	case domain.Phone:
		return r.Table(),
			[]string{"uuid", "person", "imei", "wifi", "bluetooth", "model", "color", "created", "updated"},
			[]any{r.ID, r.Person, r.IMEI, r.Wifi, r.Bluetooth, r.Model, string(r.Color), r.Meta.Created, r.Meta.Updated}, nil
	case domain.Account:
		return r.Table(),
			[]string{"uuid", "staff", "login", "password", "role", "status", "created", "updated"},
			[]any{r.ID, r.Staff, r.Login, r.Password, string(r.Role), string(r.Status), r.Meta.Created, r.Meta.Updated}, nil
	case domain.SupplyContract:
		return r.Table(),
			[]string{"uuid", "supplier", "manager", "status", "signed", "created", "updated"},
			[]any{r.ID, r.Supplier, r.Manager, string(r.Status), r.Signed, r.Meta.Created, r.Meta.Updated}, nil
	case domain.Order:
		return r.Table(),
			[]string{"uuid", "client", "phone", "serviceman", "shopman", "status", "created", "updated"},
			[]any{r.ID, r.Client, r.Phone, r.Serviceman, r.Shopman, string(r.Status), r.Meta.Created, r.Meta.Updated}, nil
	case domain.Supply:
		return r.Table(),
			[]string{"uuid", "contract", "staff", "status", "signed", "created", "updated"},
			[]any{r.ID, r.Contract, r.Staff, string(r.Status), r.Signed, r.Meta.Created, r.Meta.Updated}, nil
	case domain.Warehouse:
		return r.Table(),
			[]string{"uuid", "component", "supplier", "price", "amount", "created", "updated"},
			[]any{r.ID, r.Component, r.Supplier, r.Price, r.Amount, r.Meta.Created, r.Meta.Updated}, nil
	case domain.ServicePhoneModel:
		return r.Table(),
			[]string{"service", "phone_model", "price", "created", "updated"},
			[]any{r.Service, r.PhoneModel, r.Price, r.Meta.Created, r.Meta.Updated}, nil
	case domain.WarehouseSupply:
		return r.Table(),
			[]string{"item", "supply", "amount", "created"},
			[]any{r.Item, r.Supply, r.Amount, r.Created}, nil
	case domain.OrderService:
		return r.Table(),
			[]string{"order", "service", "price"},
			[]any{r.Order, r.Service, r.Price}, nil
	case domain.OrderWarehouse:
		return r.Table(),
			[]string{"order", "item", "amount", "price"},
			[]any{r.Order, r.Item, r.Amount, r.Price}, nil
	default:
		return "", nil, nil, fmt.Errorf("no row binding for record type %T", rec)
	}
}
