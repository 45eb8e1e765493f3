package persistence

// Schema lists the table DDL in dependency order, portable between postgres
// and sqlite. Types stay on the common subset (TEXT, NUMERIC, INTEGER,
// TIMESTAMPTZ); sqlite treats unknown type names as affinities.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS "ComponentKind" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"details" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Service" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"description" TEXT,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Position" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"details" TEXT,
		"salary" NUMERIC NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Manufacturer" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"country" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Person" (
		"uuid" TEXT PRIMARY KEY,
		"first_name" TEXT NOT NULL,
		"middle_name" TEXT,
		"last_name" TEXT NOT NULL,
		"email" TEXT NOT NULL,
		"phone" TEXT NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Supplier" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"iban" TEXT NOT NULL,
		"swift" TEXT NOT NULL,
		"address" TEXT NOT NULL,
		"country" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "LaborContract" (
		"uuid" TEXT PRIMARY KEY,
		"person" TEXT NOT NULL REFERENCES "Person"("uuid"),
		"passport" TEXT NOT NULL,
		"status" TEXT NOT NULL,
		"signed" TIMESTAMPTZ,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "PhoneModel" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"description" TEXT,
		"manufacturer" TEXT NOT NULL REFERENCES "Manufacturer"("uuid")
	)`,
	`CREATE TABLE IF NOT EXISTS "Staff" (
		"uuid" TEXT PRIMARY KEY,
		"contract" TEXT NOT NULL REFERENCES "LaborContract"("uuid"),
		"position" TEXT NOT NULL REFERENCES "Position"("uuid"),
		"status" TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Component" (
		"uuid" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"kind" TEXT NOT NULL REFERENCES "ComponentKind"("uuid"),
		"phone_model" TEXT NOT NULL REFERENCES "PhoneModel"("uuid"),
		"manufacturer" TEXT NOT NULL REFERENCES "Manufacturer"("uuid")
	)`,
	`CREATE TABLE IF NOT EXISTS "Phone" (
		"uuid" TEXT PRIMARY KEY,
		"person" TEXT NOT NULL REFERENCES "Person"("uuid"),
		"imei" TEXT NOT NULL,
		"wifi" TEXT NOT NULL,
		"bluetooth" TEXT NOT NULL,
		"model" TEXT NOT NULL REFERENCES "PhoneModel"("uuid"),
		"color" TEXT NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Account" (
		"uuid" TEXT PRIMARY KEY,
		"staff" TEXT NOT NULL REFERENCES "Staff"("uuid"),
		"login" TEXT NOT NULL,
		"password" TEXT NOT NULL,
		"role" TEXT NOT NULL,
		"status" TEXT NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "SupplyContract" (
		"uuid" TEXT PRIMARY KEY,
		"supplier" TEXT NOT NULL REFERENCES "Supplier"("uuid"),
		"manager" TEXT NOT NULL REFERENCES "Staff"("uuid"),
		"status" TEXT NOT NULL,
		"signed" TIMESTAMPTZ,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Order" (
		"uuid" TEXT PRIMARY KEY,
		"client" TEXT NOT NULL REFERENCES "Person"("uuid"),
		"phone" TEXT NOT NULL REFERENCES "Phone"("uuid"),
		"serviceman" TEXT NOT NULL REFERENCES "Staff"("uuid"),
		"shopman" TEXT NOT NULL REFERENCES "Staff"("uuid"),
		"status" TEXT NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Supply" (
		"uuid" TEXT PRIMARY KEY,
		"contract" TEXT NOT NULL REFERENCES "SupplyContract"("uuid"),
		"staff" TEXT NOT NULL REFERENCES "Staff"("uuid"),
		"status" TEXT NOT NULL,
		"signed" TIMESTAMPTZ,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "Warehouse" (
		"uuid" TEXT PRIMARY KEY,
		"component" TEXT NOT NULL REFERENCES "Component"("uuid"),
		"supplier" TEXT NOT NULL REFERENCES "Supplier"("uuid"),
		"price" NUMERIC NOT NULL,
		"amount" INTEGER NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS "ServicePhoneModel" (
		"service" TEXT NOT NULL REFERENCES "Service"("uuid"),
		"phone_model" TEXT NOT NULL REFERENCES "PhoneModel"("uuid"),
		"price" NUMERIC NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		"updated" TIMESTAMPTZ NOT NULL,
		PRIMARY KEY ("service", "phone_model")
	)`,
	`CREATE TABLE IF NOT EXISTS "WarehouseSupply" (
		"item" TEXT NOT NULL REFERENCES "Warehouse"("uuid"),
		"supply" TEXT NOT NULL REFERENCES "Supply"("uuid"),
		"amount" INTEGER NOT NULL,
		"created" TIMESTAMPTZ NOT NULL,
		PRIMARY KEY ("item", "supply")
	)`,
	`CREATE TABLE IF NOT EXISTS "OrderService" (
		"order" TEXT NOT NULL REFERENCES "Order"("uuid"),
		"service" TEXT NOT NULL REFERENCES "Service"("uuid"),
		"price" NUMERIC NOT NULL,
		PRIMARY KEY ("order", "service")
	)`,
	`CREATE TABLE IF NOT EXISTS "OrderWarehouse" (
		"order" TEXT NOT NULL REFERENCES "Order"("uuid"),
		"item" TEXT NOT NULL REFERENCES "Warehouse"("uuid"),
		"amount" INTEGER NOT NULL,
		"price" NUMERIC NOT NULL,
		PRIMARY KEY ("order", "item")
	)`,
}
