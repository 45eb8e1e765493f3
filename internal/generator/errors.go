package generator

import (
	"fmt"

	"repaircore/pkg/domain"
)

// ErrInsufficientPersons reports a contract count that cannot be satisfied
// injectively by the generated person pool.
type ErrInsufficientPersons struct {
	Persons   int
	Contracts int
}

func (e ErrInsufficientPersons) Error() string {
	return fmt.Sprintf("generator: %d labor contracts requested but only %d persons generated; each contract needs a distinct person",
		e.Contracts, e.Persons)
}

// ErrNoRoleHolders reports that a generator requiring staff with a specific
// role found none. Upstream staffing must produce at least one holder; this
// is a precondition, not something the generator can repair.
type ErrNoRoleHolders struct {
	Role domain.AccountRole
}

func (e ErrNoRoleHolders) Error() string {
	return fmt.Sprintf("generator: no staff holding role %s", e.Role)
}

// ErrSampleLookup reports a natural-key join miss between sample catalogs.
// The catalogs ship with the binary, so a miss is a configuration error.
type ErrSampleLookup struct {
	Catalog string // the catalog searched
	Name    string // the name that missed
	For     string // the record that needed it
}

func (e ErrSampleLookup) Error() string {
	return fmt.Sprintf("generator: %s %q not found for %q", e.Catalog, e.Name, e.For)
}
