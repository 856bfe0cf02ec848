package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a user whose login
	// is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMasterSecretAlreadyExists is returned when a master-secret insert
	// targets a user who already has one. The existing record is never
	// modified.
	ErrMasterSecretAlreadyExists = errors.New("master secret record already exists")

	// ErrEntryNotSaved is returned when a vault-entry INSERT completes
	// without a driver error but affects zero rows.
	ErrEntryNotSaved = errors.New("vault entry was not saved")
)

// Low-level database errors wrapped by repository methods when a SQL
// operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("error scanning sql rows")
)
