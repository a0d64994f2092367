package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSuiteNotFound is returned when a suite lookup by id or slug matches
	// no row.
	ErrSuiteNotFound = errors.New("suite was not found")

	// ErrSlugAlreadyExists is returned when an insert or update would produce
	// a duplicate suite slug.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrSuiteTypeNotFound is returned when a suite type lookup matches no row.
	ErrSuiteTypeNotFound = errors.New("suite type was not found")

	// ErrAmenityNotFound is returned when an amenity lookup matches no row.
	ErrAmenityNotFound = errors.New("amenity was not found")

	// ErrPhotoNotFound is returned when a photo lookup matches no row.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrStaffNotFound is returned when a staff member lookup matches no row.
	ErrStaffNotFound = errors.New("staff member was not found")

	// ErrSiteConfigNotFound is returned when the site_config singleton row has
	// not been created yet.
	ErrSiteConfigNotFound = errors.New("site config was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
