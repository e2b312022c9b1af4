// Package timezone keeps the application timezone used to read and print reservation dates.
//
// Dates sent without an offset, such as "2025-12-01T15:00:00" or "2025-12-01", are read in
// this timezone:
//
//	t, err := timezone.Parse("2006-01-02", "2025-12-01")
//
// The timezone comes from the APP_TIMEZONE environment variable and is loaded when the package
// is imported. Use IANA names such as "UTC" or "America/Panama".
package timezone
