package entities

// LocalCivil is an instant expressed in the reference time zone's civil
// calendar. Date is "YYYY-MM-DD", TimeOfDay is "HH:MM" at minute resolution;
// both compare correctly as plain strings. Weekday is 1=Monday..7=Sunday.
type LocalCivil struct {
	Date      string
	Weekday   int
	TimeOfDay string
}
