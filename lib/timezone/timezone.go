package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Ljubljana")
	if err != nil {
		panic(err)
	}
}

// observation dates are calendar days in the stores' timezone, so pin it
// regardless of where the scrape job happens to run
func Now() time.Time {
	return time.Now().In(Location)
}

// Today returns the current calendar date as YYYY-MM-DD, the format
// price observations are keyed by.
func Today() string {
	return Now().Format(time.DateOnly)
}
