package util

import (
	"fmt"
	"time"
)

// ParseTimeWithFormats tries to parse the given time string with the provided layouts,
// in order, returning the first successful parse.
func ParseTimeWithFormats(strTime string, formats []string) (time.Time, error) {
	for _, format := range formats {
		tt, err := time.Parse(format, strTime)
		if err == nil {
			return tt, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse time %s, valid formats are %+v", strTime, formats)
}
