package app

import "regexp"

// 5-digit US zip, optional 4-digit extension.
var reZip = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ValidLocationCode reports whether code may be sent to the gateway. The
// empty string is valid and means "no location supplied".
func ValidLocationCode(code string) bool {
	return code == "" || reZip.MatchString(code)
}
