// Package device derives a human-readable device label from a User-Agent
// header so session listings can show "Firefox on Linux" instead of the raw
// string.
package device

import (
	"fmt"

	"github.com/mssola/useragent"
)

// Label parses a User-Agent header into a short display name. Unknown or
// empty agents map to "unknown device".
func Label(rawUserAgent string) string {
	if rawUserAgent == "" {
		return "unknown device"
	}

	ua := useragent.New(rawUserAgent)
	name, _ := ua.Browser()
	os := ua.OS()

	switch {
	case name != "" && os != "":
		return fmt.Sprintf("%s on %s", name, os)
	case name != "":
		return name
	case os != "":
		return os
	default:
		return "unknown device"
	}
}
