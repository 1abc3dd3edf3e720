package entity

import (
	"regexp"
	"strings"
	"time"
)

var bundleSizePattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(GB|MB)`)

// ISOTimestampLayout renders UTC timestamps with millisecond precision, e.g. 2024-03-01T09:30:00.000Z
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// BundleSize extracts a normalized size token such as "2.5GB" from a bundle name.
// Names without a size token are returned unchanged.
func BundleSize(bundleName string) string {
	match := bundleSizePattern.FindString(bundleName)
	if match == "" {
		return bundleName
	}
	return strings.ToUpper(strings.Join(strings.Fields(match), ""))
}

// FormatISOTimestamp renders t in UTC using ISOTimestampLayout
func FormatISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}
