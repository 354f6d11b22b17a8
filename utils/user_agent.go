package utils

import (
	"fmt"

	"github.com/mssola/useragent"
)

// DescribeUserAgent gives a short "Browser on OS (device)" summary for sign-in logs
func DescribeUserAgent(userAgent string) string {
	ua := useragent.New(userAgent)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Other"
	}
	os := ua.OSInfo().Name
	if os == "" {
		os = "Other"
	}

	device := "desktop"
	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	}
	return fmt.Sprintf("%s on %s (%s)", browser, os, device)
}
