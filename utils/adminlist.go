package utils

import (
	"log"
	"os"
	"strings"
)

var adminEmails map[string]bool

// LoadAdminEmails parses the ADMIN_EMAILS env value (comma-separated) into the
// allow-list. Entries are trimmed and lowercased. An empty value leaves the set
// empty, so every admin check fails closed.
func LoadAdminEmails() {
	adminEmails = ParseAdminEmails(os.Getenv("ADMIN_EMAILS"))
	if len(adminEmails) == 0 {
		log.Println("WARNING: ADMIN_EMAILS is empty, all admin checks will fail")
	}
}

// ParseAdminEmails builds the allow-list set from a comma-separated string.
func ParseAdminEmails(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(entry))
		if email != "" {
			set[email] = true
		}
	}
	return set
}

// IsAdmin reports whether email is on the allow-list. Matching is
// case-insensitive and ignores surrounding whitespace.
func IsAdmin(email string) bool {
	return adminEmails[strings.ToLower(strings.TrimSpace(email))]
}
