package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusFulfilled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "Pending", "done", "cancelled"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestEmailRX(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"user+tag@example.org",
	}
	for _, email := range valid {
		if !EmailRX.MatchString(email) {
			t.Errorf("valid email rejected: %q", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user @example.com",
		"user@-example.com",
	}
	for _, email := range invalid {
		if EmailRX.MatchString(email) {
			t.Errorf("malformed email accepted: %q", email)
		}
	}
}
