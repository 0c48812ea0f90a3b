package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookstore/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestValidateRequestInput(t *testing.T) {
	in := RequestInput{
		Title:          "  The Left Hand of Darkness  ",
		Author:         " Ursula K. Le Guin ",
		RequesterEmail: "reader@example.com",
	}
	errs := ValidateRequestInput(&in)
	if len(errs) != 0 {
		t.Fatalf("valid input rejected: %v", errs)
	}
	if in.Title != "The Left Hand of Darkness" {
		t.Errorf("title not trimmed: %q", in.Title)
	}
	if in.Author != "Ursula K. Le Guin" {
		t.Errorf("author not trimmed: %q", in.Author)
	}
}

func TestValidateRequestInputMalformedEmail(t *testing.T) {
	for _, email := range []string{"", "notanemail", "user@", "@example.com"} {
		in := RequestInput{Title: "A Title", Author: "An Author", RequesterEmail: email}
		errs := ValidateRequestInput(&in)
		if _, ok := errs["requesterEmail"]; !ok {
			t.Errorf("email %q should fail validation, got %v", email, errs)
		}
	}
}

func TestValidateRequestInputMissingFields(t *testing.T) {
	in := RequestInput{RequesterEmail: "reader@example.com"}
	errs := ValidateRequestInput(&in)
	if _, ok := errs["title"]; !ok {
		t.Error("missing title should fail validation")
	}
	if _, ok := errs["author"]; !ok {
		t.Error("missing author should fail validation")
	}

	blank := RequestInput{Title: "   ", Author: "\t", RequesterEmail: "reader@example.com"}
	if errs := ValidateRequestInput(&blank); len(errs) != 2 {
		t.Errorf("whitespace-only fields should fail validation, got %v", errs)
	}
}

func patchJSON(t *testing.T, router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// Transition bodies are validated before any database call: the status must
// be one of the four, and a rejection must carry a reason.
func TestUpdateRequestStatusValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/api/requests/:id/status", UpdateRequestStatus)
	path := "/api/requests/" + testRequestID + "/status"

	cases := []struct {
		name    string
		payload string
	}{
		{"unknown status", `{"status":"cancelled"}`},
		{"empty status", `{"status":""}`},
		{"capitalized status", `{"status":"Approved"}`},
		{"reject without reason", `{"status":"rejected"}`},
		{"reject with blank reason", `{"status":"rejected","adminNotes":"   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := patchJSON(t, router, path, tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestStatusUpdateDocApprove(t *testing.T) {
	now := time.Now()
	doc := StatusUpdateDoc(models.StatusApproved, "", "admin@example.com", now)

	set := doc["$set"].(bson.M)
	if set["status"] != models.StatusApproved {
		t.Errorf("status = %v", set["status"])
	}
	if set["respondedBy"] != "admin@example.com" {
		t.Errorf("respondedBy = %v", set["respondedBy"])
	}
	if set["respondedAt"] != now {
		t.Error("respondedAt not stamped")
	}

	// Approving after a rejection must not leave the old rejection notes
	// behind.
	unset, ok := doc["$unset"].(bson.M)
	if !ok {
		t.Fatal("approve without notes should clear adminNotes")
	}
	if _, ok := unset["adminNotes"]; !ok {
		t.Error("adminNotes not cleared on approve")
	}
}

func TestStatusUpdateDocReject(t *testing.T) {
	doc := StatusUpdateDoc(models.StatusRejected, "out of print", "admin@example.com", time.Now())

	set := doc["$set"].(bson.M)
	if set["adminNotes"] != "out of print" {
		t.Errorf("adminNotes = %v", set["adminNotes"])
	}
	if _, ok := doc["$unset"]; ok {
		t.Error("rejection with notes should not unset anything")
	}
}

func TestStatusUpdateDocPendingReset(t *testing.T) {
	doc := StatusUpdateDoc(models.StatusPending, "", "admin@example.com", time.Now())

	set := doc["$set"].(bson.M)
	if set["status"] != models.StatusPending {
		t.Errorf("status = %v", set["status"])
	}
	if _, ok := set["respondedBy"]; ok {
		t.Error("reset must not stamp respondedBy")
	}

	unset := doc["$unset"].(bson.M)
	for _, field := range []string{"respondedBy", "respondedAt", "adminNotes"} {
		if _, ok := unset[field]; !ok {
			t.Errorf("reset should clear %s", field)
		}
	}
}
