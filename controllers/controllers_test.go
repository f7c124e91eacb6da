package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	config "github.com/circlo/circlo-backend-go/config"
)

// Validation failures are rejected before any storage call, so these run
// against an empty Config.

func perform(t *testing.T, handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Handle(method, "/api/committees/:committeeID/members/:memberID/pay", handler)
	r.Handle(method, "/t", handler)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCommitteeRejectsMissingMembers(t *testing.T) {
	cfg := &config.Config{}
	w := perform(t, CreateCommittee(cfg), http.MethodPost, "/t",
		`{"committeeName":"Savings Circle","chairperson":"Alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "members must be an array")
}

func TestCreateCommitteeRejectsInvalidBody(t *testing.T) {
	cfg := &config.Config{}
	w := perform(t, CreateCommittee(cfg), http.MethodPost, "/t", `{"members":"Alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinCommitteeRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no committee ID", `{"userName":"Alice"}`},
		{"no user name", `{"committeeID":"ABCD1234ABCD1234"}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			w := perform(t, JoinCommittee(cfg), http.MethodPost, "/t", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Missing ID or user name.")
		})
	}
}

func TestMarkMemberPaidRejectsBadMemberID(t *testing.T) {
	cfg := &config.Config{}
	w := perform(t, MarkMemberPaid(cfg), http.MethodPost,
		"/api/committees/ABCD1234ABCD1234/members/notanumber/pay", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid member id")
}

func TestRemindMemberRequiresEmail(t *testing.T) {
	cfg := &config.Config{}
	w := perform(t, RemindMember(cfg), http.MethodPost,
		"/api/committees/ABCD1234ABCD1234/members/0/pay", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestCreateOrderRejectsInvalidBody(t *testing.T) {
	cfg := &config.Config{}
	w := perform(t, CreateOrder(cfg), http.MethodPost, "/t", `not json`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error", w.Body.String())
}
