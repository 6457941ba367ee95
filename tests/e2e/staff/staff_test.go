//go:build e2e

package staff_test

import (
	"net/http"
	"testing"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL        = "/api/auth/login"
	meURL           = "/api/auth/me"
	reservationsURL = "/api/staff/reservations"
	sessionsURL     = "/api/booking/sessions"

	testDate = "2030-05-01"
)

type staffSuite struct {
	e2e.SharedSuite
}

func TestStaffSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(staffSuite))
}

func (s *staffSuite) login(email string) string {
	body := map[string]any{"email": email, "password": dbtest.StaffPassword}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	require.Equal(s.T(), http.StatusOK, w.Code)

	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(s.T(), cookie, "login did not set an access token cookie")
	return cookie.Value
}

// places a pickup order through the public flow so the board has
// something to show
func (s *staffSuite) createPickupReservation() resdto.ReservationResponse {
	itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Khao Pad", 8000)

	body := map[string]any{"channel": "pickup"}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, body, "")
	var start resdto.StartFlowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &start)

	actions := []map[string]any{
		{"type": "set_date", "date": testDate},
		{"type": "set_time", "time": "12:00"},
		{"type": "advance"},
		{"type": "add_line", "line": map[string]any{
			"item_id":          itemID.String(),
			"name":             "Khao Pad",
			"unit_price_cents": 8000,
			"quantity":         1,
		}},
		{"type": "enter_checkout"},
		{"type": "set_field", "field": "name", "value": "Somsak"},
		{"type": "set_field", "field": "phone", "value": "+66800000000"},
		{"type": "set_agreed", "agreed": true},
	}
	for _, action := range actions {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+start.SessionID+"/actions", action, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
	}

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		sessionsURL+"/"+start.SessionID+"/submit", nil, "")

	var res resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *staffSuite) transition(token, id, status string) *resdto.ReservationResponse {
	body := map[string]any{"status": status}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		reservationsURL+"/"+id+"/status", body, token)
	if w.Code != http.StatusOK {
		require.Failf(s.T(), "transition rejected", "status %s -> HTTP %d: %s", status, w.Code, w.Body.String())
	}

	var res resdto.ReservationResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return &res
}

func (s *staffSuite) TestAuthentication() {
	s.Run("the board requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			reservationsURL+"?date="+testDate, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("login issues cookies that pass the auth middleware", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "server@example.com", "server")
		token := s.login("server@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.Contains(s.T(), w.Body.String(), "server@example.com")
	})

	s.Run("a deactivated account cannot log in", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "gone@example.com", "server")
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE staff SET is_active = false WHERE email = 'gone@example.com'")
		require.NoError(s.T(), err)

		body := map[string]any{"email": "gone@example.com", "password": dbtest.StaffPassword}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *staffSuite) TestDayBoard() {
	s.Run("lists the day's reservations with detail lookup", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "manager@example.com", "manager")
		token := s.login("manager@example.com")
		created := s.createPickupReservation()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			reservationsURL+"?date="+testDate, nil, token)

		var list []resdto.ReservationListItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		require.Len(s.T(), list, 1)
		require.Equal(s.T(), created.ID, list[0].ID)

		w2 := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			reservationsURL+"/"+created.ID.String(), nil, token)

		var detail resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w2, http.StatusOK, &detail)
		require.Equal(s.T(), created.ID, detail.ID)
		require.Len(s.T(), detail.Lines, 1)
		require.Equal(s.T(), "Khao Pad", detail.Lines[0].Name)
	})

	s.Run("a malformed date is rejected", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "manager@example.com", "manager")
		token := s.login("manager@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			reservationsURL+"?date=not-a-date", nil, token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *staffSuite) TestLifecycle() {
	s.Run("a pickup order walks its pipeline to completed", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "server@example.com", "server")
		token := s.login("server@example.com")
		created := s.createPickupReservation()
		id := created.ID.String()

		for _, status := range []string{"confirmed", "preparing", "ready", "completed"} {
			res := s.transition(token, id, status)
			require.Equal(s.T(), status, res.Status)
		}
	})

	s.Run("skipping a pipeline stage is rejected with 409", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "server@example.com", "server")
		token := s.login("server@example.com")
		created := s.createPickupReservation()

		body := map[string]any{"status": "ready"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			reservationsURL+"/"+created.ID.String()+"/status", body, token)
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("terminal states accept no further transitions", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "server@example.com", "server")
		token := s.login("server@example.com")
		created := s.createPickupReservation()
		id := created.ID.String()

		res := s.transition(token, id, "cancelled")
		require.Equal(s.T(), "cancelled", res.Status)

		body := map[string]any{"status": "confirmed"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			reservationsURL+"/"+id+"/status", body, token)
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("a confirmed dine-in proof can be exported", func() {
		dbtest.CreateTestStaff(s.T(), s.DB, "server@example.com", "server")
		token := s.login("server@example.com")
		created := s.createPickupReservation()
		id := created.ID.String()

		// proof export stays closed while the order is still pending
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/track/"+created.TrackingToken+"/proof", nil, "")
		require.Equal(s.T(), http.StatusForbidden, w.Code)

		s.transition(token, id, "confirmed")

		// confirmed pickup has no proof blob, so the gate opens onto a 404
		w2 := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/track/"+created.TrackingToken+"/proof", nil, "")
		require.Equal(s.T(), http.StatusNotFound, w2.Code)
	})
}
