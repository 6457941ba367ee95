//go:build e2e

package booking_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sessionsURL     = "/api/booking/sessions"
	availabilityURL = "/api/booking/availability"
	menuURL         = "/api/booking/menu"
	trackURL        = "/api/track/"
)

// far enough out that the slot can never collide with "today"
const (
	testDate = "2030-05-01"
	testTime = "19:00"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) startSession(channel string) string {
	body := map[string]any{"channel": channel}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, body, "")

	var res resdto.StartFlowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	require.NotEmpty(s.T(), res.SessionID)
	return res.SessionID
}

func (s *bookingSuite) dispatch(sessionID string, action map[string]any) resdto.DraftResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		sessionsURL+"/"+sessionID+"/actions", action, "")

	var res resdto.DraftResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *bookingSuite) attachProof(sessionID string, filename string, content []byte) *nethttptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(s.T(), err)
	_, err = part.Write(content)
	require.NoError(s.T(), err)
	require.NoError(s.T(), mw.Close())

	req := nethttptest.NewRequest(http.MethodPost, sessionsURL+"/"+sessionID+"/proof", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *bookingSuite) freeTables(partySize string) []resdto.TableResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		availabilityURL+"?date="+testDate+"&time="+testTime+"&party_size="+partySize, nil, "")

	var tables []resdto.TableResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &tables)
	return tables
}

// walks a dine-in draft up to checkout with everything filled in except
// proof, returning the session and the selected table ID
func (s *bookingSuite) fillDineInDraft(itemName string, priceCents int64) (string, string) {
	itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, itemName, priceCents)

	sessionID := s.startSession("dine_in")

	s.dispatch(sessionID, map[string]any{"type": "set_date", "date": testDate})
	s.dispatch(sessionID, map[string]any{"type": "set_time", "time": testTime})
	s.dispatch(sessionID, map[string]any{"type": "set_party_size", "party_size": 2})
	d := s.dispatch(sessionID, map[string]any{"type": "advance"})
	require.Equal(s.T(), "table", d.Step)

	tables := s.freeTables("2")
	require.NotEmpty(s.T(), tables, "no free tables for the slot")
	tableID := tables[0].ID.String()

	s.dispatch(sessionID, map[string]any{"type": "select_table", "table_id": tableID})
	d = s.dispatch(sessionID, map[string]any{"type": "advance"})
	require.Equal(s.T(), "food", d.Step)

	s.dispatch(sessionID, map[string]any{
		"type": "add_line",
		"line": map[string]any{
			"item_id":          itemID.String(),
			"name":             itemName,
			"unit_price_cents": priceCents,
			"quantity":         2,
		},
	})

	d = s.dispatch(sessionID, map[string]any{"type": "enter_checkout"})
	require.True(s.T(), d.InCheckout)

	s.dispatch(sessionID, map[string]any{"type": "set_field", "field": "name", "value": "Somchai"})
	s.dispatch(sessionID, map[string]any{"type": "set_field", "field": "phone", "value": "+66812345678"})
	s.dispatch(sessionID, map[string]any{"type": "set_agreed", "agreed": true})

	return sessionID, tableID
}

func (s *bookingSuite) TestDineInJourney() {
	s.Run("a full dine-in booking lands as a pending reservation", func() {
		sessionID, tableID := s.fillDineInDraft("Pad Thai", 9000)

		w := s.attachProof(sessionID, "slip.jpg", []byte("fake-jpeg-bytes"))
		var d resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &d)
		require.True(s.T(), d.HasProof)

		w2 := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+sessionID+"/submit", nil, "")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w2, http.StatusCreated, &res)
		require.Equal(s.T(), "pending", res.Status)
		require.Equal(s.T(), "dine_in", res.Channel)
		require.NotNil(s.T(), res.TableID)
		require.Equal(s.T(), tableID, res.TableID.String())
		require.Equal(s.T(), int64(18000), res.SubtotalCents)
		require.NotEmpty(s.T(), res.TrackingToken)

		// the selected table no longer shows as free for the slot
		for _, tbl := range s.freeTables("2") {
			require.NotEqual(s.T(), tableID, tbl.ID.String())
		}

		// the tracking page works without any auth
		w3 := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, trackURL+res.TrackingToken, nil, "")
		var tracking resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), w3, http.StatusOK, &tracking)
		require.Equal(s.T(), 0, tracking.Ordinal)
		require.True(s.T(), tracking.IsActive)
		require.False(s.T(), tracking.CanExportProof)
	})

	s.Run("submitting without proof is rejected with 422", func() {
		sessionID, _ := s.fillDineInDraft("Green Curry", 11000)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+sessionID+"/submit", nil, "")
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("two bookings cannot take the same table for the same slot", func() {
		first, tableID := s.fillDineInDraft("Pad Thai", 9000)
		s.attachProof(first, "slip.jpg", []byte("fake-jpeg-bytes"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+first+"/submit", nil, "")
		require.Equal(s.T(), http.StatusCreated, w.Code)

		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Tom Yum Goong", 12000)
		second := s.startSession("dine_in")
		s.dispatch(second, map[string]any{"type": "set_date", "date": testDate})
		s.dispatch(second, map[string]any{"type": "set_time", "time": testTime})
		s.dispatch(second, map[string]any{"type": "advance"})
		s.dispatch(second, map[string]any{"type": "select_table", "table_id": tableID})
		s.dispatch(second, map[string]any{"type": "advance"})
		s.dispatch(second, map[string]any{
			"type": "add_line",
			"line": map[string]any{
				"item_id":          itemID.String(),
				"name":             "Tom Yum Goong",
				"unit_price_cents": 12000,
				"quantity":         1,
			},
		})
		s.dispatch(second, map[string]any{"type": "enter_checkout"})
		s.dispatch(second, map[string]any{"type": "set_field", "field": "name", "value": "Nok"})
		s.dispatch(second, map[string]any{"type": "set_field", "field": "phone", "value": "+66899999999"})
		s.dispatch(second, map[string]any{"type": "set_agreed", "agreed": true})
		s.attachProof(second, "slip2.jpg", []byte("other-fake-bytes"))

		w2 := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+second+"/submit", nil, "")
		require.Equal(s.T(), http.StatusConflict, w2.Code)

		// the failed submit walks the wizard back to the table step
		var body struct {
			Error string               `json:"error"`
			Draft resdto.DraftResponse `json:"draft"`
		}
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w2.Body, &body))
		require.Equal(s.T(), "table", body.Draft.Step)
		require.Nil(s.T(), body.Draft.TableID)
	})
}

func (s *bookingSuite) TestPickupJourney() {
	s.Run("pickup skips the table step and needs no proof", func() {
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Mango Sticky Rice", 6000)

		sessionID := s.startSession("pickup")
		s.dispatch(sessionID, map[string]any{"type": "set_date", "date": testDate})
		s.dispatch(sessionID, map[string]any{"type": "set_time", "time": "12:30"})
		d := s.dispatch(sessionID, map[string]any{"type": "advance"})
		require.Equal(s.T(), "food", d.Step)

		s.dispatch(sessionID, map[string]any{
			"type": "add_line",
			"line": map[string]any{
				"item_id":          itemID.String(),
				"name":             "Mango Sticky Rice",
				"unit_price_cents": 6000,
				"quantity":         1,
			},
		})
		s.dispatch(sessionID, map[string]any{"type": "enter_checkout"})
		s.dispatch(sessionID, map[string]any{"type": "set_field", "field": "name", "value": "Lek"})
		s.dispatch(sessionID, map[string]any{"type": "set_field", "field": "phone", "value": "+66811111111"})
		s.dispatch(sessionID, map[string]any{"type": "set_agreed", "agreed": true})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+sessionID+"/submit", nil, "")

		var res resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		require.Equal(s.T(), "pickup", res.Channel)
		require.Nil(s.T(), res.TableID)
		require.Equal(s.T(), int64(6000), res.SubtotalCents)
	})
}

func (s *bookingSuite) TestPromotion() {
	s.Run("a seeded percent code discounts the cart", func() {
		sessionID, _ := s.fillDineInDraft("Pad Thai", 9000)

		body := map[string]any{"code": "welcome10"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+sessionID+"/promotion", body, "")

		var res resdto.ApplyPromotionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.True(s.T(), res.Valid)
		require.Equal(s.T(), "WELCOME10", res.Code)
		require.Equal(s.T(), int64(1800), res.DiscountCents)
		require.Equal(s.T(), int64(16200), res.Draft.TotalCents)
	})

	s.Run("an unknown code is rejected as data, not an error", func() {
		sessionID, _ := s.fillDineInDraft("Pad Thai", 9000)

		body := map[string]any{"code": "NOSUCHCODE"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			sessionsURL+"/"+sessionID+"/promotion", body, "")

		var res resdto.ApplyPromotionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.False(s.T(), res.Valid)
		require.NotEmpty(s.T(), res.Reason)
	})
}

func (s *bookingSuite) TestMenu() {
	s.Run("only available items are listed", func() {
		dbtest.CreateTestMenuItem(s.T(), s.DB, "Khao Soi", 9500)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, menuURL, nil, "")

		var items []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &items)
		require.Len(s.T(), items, 1)
		require.Equal(s.T(), "Khao Soi", items[0].Name)
	})
}
