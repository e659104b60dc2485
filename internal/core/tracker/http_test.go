package tracker

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	NewHandler(NewStore()).RegisterRoutes(router)
	return router
}

func perform(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeObject(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var object map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &object))
	return object
}

func TestCreateTrackedDuty(t *testing.T) {
	router := newTestRouter()

	recorder := perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks", "ksbs": ["K1", "S2"]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	duty := decodeObject(t, recorder)
	assert.Equal(t, float64(1), duty["number"])
	assert.Equal(t, "Strike blanks", duty["description"])
	assert.Equal(t, []any{"K1", "S2"}, duty["ksbs"])
	assert.Equal(t, false, duty["complete"])
	assert.Equal(t, "Duty Not Completed!", duty["status"])
}

func TestCreateTrackedDutyValidation(t *testing.T) {
	router := newTestRouter()

	recorder := perform(router, http.MethodPost, "/", `{"description": "Strike blanks"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Missing 'number' key in request body.", decodeObject(t, recorder)["description"])

	perform(router, http.MethodPost, "/", `{"number": 1}`)
	recorder = perform(router, http.MethodPost, "/", `{"number": 1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Duty with number '1' already exists.", decodeObject(t, recorder)["description"])
}

func TestListTrackedDutiesOrderedByNumber(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 3, "description": "Weigh planchets"}`)
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks"}`)

	recorder := perform(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var duties []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &duties))
	require.Len(t, duties, 2)
	assert.Equal(t, float64(1), duties[0]["number"])
	assert.Equal(t, float64(3), duties[1]["number"])
}

func TestGetTrackedDuty(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks"}`)

	recorder := perform(router, http.MethodGet, "/1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Strike blanks", decodeObject(t, recorder)["description"])

	recorder = perform(router, http.MethodGet, "/9", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Duty not found.", decodeObject(t, recorder)["description"])

	recorder = perform(router, http.MethodGet, "/abc", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid Duty number. Duty number must be an integer.", decodeObject(t, recorder)["description"])
}

func TestEditTrackedDuty(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks", "ksbs": ["K1"]}`)

	recorder := perform(router, http.MethodPatch, "/1", `{"description": "Polish dies", "ksbs": ["S2"]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	duty := decodeObject(t, recorder)
	assert.Equal(t, "Polish dies", duty["description"])
	assert.Equal(t, []any{"S2"}, duty["ksbs"])

	recorder = perform(router, http.MethodPatch, "/9", `{"description": "Polish dies"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCompleteTrackedDuty(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks"}`)

	recorder := perform(router, http.MethodPost, "/1/complete", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	duty := decodeObject(t, recorder)
	assert.Equal(t, true, duty["complete"])
	assert.Equal(t, "Duty Complete!", duty["status"])

	recorder = perform(router, http.MethodPost, "/9/complete", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteTrackedDutyIsIdempotent(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks"}`)

	for i := 0; i < 2; i++ {
		recorder := perform(router, http.MethodDelete, "/1", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Duty has been successfully deleted!", decodeObject(t, recorder)["message"])
	}

	recorder := perform(router, http.MethodGet, "/1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestResetTrackedDuties(t *testing.T) {
	router := newTestRouter()
	perform(router, http.MethodPost, "/", `{"number": 1, "description": "Strike blanks"}`)
	perform(router, http.MethodPost, "/", `{"number": 2, "description": "Weigh planchets"}`)

	recorder := perform(router, http.MethodPost, "/reset", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "All duties have been reset.", decodeObject(t, recorder)["message"])

	recorder = perform(router, http.MethodGet, "/", "")
	assert.JSONEq(t, `[]`, recorder.Body.String())
}
