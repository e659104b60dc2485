package standard

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *MemoryStore) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(NewService(store.Coins(), store.Duties(), store.KSBs(), logger))

	router := chi.NewRouter()
	handler.RegisterLegacyRoutes(router)
	router.Route("/v1/coins", handler.RegisterV1CoinRoutes)
	router.Route("/v2/coins", handler.RegisterV2CoinRoutes)
	router.Route("/duties", handler.RegisterDutyRoutes)
	router.Route("/ksbs", handler.RegisterKSBRoutes)
	return router
}

func perform(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
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

func decodeList(t *testing.T, recorder *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	return list
}

func assertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, status int, description string) {
	t.Helper()
	assert.Equal(t, status, recorder.Code)
	object := decodeObject(t, recorder)
	assert.Equal(t, description, object["description"])
}

func createDuty(t *testing.T, router chi.Router, code, name string) string {
	t.Helper()
	payload := fmt.Sprintf(`{"code": %q, "name": %q}`, code, name)
	recorder := perform(router, http.MethodPost, "/duties/", payload)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return decodeObject(t, recorder)["id"].(string)
}

func createCoinV1(t *testing.T, router chi.Router, name string) string {
	t.Helper()
	recorder := perform(router, http.MethodPost, "/v1/coins/", fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return decodeObject(t, recorder)["id"].(string)
}

// # Coins

func TestCreateCoinV1(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodPost, "/v1/coins/", `{"name": "Sovereign"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	coin := decodeObject(t, recorder)
	assert.Len(t, coin, 2, "v1 coin document carries exactly id and name")
	assert.Equal(t, "Sovereign", coin["name"])

	_, err := uuid.Parse(coin["id"].(string))
	assert.NoError(t, err)
}

func TestCreateCoinV1Validation(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	tests := []struct {
		name        string
		body        string
		description string
	}{
		{name: "missing name", body: `{}`, description: "Missing 'name' key in request body."},
		{name: "empty name", body: `{"name": ""}`, description: "Coin name cannot be empty."},
		{name: "whitespace name", body: `{"name": "   "}`, description: "Coin name cannot be empty."},
		{name: "duty_ids not a list", body: `{"name": "Ducat", "duty_ids": "abc"}`, description: "'duty_ids' must be a list."},
		{name: "duty_ids non uuid entry", body: `{"name": "Ducat", "duty_ids": ["7"]}`, description: "Invalid Duty ID format. Duty ID must be a UUID (non-integer)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := perform(router, http.MethodPost, "/v1/coins/", tt.body)
			assertErrorResponse(t, recorder, http.StatusBadRequest, tt.description)
		})
	}
}

func TestCreateCoinDuplicateName(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createCoinV1(t, router, "Sovereign")

	recorder := perform(router, http.MethodPost, "/v1/coins/", `{"name": "Sovereign"}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Coin already exists. Please choose another name.")
}

func TestCreateCoinV1WithDutyIDs(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	dutyID := createDuty(t, router, "D1", "Strike blanks")

	payload := fmt.Sprintf(`{"name": "Guinea", "duty_ids": [%q, %q]}`, dutyID, dutyID)
	recorder := perform(router, http.MethodPost, "/v1/coins/", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)
	coinID := decodeObject(t, recorder)["id"].(string)

	detail := decodeObject(t, perform(router, http.MethodGet, "/v2/coins/"+coinID, ""))
	duties := detail["duties"].([]any)
	require.Len(t, duties, 1, "duplicate duty ids collapse to one association")
	assert.Equal(t, "D1", duties[0].(map[string]any)["code"])
}

func TestCreateCoinV1UnknownDutyID(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	unknownID := uuid.NewString()

	payload := fmt.Sprintf(`{"name": "Guinea", "duty_ids": [%q]}`, unknownID)
	recorder := perform(router, http.MethodPost, "/v1/coins/", payload)
	assertErrorResponse(t, recorder, http.StatusBadRequest,
		fmt.Sprintf("Duty with id '%s' does not exist.", unknownID))

	recorder = perform(router, http.MethodGet, "/v1/coins/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, decodeList(t, recorder), "nothing is stored when a reference fails to resolve")
}

func TestCreateCoinV2(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")
	createDuty(t, router, "D2", "Weigh planchets")

	recorder := perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["d1", "D2"]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	coin := decodeObject(t, recorder)
	assert.Len(t, coin, 3, "v2 coin document carries exactly id, name, duties")
	assert.Equal(t, "Florin", coin["name"])

	duties := coin["duties"].([]any)
	require.Len(t, duties, 2)
	first := duties[0].(map[string]any)
	assert.Equal(t, "D1", first["code"], "lowercase codes resolve to the stored spelling")
	assert.ElementsMatch(t, []string{"id", "code", "name", "description"}, mapKeys(first))
}

func TestCreateCoinV2UnknownDutyCode(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")

	recorder := perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["D1", "D9"]}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Duty with code 'D9' does not exist.")

	// The message echoes the client's spelling, not the normalized code.
	recorder = perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["d9"]}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Duty with code 'd9' does not exist.")
}

func TestCreateCoinV2WithoutDuties(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodPost, "/v2/coins/", `{"name": "Thaler"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	assert.JSONEq(t, `[]`, string(mustMarshal(t, decodeObject(t, recorder)["duties"])),
		"absent duty_codes yields an empty duties array, never null")
}

func TestListCoins(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createCoinV1(t, router, "Sovereign")
	createCoinV1(t, router, "Florin")

	for _, path := range []string{"/coins", "/v1/coins/"} {
		recorder := perform(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		coins := decodeList(t, recorder)
		require.Len(t, coins, 2)
		for _, coin := range coins {
			assert.Len(t, coin, 2)
		}
	}
}

func TestListCoinsV2NestsDuties(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")
	perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["D1"]}`)

	recorder := perform(router, http.MethodGet, "/v2/coins/", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	coins := decodeList(t, recorder)
	require.Len(t, coins, 1)
	assert.Len(t, coins[0]["duties"], 1)
}

func TestGetCoin(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	coinID := createCoinV1(t, router, "Sovereign")

	recorder := perform(router, http.MethodGet, "/v1/coins/"+coinID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Sovereign", decodeObject(t, recorder)["name"])
}

func TestGetCoinErrors(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodGet, "/v1/coins/42", "")
	assertErrorResponse(t, recorder, http.StatusBadRequest,
		"Invalid Coin ID format. Coin ID must be a UUID (non-integer).")

	recorder = perform(router, http.MethodGet, "/v1/coins/"+uuid.NewString(), "")
	assertErrorResponse(t, recorder, http.StatusNotFound, "Coin not found.")
}

func TestUpdateCoinV1(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	coinID := createCoinV1(t, router, "Sovereign")

	recorder := perform(router, http.MethodPatch, "/v1/coins/"+coinID, `{"name": "Half Sovereign"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	coin := decodeObject(t, recorder)
	assert.Len(t, coin, 2)
	assert.Equal(t, "Half Sovereign", coin["name"])
	assert.Equal(t, coinID, coin["id"])
}

func TestUpdateCoinV1RequiresName(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	coinID := createCoinV1(t, router, "Sovereign")

	recorder := perform(router, http.MethodPatch, "/v1/coins/"+coinID, `{"duty_ids": []}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Missing 'name' key in request body.")
}

func TestUpdateCoinV2(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")
	createDuty(t, router, "D2", "Weigh planchets")

	recorder := perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["D1"]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	coinID := decodeObject(t, recorder)["id"].(string)

	t.Run("duty codes only", func(t *testing.T) {
		recorder := perform(router, http.MethodPatch, "/v2/coins/"+coinID, `{"duty_codes": ["D2"]}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		coin := decodeObject(t, recorder)
		assert.Equal(t, "Florin", coin["name"], "name untouched when only duty_codes sent")
		duties := coin["duties"].([]any)
		require.Len(t, duties, 1, "duty_codes replaces the whole association set")
		assert.Equal(t, "D2", duties[0].(map[string]any)["code"])
	})

	t.Run("name only", func(t *testing.T) {
		recorder := perform(router, http.MethodPatch, "/v2/coins/"+coinID, `{"name": "Double Florin"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		coin := decodeObject(t, recorder)
		assert.Equal(t, "Double Florin", coin["name"])
		assert.Len(t, coin["duties"], 1, "associations untouched when only name sent")
	})

	t.Run("empty body", func(t *testing.T) {
		recorder := perform(router, http.MethodPatch, "/v2/coins/"+coinID, `{}`)
		assertErrorResponse(t, recorder, http.StatusBadRequest, "Request body is empty.")
	})

	t.Run("empty duty codes clears associations", func(t *testing.T) {
		recorder := perform(router, http.MethodPatch, "/v2/coins/"+coinID, `{"duty_codes": []}`)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeObject(t, recorder)["duties"], 0)
	})

	t.Run("replaying the same duty codes", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			recorder := perform(router, http.MethodPatch, "/v2/coins/"+coinID, `{"duty_codes": ["D1", "D2"]}`)
			require.Equal(t, http.StatusOK, recorder.Code)
		}

		coin := decodeObject(t, perform(router, http.MethodGet, "/v2/coins/"+coinID, ""))
		duties := coin["duties"].([]any)
		require.Len(t, duties, 2)
		codes := make([]string, 0, len(duties))
		for _, duty := range duties {
			codes = append(codes, duty.(map[string]any)["code"].(string))
		}
		assert.ElementsMatch(t, []string{"D1", "D2"}, codes)
	})
}

func TestDeleteCoin(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	coinID := createCoinV1(t, router, "Sovereign")

	recorder := perform(router, http.MethodDelete, "/coins/"+coinID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Coin has been successfully deleted!", decodeObject(t, recorder)["message"])

	recorder = perform(router, http.MethodGet, "/v1/coins/"+coinID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = perform(router, http.MethodDelete, "/coins/"+coinID, "")
	assertErrorResponse(t, recorder, http.StatusNotFound, "Coin not found.")

	// The versioned surfaces expose the same delete.
	for index, prefix := range []string{"/v1/coins/", "/v2/coins/"} {
		id := createCoinV1(t, router, fmt.Sprintf("Ducat %d", index))
		recorder := perform(router, http.MethodDelete, prefix+id, "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Coin has been successfully deleted!", decodeObject(t, recorder)["message"])
	}
}

func TestInvalidJSONBody(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodPost, "/v1/coins/", `{"name": `)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid JSON payload.")
}

// # Duties

func TestCreateDuty(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodPost, "/duties/", `{"code": "d1", "name": "Strike blanks", "description": "Operate the press"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	duty := decodeObject(t, recorder)
	assert.Equal(t, "D1", duty["code"])
	assert.Equal(t, "Strike blanks", duty["name"])
	assert.Equal(t, "Operate the press", duty["description"])
}

func TestCreateDutyValidation(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	tests := []struct {
		name        string
		body        string
		description string
	}{
		{name: "missing code", body: `{"name": "Strike blanks"}`, description: "Missing 'code' key in request body."},
		{name: "bad code", body: `{"code": "X1", "name": "Strike blanks"}`, description: "Invalid Duty Code format. Duty Code must start with 'D', followed by numbers (e.g., D1, D2)."},
		{name: "missing name", body: `{"code": "D1"}`, description: "Missing 'name' key in request body."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := perform(router, http.MethodPost, "/duties/", tt.body)
			assertErrorResponse(t, recorder, http.StatusBadRequest, tt.description)
		})
	}

	createDuty(t, router, "D1", "Strike blanks")

	recorder := perform(router, http.MethodPost, "/duties/", `{"code": "D1", "name": "Other"}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Duty already exists. Please choose another code.")

	recorder = perform(router, http.MethodPost, "/duties/", `{"code": "D2", "name": "Strike blanks"}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "Duty already exists. Please choose another name.")
}

func TestGetDutyWithCoins(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")
	perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["D1"]}`)

	recorder := perform(router, http.MethodGet, "/duties/d1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	duty := decodeObject(t, recorder)
	assert.Equal(t, "D1", duty["code"])
	coins := duty["coins"].([]any)
	require.Len(t, coins, 1)
	assert.ElementsMatch(t, []string{"id", "name"}, mapKeys(coins[0].(map[string]any)))
}

func TestGetDutyErrors(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodGet, "/duties/D9", "")
	assertErrorResponse(t, recorder, http.StatusNotFound, "Duty not found.")

	recorder = perform(router, http.MethodGet, "/duties/nope", "")
	assertErrorResponse(t, recorder, http.StatusBadRequest,
		"Invalid Duty Code format. Duty Code must start with 'D', followed by numbers (e.g., D1, D2).")
}

func TestDeleteDutyDetachesCoins(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D1", "Strike blanks")

	recorder := perform(router, http.MethodPost, "/v2/coins/", `{"name": "Florin", "duty_codes": ["D1"]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	coinID := decodeObject(t, recorder)["id"].(string)

	recorder = perform(router, http.MethodDelete, "/duties/D1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Duty has been successfully deleted!", decodeObject(t, recorder)["message"])

	detail := decodeObject(t, perform(router, http.MethodGet, "/v2/coins/"+coinID, ""))
	assert.Len(t, detail["duties"], 0, "coin survives duty deletion with the association removed")
}

func TestListDutiesOrderedByCode(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	createDuty(t, router, "D2", "Weigh planchets")
	createDuty(t, router, "D1", "Strike blanks")

	recorder := perform(router, http.MethodGet, "/duties/", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	duties := decodeList(t, recorder)
	require.Len(t, duties, 2)
	assert.Equal(t, "D1", duties[0]["code"])
	assert.Equal(t, "D2", duties[1]["code"])
}

// # KSBs

func TestCreateKSB(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "k1a", "name": "Minting standards"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	ksb := decodeObject(t, recorder)
	assert.Equal(t, "K1A", ksb["code"])
	assert.Equal(t, "Knowledge", ksb["type"])
}

func TestCreateKSBValidation(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	tests := []struct {
		name        string
		body        string
		description string
	}{
		{name: "missing type", body: `{"code": "K1", "name": "Minting standards"}`, description: "Missing 'type' key in request body."},
		{name: "bad type", body: `{"type": "Duty", "code": "K1", "name": "Minting standards"}`, description: "Invalid KSB type. Type must be 'Knowledge', 'Skill' or 'Behaviour'."},
		{name: "missing code", body: `{"type": "Knowledge", "name": "Minting standards"}`, description: "Missing 'code' key in request body."},
		{name: "bad code", body: `{"type": "Knowledge", "code": "D1", "name": "Minting standards"}`, description: "Invalid KSB Code format. KSB Code must start with 'K', 'S', or 'B', followed by numbers and optionally a letter (e.g., K1, K1a, S2, B3b)."},
		{name: "prefix mismatch", body: `{"type": "Knowledge", "code": "S1", "name": "Minting standards"}`, description: "KSB Code prefix does not match its type."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := perform(router, http.MethodPost, "/ksbs/", tt.body)
			assertErrorResponse(t, recorder, http.StatusBadRequest, tt.description)
		})
	}

	recorder := perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "K1", "name": "Minting standards"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "K1", "name": "Other"}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "KSB already exists. Please choose another code.")

	recorder = perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "K2", "name": "Minting standards"}`)
	assertErrorResponse(t, recorder, http.StatusBadRequest, "KSB already exists. Please choose another name.")

	// Each kind has its own table, so the same name is fine across kinds.
	recorder = perform(router, http.MethodPost, "/ksbs/", `{"type": "Skill", "code": "S1", "name": "Minting standards"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
}

func TestGetKSBWithDuties(t *testing.T) {
	store := NewMemoryStore()
	router := newTestRouter(store)

	dutyID := createDuty(t, router, "D1", "Strike blanks")

	recorder := perform(router, http.MethodPost, "/ksbs/", `{"type": "Skill", "code": "S2", "name": "Press operation"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	ksbID := decodeObject(t, recorder)["id"].(string)

	store.LinkDutyKSB(dutyID, ksbID, KindSkill)

	recorder = perform(router, http.MethodGet, "/ksbs/s2", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	ksb := decodeObject(t, recorder)
	assert.Equal(t, "S2", ksb["code"])
	assert.Equal(t, "Skill", ksb["type"])

	duties := ksb["duties"].([]any)
	require.Len(t, duties, 1)
	nested := duties[0].(map[string]any)
	assert.ElementsMatch(t, []string{"id", "name"}, mapKeys(nested),
		"duties nested under a KSB carry only id and name")
	assert.Equal(t, "Strike blanks", nested["name"])
}

func TestGetKSBErrors(t *testing.T) {
	router := newTestRouter(NewMemoryStore())

	recorder := perform(router, http.MethodGet, "/ksbs/K9", "")
	assertErrorResponse(t, recorder, http.StatusNotFound, "KSB not found.")

	recorder = perform(router, http.MethodGet, "/ksbs/D1", "")
	assertErrorResponse(t, recorder, http.StatusBadRequest,
		"Invalid KSB Code format. KSB Code must start with 'K', 'S', or 'B', followed by numbers and optionally a letter (e.g., K1, K1a, S2, B3b).")
}

func TestListKSBsGroupedByKind(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	perform(router, http.MethodPost, "/ksbs/", `{"type": "Behaviour", "code": "B1", "name": "Diligence"}`)
	perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "K1", "name": "Minting standards"}`)
	perform(router, http.MethodPost, "/ksbs/", `{"type": "Skill", "code": "S1", "name": "Press operation"}`)

	recorder := perform(router, http.MethodGet, "/ksbs/", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	ksbs := decodeList(t, recorder)
	require.Len(t, ksbs, 3)
	assert.Equal(t, "Knowledge", ksbs[0]["type"])
	assert.Equal(t, "Skill", ksbs[1]["type"])
	assert.Equal(t, "Behaviour", ksbs[2]["type"])
}

func TestDeleteKSB(t *testing.T) {
	router := newTestRouter(NewMemoryStore())
	perform(router, http.MethodPost, "/ksbs/", `{"type": "Knowledge", "code": "K1", "name": "Minting standards"}`)

	recorder := perform(router, http.MethodDelete, "/ksbs/k1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "KSB has been successfully deleted!", decodeObject(t, recorder)["message"])

	recorder = perform(router, http.MethodDelete, "/ksbs/K1", "")
	assertErrorResponse(t, recorder, http.StatusNotFound, "KSB not found.")
}

// # Helpers

func mapKeys(object map[string]any) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	return keys
}

func mustMarshal(t *testing.T, value any) []byte {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return data
}
