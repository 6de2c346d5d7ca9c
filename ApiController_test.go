package main

import (
	"bytes"
	"errors"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"sheetCalc/contracts"
	"sheetCalc/mocks"
	"testing"
)

func TestApiController_SetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToSetSheetAction := func(apiController contracts.ApiController, body []byte) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/"+ApiVersion+"/sheet1", bytes.NewReader(body))
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success write", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetSheet", "sheet1", "1\t=ADD(A1, 1)").
			Return(&contracts.SheetSnapshot{Id: "sheet1", Source: "1\t=ADD(A1, 1)", Rows: 1, Rendered: "1\t2"}, nil)

		apiController := NewApiController(sheetRepository, nil)

		body, _ := json.Marshal(map[string]string{"source": "1\t=ADD(A1, 1)"})
		w := requestToSetSheetAction(apiController, body)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "sheet1", response["id"])
		assert.Equal(t, "1\t2", response["rendered"])
		assert.NotContains(t, response, "error")
	})

	t.Run("empty sheet", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetSheet", "sheet1", "").
			Return(&contracts.SheetSnapshot{Id: "sheet1"}, nil)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetSheetAction(apiController, []byte(`{"source": ""}`))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing source", func(t *testing.T) {
		apiController := NewApiController(mocks.NewSheetRepository(t), nil)

		w := requestToSetSheetAction(apiController, []byte(`{}`))
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, response, "error")
	})

	t.Run("error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetSheet", "sheet1", "1").Return(nil, errors.New("test"))

		apiController := NewApiController(sheetRepository, nil)

		w := requestToSetSheetAction(apiController, []byte(`{"source": "1"}`))
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_GetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToGetSheetAction := func(apiController contracts.ApiController) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1", nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet", "sheet1").
			Return(&contracts.SheetSnapshot{Id: "sheet1", Source: "=ADD(1,2)", Rows: 1, Rendered: "3"}, nil)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetSheetAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sheet1", response["id"])
		assert.Equal(t, "=ADD(1,2)", response["source"])
		assert.Equal(t, float64(1), response["rows"])
		assert.Equal(t, "3", response["rendered"])
	})

	t.Run("not_found_sheet", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet", "sheet1").Return(nil, contracts.SheetNotFoundError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetSheetAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, contracts.SheetNotFoundError.Error(), response["error"])
	})

	t.Run("evaluation_error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet", "sheet1").
			Return(&contracts.SheetSnapshot{Id: "sheet1", Source: "=FOO(1)", Rows: 1, Error: "cell A1: unknown function: 'FOO'"}, contracts.UnknownFunctionError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetSheetAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "=FOO(1)", response["source"])
		assert.Equal(t, "cell A1: unknown function: 'FOO'", response["error"])
	})

	t.Run("error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet", "sheet1").Return(nil, errors.New("test"))

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetSheetAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToGetCellAction := func(apiController contracts.ApiController) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1/B2", nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("should return cell value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "B2").
			Return(&contracts.Cell{Index: "B2", Value: "=DIVIDE(7, 2)", Result: "3.50"}, nil)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "B2", response["index"])
		assert.Equal(t, "=DIVIDE(7, 2)", response["value"])
		assert.Equal(t, "3.50", response["result"])
	})

	statusByError := map[error]int{
		contracts.CellNotFoundError:     http.StatusNotFound,
		contracts.SheetNotFoundError:    http.StatusNotFound,
		contracts.InvalidCellIndexError: http.StatusBadRequest,
		errors.New("test"):              http.StatusInternalServerError,
	}

	for repositoryErr, expectedStatus := range statusByError {
		t.Run(repositoryErr.Error(), func(t *testing.T) {
			sheetRepository := mocks.NewSheetRepository(t)
			sheetRepository.On("GetCell", "sheet1", "B2").Return(nil, repositoryErr)

			apiController := NewApiController(sheetRepository, nil)

			w := requestToGetCellAction(apiController)
			response, err := _parseJsonBody(w)

			assert.NoError(t, err)
			assert.Equal(t, expectedStatus, w.Code)
			assert.Equal(t, repositoryErr.Error(), response["error"])
		})
	}

	t.Run("evaluation error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "sheet1", "B2").
			Return(&contracts.Cell{Index: "B2", Value: "=A9"}, contracts.CellNotFoundError)

		apiController := NewApiController(sheetRepository, nil)

		w := requestToGetCellAction(apiController)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "=A9", response["value"])
		assert.Equal(t, contracts.CellNotFoundError.Error(), response["error"])
	})
}

func TestApiController_SubscribeAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	requestToSubscribeAction := func(apiController contracts.ApiController, body string) *httptest.ResponseRecorder {
		router := SetupRouter(apiController)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/"+ApiVersion+"/Sheet1/"+subscribePath, bytes.NewReader([]byte(body)))
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("subscribe", func(t *testing.T) {
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		webhookDispatcher.On("SetWebhookUrl", "sheet1", "http://example.com/hook").Return().Once()

		apiController := NewApiController(nil, webhookDispatcher)

		w := requestToSubscribeAction(apiController, `{"webhook_url": "http://example.com/hook"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://example.com/hook", response["webhook_url"])
	})

	t.Run("invalid body", func(t *testing.T) {
		apiController := NewApiController(nil, mocks.NewWebhookDispatcher(t))

		w := requestToSubscribeAction(apiController, `not json`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}
