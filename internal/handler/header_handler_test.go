package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightaudit/internal/handler"
	"freightaudit/mocks"
)

func TestHeaderHandler_Map_Success(t *testing.T) {
	mockMapper := new(mocks.MockHeaderMapper)
	h := handler.NewHeaderHandler(mockMapper)

	awb := "AWB"
	mockMapper.On("MapHeaders", mock.Anything, []string{"Waybill No", "Remarks"}).
		Return(map[string]*string{"Waybill No": &awb, "Remarks": nil}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/headers/map",
		strings.NewReader(`{"headers": ["Waybill No", "Remarks"]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Map(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockMapper.AssertExpectations(t)
}

func TestHeaderHandler_Map_MissingHeaders(t *testing.T) {
	mockMapper := new(mocks.MockHeaderMapper)
	h := handler.NewHeaderHandler(mockMapper)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/headers/map", strings.NewReader(`{"headers": []}`))

	h.Map(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMapper.AssertNotCalled(t, "MapHeaders", mock.Anything, mock.Anything)
}
