package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		c, _ := testContext(http.MethodGet, "/", "")
		c.Params = gin.Params{{Key: "id", Value: tt.raw}}

		got, err := pathID(c, "id")
		if tt.wantErr {
			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr, tt.raw)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBindBody(t *testing.T) {
	var req models.CreateDuaRequest
	c, _ := testContext(http.MethodPost, "/", "")
	require.NoError(t, bindBody(c, &req))
	assert.Empty(t, req.Title)

	c, _ = testContext(http.MethodPost, "/", `{"title":"T"}`)
	require.NoError(t, bindBody(c, &req))
	assert.Equal(t, "T", req.Title)

	c, _ = testContext(http.MethodPost, "/", `{"title":`)
	assert.Error(t, bindBody(c, &req))
}

func TestListParams(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/?category=morning&search=light&limit=500&offset=-2", "")
	p := listParams(c, 50)
	assert.Equal(t, models.ListParams{Category: "morning", Search: "light", Limit: listquery.MaxLimit, Offset: 0}, p)
}

func TestWriteList_EmptyPageIsArray(t *testing.T) {
	c, w := testContext(http.MethodGet, "/", "")
	writeList(c, listquery.Result[models.Dua]{Items: []models.Dua{}, Total: 4}, listquery.Page{Limit: 2, Offset: 10})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, float64(4), body["count"])
	assert.Equal(t, map[string]any{"limit": float64(2), "offset": float64(10), "total": float64(4)}, body["pagination"])
}
