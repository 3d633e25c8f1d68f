package web

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(req *http.Request) (*Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return &Context{Context: c}, w
}

func TestGetQueryFunc(t *testing.T) {
	c, _ := testContext(httptest.NewRequest(http.MethodGet, "/?limit=25&active=true&name=akmal", nil))

	limit := c.GetQueryFunc(reflect.Int, "limit").(*int)
	require.NotNil(t, limit)
	assert.Equal(t, 25, *limit)

	active := c.GetQueryFunc(reflect.Bool, "active").(*bool)
	require.NotNil(t, active)
	assert.True(t, *active)

	name := c.GetQueryFunc(reflect.String, "name").(*string)
	require.NotNil(t, name)
	assert.Equal(t, "akmal", *name)

	absent := c.GetQueryFunc(reflect.Int, "offset").(*int)
	assert.Nil(t, absent)

	assert.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncCollectsErrors(t *testing.T) {
	c, _ := testContext(httptest.NewRequest(http.MethodGet, "/?limit=abc", nil))

	limit := c.GetQueryFunc(reflect.Int, "limit").(*int)
	assert.Nil(t, limit)

	err := c.ValidQuery()
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

func TestGetParam(t *testing.T) {
	c, _ := testContext(httptest.NewRequest(http.MethodGet, "/", nil))
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "userId", Value: "EMP001"}}

	assert.Equal(t, 42, c.GetParam(reflect.Int, "id").(int))
	assert.Equal(t, "EMP001", c.GetParam(reflect.String, "userId").(string))
	assert.NoError(t, c.ValidParam())

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	assert.Equal(t, 0, c.GetParam(reflect.Int, "id").(int))
	assert.Error(t, c.ValidParam())
}

func TestBindFuncRequiredFields(t *testing.T) {
	type payload struct {
		UserID   *string `json:"userId"`
		Password *string `json:"password"`
	}

	c, _ := testContext(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"1001"}`)))

	var data payload
	err := c.BindFunc(&data, "UserID", "Password")
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
	assert.Contains(t, webErr.Err.Error(), "Password")

	c, _ = testContext(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"1001","password":"x"}`)))

	data = payload{}
	require.NoError(t, c.BindFunc(&data, "UserID", "Password"))
	assert.Equal(t, "1001", *data.UserID)
}

func TestRespondErrorKeepsRequestErrorStatus(t *testing.T) {
	c, w := testContext(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, c.RespondError(NewRequestError(errors.New("Stage not found"), http.StatusNotFound)))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Stage not found", w.Body.String())
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	c, w := testContext(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, c.RespondError(errors.New("pq: relation \"users\" does not exist")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", w.Body.String())
}
