// file: controllers/user_controller_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nartbuilds/yaolin-bets/models"
	"github.com/nartbuilds/yaolin-bets/routes"
	"github.com/nartbuilds/yaolin-bets/testutil"
	"github.com/nartbuilds/yaolin-bets/utils"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterSetsSessionAndHashesPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	r := routes.SetupRouter()

	w := postJSON(t, r, "/api/v1/users/register", gin.H{
		"username": "newdancer",
		"password": "secret-pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 0, env.Code, "msg: %s", env.Msg)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "register should set a session cookie")
	require.True(t, cookie.HttpOnly)

	var user models.User
	require.NoError(t, db.Where("username = ?", "newdancer").First(&user).Error)
	require.NotEqual(t, "secret-pw", user.Password, "password must be stored hashed")
	require.True(t, user.CheckPassword("secret-pw"))
	require.False(t, user.IsAdmin)
	require.False(t, user.PaidEntry)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	r := routes.SetupRouter()

	testutil.CreateUser(t, db, "taken", "password123", false)

	w := postJSON(t, r, "/api/v1/users/register", gin.H{
		"username": "taken",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 2001, env.Code)
}

// 未知用户名和密码错误必须返回一样的提示
func TestLoginUniformFailureMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	r := routes.SetupRouter()

	testutil.CreateUser(t, db, "alice", "correct-pw", false)

	wrongPw := postJSON(t, r, "/api/v1/users/login", gin.H{
		"username": "alice", "password": "wrong-pw",
	})
	noUser := postJSON(t, r, "/api/v1/users/login", gin.H{
		"username": "nobody", "password": "whatever",
	})

	require.Equal(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SetupTestDB(t)
	r := routes.SetupRouter()

	user := testutil.CreateUser(t, db, "alice", "correct-pw", false)

	w := postJSON(t, r, "/api/v1/users/login", gin.H{
		"username": "alice", "password": "correct-pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 0, env.Code, "msg: %s", env.Msg)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	claims, err := utils.ParseToken(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestLogoutClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testutil.SetupTestDB(t)
	r := routes.SetupRouter()

	w := postJSON(t, r, "/api/v1/users/logout", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.True(t, cookie.MaxAge < 0)
}
