package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoUID отвечает 200 и id пользователя, если он есть в контексте, иначе 204
func echoUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := GetUserIDFromContext(r.Context()); ok {
			_, _ = w.Write([]byte(strconv.FormatInt(uid, 10)))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// Тест: IssueToken + WithAuth, user_id попадает в контекст
func TestWithAuth_ValidBearerSetsUserID(t *testing.T) {
	const secret = "test-secret"
	tok, err := IssueToken(77, "a@b.co", secret, time.Hour)
	require.NoError(t, err)

	rr := serve(WithAuth(secret)(echoUID()), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "77", rr.Body.String())
}

// Тест: без заголовка и с чужим форматом, аноним
func TestWithAuth_NoHeaderLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(echoUID())
	assert.Equal(t, http.StatusNoContent, serve(h, "").Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "Bearer ").Code)
	assert.Equal(t, http.StatusNoContent, serve(h, "Basic dXNlcjpwYXNz").Code)
}

// Тест: невалидный токен, user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	// подписываем секретом A, проверяем секретом B
	tok, _ := IssueToken(5, "", "secret-A", time.Hour)
	assert.Equal(t, http.StatusNoContent, serve(WithAuth("secret-B")(echoUID()), "Bearer "+tok).Code)

	expired, _ := IssueToken(5, "", "secret-A", -time.Minute)
	assert.Equal(t, http.StatusNoContent, serve(WithAuth("secret-A")(echoUID()), "Bearer "+expired).Code)
}

func TestParseToken(t *testing.T) {
	tok, err := IssueToken(42, "a@b.co", "s", time.Hour)
	require.NoError(t, err)
	id, err := ParseToken(tok, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// чужой алгоритм отвергается
	none, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("s"))
	_, err = ParseToken(none, "s")
	assert.Error(t, err)

	bad, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "abc"}).SignedString([]byte("s"))
	_, err = ParseToken(bad, "s")
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	tok, _ := IssueToken(9, "", "s", time.Hour)
	h := WithAuth("s")(RequireAuth(echoUID()))

	rr := serve(h, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"No autenticado"}`, rr.Body.String())

	rr = serve(h, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "9", rr.Body.String())
}
