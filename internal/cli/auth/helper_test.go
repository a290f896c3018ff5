package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"TokenKeeper/internal/cli/repo"
	"TokenKeeper/internal/cli/repo/memory"
	"TokenKeeper/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingNavigator запоминает, куда нас попытались перенаправить
type recordingNavigator struct {
	paths []string
	// tokenAtNavigate фиксирует состояние хранилища в момент навигации
	tokenAtNavigate error
	store           repo.TokenStore
}

func (n *recordingNavigator) Navigate(_ context.Context, path string) error {
	n.paths = append(n.paths, path)
	if n.store != nil {
		_, n.tokenAtNavigate = n.store.Load()
	}
	return nil
}

// failingStore отдаёт ошибку на любые операции
type failingStore struct{ err error }

func (f failingStore) Save(string) error      { return f.err }
func (f failingStore) Load() (string, error) { return "", f.err }
func (f failingStore) Remove() error         { return f.err }

func TestHelper_SaveGetRoundTrip(t *testing.T) {
	h := NewHelper(memory.New())
	for _, s := range []string{"abc", "", "eyJhbGciOiJIUzI1NiJ9.x.y", "with space"} {
		require.NoError(t, h.SaveToken(s))
		got, err := h.GetToken()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestHelper_RemoveToken(t *testing.T) {
	h := NewHelper(memory.New())
	require.NoError(t, h.RemoveToken(), "removing an absent token is a no-op")
	require.NoError(t, h.SaveToken("abc"))
	require.NoError(t, h.RemoveToken())

	_, err := h.GetToken()
	assert.ErrorIs(t, err, repo.ErrNoToken)
	assert.False(t, h.IsAuthenticated())
}

func TestHelper_IsAuthenticated(t *testing.T) {
	h := NewHelper(memory.New())
	assert.False(t, h.IsAuthenticated(), "absent token")

	require.NoError(t, h.SaveToken(""))
	assert.False(t, h.IsAuthenticated(), "empty token")

	require.NoError(t, h.SaveToken("abc"))
	assert.True(t, h.IsAuthenticated())

	broken := NewHelper(failingStore{err: errors.New("disk on fire")})
	assert.False(t, broken.IsAuthenticated())
}

func TestHelper_SaveTokenErrorPropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	h := NewHelper(failingStore{err: boom})
	assert.ErrorIs(t, h.SaveToken("x"), boom)
}

// captured запрос тестового сервера
type captured struct {
	method string
	header http.Header
	body   string
}

func newCaptureServer(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.header = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		c.body = string(b)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(ts.Close)
	return ts, c
}

func TestFetchWithAuth_WithToken(t *testing.T) {
	ts, c := newCaptureServer(t)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))
	require.NoError(t, h.SaveToken("abc"))

	resp, err := h.FetchWithAuth(context.Background(), ts.URL+"/api/users", &RequestOptions{})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.MethodGet, c.method)
	assert.Equal(t, "Bearer abc", c.header.Get("Authorization"))
	assert.Equal(t, "application/json", c.header.Get("Content-Type"))
	// статус не интерпретируется: ответ возвращается как есть
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestFetchWithAuth_WithoutToken(t *testing.T) {
	ts, c := newCaptureServer(t)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))

	resp, err := h.FetchWithAuth(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, c.header.Values("Authorization"))
	assert.Equal(t, "application/json", c.header.Get("Content-Type"))
}

func TestFetchWithAuth_EmptyTokenSendsNoAuthorization(t *testing.T) {
	ts, c := newCaptureServer(t)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))
	require.NoError(t, h.SaveToken(""))

	resp, err := h.FetchWithAuth(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, c.header.Values("Authorization"))
}

func TestFetchWithAuth_ContentTypeOverwritten(t *testing.T) {
	ts, c := newCaptureServer(t)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))

	opts := &RequestOptions{
		Method:  http.MethodPost,
		Headers: http.Header{"content-type": {"text/plain"}, "X-Trace": {"42"}},
		Body:    strings.NewReader(`{"a":1}`),
	}
	resp, err := h.FetchWithAuth(context.Background(), ts.URL, opts)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, []string{"application/json"}, c.header.Values("Content-Type"))
	assert.Equal(t, "42", c.header.Get("X-Trace"))
	assert.Equal(t, `{"a":1}`, c.body)
	// заголовки опций мутируются на месте
	assert.Equal(t, "application/json", opts.Headers.Get("Content-Type"))
}

func TestFetchWithAuth_NilHeadersInitialisedInPlace(t *testing.T) {
	ts, _ := newCaptureServer(t)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))
	require.NoError(t, h.SaveToken("tok"))

	opts := &RequestOptions{}
	resp, err := h.FetchWithAuth(context.Background(), ts.URL, opts)
	require.NoError(t, err)
	resp.Body.Close()

	require.NotNil(t, opts.Headers)
	assert.Equal(t, "Bearer tok", opts.Headers.Get("Authorization"))
}

func TestFetchWithAuth_ErrorsPropagate(t *testing.T) {
	// сетевой сбой
	h := NewHelper(memory.New())
	_, err := h.FetchWithAuth(context.Background(), "http://127.0.0.1:1", nil)
	assert.Error(t, err)

	// невалидный URL
	_, err = h.FetchWithAuth(context.Background(), "://bad", nil)
	assert.Error(t, err)

	// сбой хранилища
	boom := errors.New("storage unavailable")
	_, err = NewHelper(failingStore{err: boom}).FetchWithAuth(context.Background(), "http://example.invalid", nil)
	assert.ErrorIs(t, err, boom)
}

func TestFetchWithAuth_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := h.FetchWithAuth(ctx, ts.URL, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchWithAuth_LogsRedactedAuthorization(t *testing.T) {
	ts, _ := newCaptureServer(t)
	core, logs := observer.New(zap.DebugLevel)
	h := NewHelper(memory.New(), WithHTTPClient(ts.Client()), WithLogger(zap.New(core).Sugar()))
	require.NoError(t, h.SaveToken("super-secret"))

	resp, err := h.FetchWithAuth(context.Background(), ts.URL, nil)
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.FilterMessage("fetch").All()
	require.Len(t, entries, 1)
	hdrs, ok := entries[0].ContextMap()["headers"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "REDACTED", hdrs["Authorization"])
	assert.Equal(t, 1, logs.FilterMessage("auth helper loaded").Len())
}

func TestLogout_RemovesTokenThenNavigates(t *testing.T) {
	store := memory.New()
	nav := &recordingNavigator{store: store}
	h := NewHelper(store, WithNavigator(nav))
	require.NoError(t, h.SaveToken("abc"))
	require.NoError(t, h.SaveUser(dto.SessionUser{Email: "a@b.c"}))

	require.NoError(t, h.Logout(context.Background()))

	_, err := h.GetToken()
	assert.ErrorIs(t, err, repo.ErrNoToken)
	_, err = h.CurrentUser()
	assert.ErrorIs(t, err, repo.ErrNoUser)
	assert.Equal(t, []string{"/login.html"}, nav.paths)
	assert.ErrorIs(t, nav.tokenAtNavigate, repo.ErrNoToken, "token must be gone before navigation")
}

func TestLogout_StoreFailureSkipsNavigation(t *testing.T) {
	nav := &recordingNavigator{}
	boom := errors.New("locked")
	h := NewHelper(failingStore{err: boom}, WithNavigator(nav))
	assert.ErrorIs(t, h.Logout(context.Background()), boom)
	assert.Empty(t, nav.paths)
}

func TestLogout_CustomLoginPathAndPrintNavigator(t *testing.T) {
	var buf bytes.Buffer
	h := NewHelper(memory.New(),
		WithNavigator(PrintNavigator{Out: &buf, BaseURL: "http://localhost:8080/"}),
		WithLoginPath("/signin.html"))
	require.NoError(t, h.Logout(context.Background()))
	assert.Equal(t, "Redirect: http://localhost:8080/signin.html\n", buf.String())
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	n := NavigatorFunc(func(_ context.Context, p string) error { got = p; return nil })
	require.NoError(t, n.Navigate(context.Background(), "/x"))
	assert.Equal(t, "/x", got)
	assert.NoError(t, NopNavigator{}.Navigate(context.Background(), "/y"))
}

func TestHelper_UserStoreNotConfigured(t *testing.T) {
	h := NewHelper(failingStore{})
	assert.ErrorIs(t, h.SaveUser(dto.SessionUser{Email: "a@b.c"}), ErrNoUserStore)
	_, err := h.CurrentUser()
	assert.ErrorIs(t, err, ErrNoUserStore)
}

func TestHelper_FormatDate(t *testing.T) {
	h := NewHelper(memory.New(), WithDateFormat("es-ES", time.UTC))
	got := h.FormatDate("2024-03-15T14:30:00Z")
	assert.Contains(t, got, "15")
	assert.Contains(t, got, "marzo")
	assert.Contains(t, got, "2024")
	assert.Contains(t, got, "14:30")
	assert.Equal(t, "Invalid Date", h.FormatDate("garbage"))
}

func TestHelper_FormatTime(t *testing.T) {
	h := NewHelper(memory.New(), WithDateFormat("es-ES", time.FixedZone("CET", 3600)))
	tm := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "15 de marzo de 2024, 15:30", h.FormatTime(tm))
	// нулевое время форматируется как есть, без разбора строки
	assert.NotEqual(t, "Invalid Date", h.FormatTime(time.Time{}))
}
