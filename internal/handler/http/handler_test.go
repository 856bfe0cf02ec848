package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/mock"
	"github.com/mshevelev/vault-hub/internal/service"
	"github.com/mshevelev/vault-hub/models"
)

type handlerFixture struct {
	auth     *mock.MockAuthService
	profiles *mock.MockProfileService
	entries  *mock.MockEntryService
	router   http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	profiles := mock.NewMockProfileService(ctrl)
	entries := mock.NewMockEntryService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:    auth,
		ProfileService: profiles,
		EntryService:   entries,
	}, logger.Nop())

	return &handlerFixture{
		auth:     auth,
		profiles: profiles,
		entries:  entries,
		router:   h.Init(),
	}
}

// do runs a request through the full router, middleware included.
func (f *handlerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// authed returns headers carrying a bearer token the mocked auth service
// will accept as userID.
func (f *handlerFixture) authed(userID int64) map[string]string {
	f.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: userID}, nil)

	return map[string]string{"Authorization": "Bearer valid-token"}
}
