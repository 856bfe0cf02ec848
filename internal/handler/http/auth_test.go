package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mshevelev/vault-hub/internal/service"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/models"
)

func TestRegister(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 1, Login: "alice"}, nil)
	f.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed"}, nil)

	rec := f.do(http.MethodPost, "/api/user/register", `{"login":"alice","password":"p@ss"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestRegister_DuplicateLogin(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	rec := f.do(http.MethodPost, "/api/user/register", `{"login":"alice","password":"p@ss"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/user/register", `{not json`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Login: "alice"}, nil)
	f.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed"}, nil)

	rec := f.do(http.MethodPost, "/api/user/login", `{"login":"alice","password":"p@ss"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	rec := f.do(http.MethodPost, "/api/user/login", `{"login":"alice","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
