package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"users-api/internal/entities"
	"users-api/internal/models"
	"users-api/internal/repository"
)

func TestGenerateCard(t *testing.T) {
	router, svc := newMockRouter(t)
	user := &entities.User{ID: 4, Name: "Alice Brown", Email: "alice.brown@example.com", Age: 28, City: "New York"}

	svc.EXPECT().GetUserByID(gomock.Any(), int64(4)).Return(user, nil)
	resp := serve(router, http.MethodGet, "/api/users/4/card?size=128", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("\x89PNG")))

	svc.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(nil, repository.ErrUserNotFound)
	resp = serve(router, http.MethodGet, "/api/users/5/card", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = serve(router, http.MethodGet, "/api/users/4/card?size=10", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMeCard(t *testing.T) {
	card := MeCard(&entities.User{Name: "Doe, John", Email: "john.doe@example.com", City: "New York"})
	assert.Equal(t, `MECARD:N:Doe\, John;EMAIL:john.doe@example.com;ADR:New York;;`, card)

	assert.Equal(t, `MECARD:N:a\;b\:c;;`, MeCard(&entities.User{Name: "a;b:c"}))
}

func TestGetAPIDocs(t *testing.T) {
	router, _ := newMockRouter(t)

	resp := serve(router, http.MethodGet, "/v3/api-docs", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var info models.APIInfo
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &info))
	assert.Equal(t, "Users API", info.Info.Title)
	assert.Equal(t, "MIT License", info.Info.License.Name)
	require.Len(t, info.Servers, 2)
	assert.Equal(t, "https://users.example.com", info.Servers[1].URL)
}

func TestDocsDefaultProductionServer(t *testing.T) {
	info := NewDocsController("").info

	require.Len(t, info.Servers, 2)
	assert.Equal(t, "http://localhost:8080", info.Servers[0].URL)
	assert.Equal(t, "https://api.example.com", info.Servers[1].URL)
	assert.Equal(t, "Production Server", info.Servers[1].Description)
}
