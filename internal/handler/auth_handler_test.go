package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neatify/neatify-api/internal/dto"
	"github.com/neatify/neatify-api/internal/models"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
)

type adminServiceMock struct {
	checkReq  *dto.CheckAdminRequest
	checkResp *dto.CheckAdminResponse
	checkErr  error
	listType  models.LocationType
	listResp  []dto.LocationName
	listErr   error
}

func (m *adminServiceMock) CheckAdmin(ctx context.Context, req dto.CheckAdminRequest) (*dto.CheckAdminResponse, error) {
	m.checkReq = &req
	if m.checkErr != nil {
		return nil, m.checkErr
	}
	return m.checkResp, nil
}

func (m *adminServiceMock) ListLocations(ctx context.Context, locationType models.LocationType) ([]dto.LocationName, error) {
	m.listType = locationType
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResp, nil
}

func TestAuthHandlerCheckAdmin(t *testing.T) {
	mock := &adminServiceMock{checkResp: &dto.CheckAdminResponse{IsAdmin: true, Location: "North Campus", Type: "campus"}}
	handler := NewAuthHandler(mock)
	c, w := newTestContext(t)

	payload, _ := json.Marshal(dto.CheckAdminRequest{Email: "admin@campus.edu"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/check-admin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckAdmin(c)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckAdminResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "North Campus", resp.Location)
	assert.Equal(t, "admin@campus.edu", mock.checkReq.Email)
}

func TestAuthHandlerCheckAdminNonAdmin(t *testing.T) {
	mock := &adminServiceMock{checkResp: &dto.CheckAdminResponse{IsAdmin: false}}
	handler := NewAuthHandler(mock)
	c, w := newTestContext(t)

	payload, _ := json.Marshal(dto.CheckAdminRequest{Email: "student@campus.edu"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/check-admin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckAdmin(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())
}

func TestAuthHandlerCheckAdminBadPayload(t *testing.T) {
	handler := NewAuthHandler(&adminServiceMock{})
	c, w := newTestContext(t)

	req, _ := http.NewRequest(http.MethodPost, "/auth/check-admin", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckAdmin(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestAuthHandlerCheckAdminMissingEmail(t *testing.T) {
	mock := &adminServiceMock{checkErr: appErrors.Clone(appErrors.ErrValidation, "Email is required")}
	handler := NewAuthHandler(mock)
	c, w := newTestContext(t)

	req, _ := http.NewRequest(http.MethodPost, "/auth/check-admin", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CheckAdmin(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationHandlerListCampuses(t *testing.T) {
	mock := &adminServiceMock{listResp: []dto.LocationName{{Name: "North Campus"}, {Name: "West Campus"}}}
	handler := NewLocationHandler(mock)
	c, w := newTestContext(t)

	req, _ := http.NewRequest(http.MethodGet, "/campus/list", nil)
	c.Request = req

	handler.ListCampuses(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.LocationCampus, mock.listType)

	var names []dto.LocationName
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	require.Len(t, names, 2)
	assert.Equal(t, "North Campus", names[0].Name)
}

func TestLocationHandlerListMunicipalities(t *testing.T) {
	mock := &adminServiceMock{listResp: []dto.LocationName{{Name: "Riverside"}}}
	handler := NewLocationHandler(mock)
	c, w := newTestContext(t)

	req, _ := http.NewRequest(http.MethodGet, "/municipality/list", nil)
	c.Request = req

	handler.ListMunicipalities(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.LocationMunicipality, mock.listType)
	assert.Contains(t, w.Body.String(), "Riverside")
}
