package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAdminDashboardHandler_RendersJoinedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []models.EventReportRow{
		{EventID: 1, UserName: "Alice Driver", VehicleNo: "KA-01-1234", EventType: "drowsy", Timestamp: "2026-08-31 10:15:00", ImagePath: "capture_1_20260831_101500.jpg"},
		{EventID: 2, UserName: "Bob", VehicleNo: "KA-02-9999", EventType: "yawning", Timestamp: "2026-08-31 10:16:12", ImagePath: "capture_2_20260831_101612.jpg"},
	}

	mockSvc := NewMockReportProvider(ctrl)
	mockSvc.EXPECT().GetReport(gomock.Any(), 0, 0).Return(rows, nil)
	mockSvc.EXPECT().CountAccounts(gomock.Any()).Return(int64(5), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	rr := httptest.NewRecorder()

	NewAdminDashboardHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Alice Driver")
	assert.Contains(t, body, "KA-02-9999")
	assert.Contains(t, body, "2026-08-31 10:15:00")
	assert.Contains(t, body, "capture_2_20260831_101612.jpg")
	assert.Contains(t, body, "5 registered driver")
}

func TestAdminDashboardHandler_PassesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportProvider(ctrl)
	mockSvc.EXPECT().GetReport(gomock.Any(), 25, 50).Return([]models.EventReportRow{}, nil)
	mockSvc.EXPECT().CountAccounts(gomock.Any()).Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard?limit=25&offset=50", nil)
	rr := httptest.NewRecorder()

	NewAdminDashboardHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No events recorded yet")
}

func TestAdminDashboardHandler_ReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportProvider(ctrl)
	mockSvc.EXPECT().GetReport(gomock.Any(), 0, 0).Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	rr := httptest.NewRecorder()

	NewAdminDashboardHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAdminDashboardHandler_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportProvider(ctrl)
	mockSvc.EXPECT().GetReport(gomock.Any(), 0, 0).Return([]models.EventReportRow{}, nil)
	mockSvc.EXPECT().CountAccounts(gomock.Any()).Return(int64(0), errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	rr := httptest.NewRecorder()

	NewAdminDashboardHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
