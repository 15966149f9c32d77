package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	service_mocks "github.com/aakhmedov/freightpay/internal/mocks/service_mocks"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func TestHandler_Settings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCommissionService := service_mocks.NewMockCommissionService(ctrl)
	h := &Handler{commissionService: mockCommissionService}

	t.Run("get", func(t *testing.T) {
		mockCommissionService.EXPECT().GetSettings(gomock.Any()).
			Return(&models.PlatformSettings{GlobalCommissionPercent: decimal.NewFromInt(5), CommissionEnabled: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
		w := httptest.NewRecorder()
		h.GetSettings(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("update", func(t *testing.T) {
		mockCommissionService.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/settings",
			strings.NewReader(`{"global_commission_percent":6,"commission_enabled":true}`))
		w := httptest.NewRecorder()
		h.UpdateSettings(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("update with bad percent", func(t *testing.T) {
		mockCommissionService.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrInvalidPercent)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/settings",
			strings.NewReader(`{"global_commission_percent":150}`))
		w := httptest.NewRecorder()
		h.UpdateSettings(w, req)
		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
		}
	})
}

func TestHandler_Levels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCommissionService := service_mocks.NewMockCommissionService(ctrl)
	h := &Handler{commissionService: mockCommissionService}

	t.Run("create", func(t *testing.T) {
		mockCommissionService.EXPECT().CreateLevel(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/levels",
			strings.NewReader(`{"name":"silver","min_turnover":1000000,"percent":4,"is_active":true}`))
		w := httptest.NewRecorder()
		h.CreateLevel(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("update takes the id from the path", func(t *testing.T) {
		mockCommissionService.EXPECT().UpdateLevel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, level *models.CommissionLevel) error {
				if level.ID != 3 {
					t.Errorf("got level id %d, want 3", level.ID)
				}
				return nil
			})

		req := httptest.NewRequest(http.MethodPut, "/api/admin/levels/3",
			strings.NewReader(`{"name":"silver","percent":4}`))
		req = requestWithURLParam(req, "levelID", "3")
		w := httptest.NewRecorder()
		h.UpdateLevel(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("delete missing level", func(t *testing.T) {
		mockCommissionService.EXPECT().DeleteLevel(gomock.Any(), int64(9)).Return(apperrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/levels/9", nil)
		req = requestWithURLParam(req, "levelID", "9")
		w := httptest.NewRecorder()
		h.DeleteLevel(w, req)
		if w.Result().StatusCode != http.StatusNotFound {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusNotFound)
		}
	})
}

func TestHandler_Overrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCommissionService := service_mocks.NewMockCommissionService(ctrl)
	h := &Handler{commissionService: mockCommissionService}

	t.Run("set", func(t *testing.T) {
		mockCommissionService.EXPECT().SetOverride(gomock.Any(), int64(7), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/users/7/commission",
			strings.NewReader(`{"percent":3}`))
		req = requestWithURLParam(req, "userID", "7")
		w := httptest.NewRecorder()
		h.SetOverride(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("set invalid percent", func(t *testing.T) {
		mockCommissionService.EXPECT().SetOverride(gomock.Any(), int64(7), gomock.Any()).
			Return(apperrors.ErrInvalidPercent)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/users/7/commission",
			strings.NewReader(`{"percent":150}`))
		req = requestWithURLParam(req, "userID", "7")
		w := httptest.NewRecorder()
		h.SetOverride(w, req)
		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
		}
	})

	t.Run("clear", func(t *testing.T) {
		mockCommissionService.EXPECT().ClearOverride(gomock.Any(), int64(7)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/7/commission", nil)
		req = requestWithURLParam(req, "userID", "7")
		w := httptest.NewRecorder()
		h.ClearOverride(w, req)
		if w.Result().StatusCode != http.StatusNoContent {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusNoContent)
		}
	})
}

func TestHandler_GrantSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCommissionService := service_mocks.NewMockCommissionService(ctrl)
	h := &Handler{commissionService: mockCommissionService}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"user_id":4,"plan_name":"pro","percent":2,"price":20000,"days":30}`,
			mockSetup: func() {
				mockCommissionService.EXPECT().
					GrantSubscription(gomock.Any(), int64(4), "pro", gomock.Any(), gomock.Any(), 30, "").
					Return(&models.Subscription{UserID: 4, PlanName: "pro"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing plan name",
			body:           `{"user_id":4,"days":30}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "cannot afford the plan",
			body: `{"user_id":4,"plan_name":"pro","percent":2,"price":20000,"days":30}`,
			mockSetup: func() {
				mockCommissionService.EXPECT().
					GrantSubscription(gomock.Any(), int64(4), "pro", gomock.Any(), gomock.Any(), 30, "").
					Return(nil, apperrors.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusPaymentRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/subscriptions", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.GrantSubscription(w, req)
			if w.Result().StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", w.Result().StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_GrantBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedgerService := service_mocks.NewMockLedgerService(ctrl)
	h := &Handler{ledgerService: mockLedgerService}

	t.Run("create and confirm", func(t *testing.T) {
		mockLedgerService.EXPECT().
			CreateTransaction(gomock.Any(), int64(5), models.TypeBonus, gomock.Any(), gomock.Any()).
			Return(&models.Transaction{ID: "tx-1", UserID: 5, Type: models.TypeBonus, Status: models.StatusPending}, nil)
		mockLedgerService.EXPECT().ConfirmTransaction(gomock.Any(), "tx-1", int64(5)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users/5/bonus",
			strings.NewReader(`{"amount":1000,"reason":"loyalty"}`))
		req = requestWithURLParam(req, "userID", "5")
		w := httptest.NewRecorder()
		h.GrantBonus(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("replayed bonus settles once", func(t *testing.T) {
		mockLedgerService.EXPECT().
			CreateTransaction(gomock.Any(), int64(5), models.TypeBonus, gomock.Any(), gomock.Any()).
			Return(&models.Transaction{ID: "tx-1", UserID: 5, Type: models.TypeBonus, Status: models.StatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users/5/bonus",
			strings.NewReader(`{"amount":1000,"reason":"loyalty","idempotency_key":"bonus-1"}`))
		req = requestWithURLParam(req, "userID", "5")
		w := httptest.NewRecorder()
		h.GrantBonus(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		mockLedgerService.EXPECT().
			CreateTransaction(gomock.Any(), int64(5), models.TypeBonus, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/users/5/bonus",
			strings.NewReader(`{"amount":0}`))
		req = requestWithURLParam(req, "userID", "5")
		w := httptest.NewRecorder()
		h.GrantBonus(w, req)
		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
		}
	})
}

func TestHandler_GetPlatformIncome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedgerService := service_mocks.NewMockLedgerService(ctrl)
	h := &Handler{ledgerService: mockLedgerService}

	mockLedgerService.EXPECT().GetPlatformIncome(gomock.Any()).
		Return(decimal.NewFromInt(20000), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/income", nil)
	w := httptest.NewRecorder()
	h.GetPlatformIncome(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "20000") {
		t.Errorf("income missing from response: %s", w.Body.String())
	}

	mockLedgerService.EXPECT().GetPlatformIncome(gomock.Any()).
		Return(decimal.Zero, errors.New("fail"))
	w = httptest.NewRecorder()
	h.GetPlatformIncome(w, req)
	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusInternalServerError)
	}
}
