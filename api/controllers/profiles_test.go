package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/cardlinkhq/cardlink-backend/api/middleware"
	"github.com/cardlinkhq/cardlink-backend/internal/profiles"
	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	pkgerrors "github.com/cardlinkhq/cardlink-backend/pkg/errors"
	"github.com/cardlinkhq/cardlink-backend/pkg/types"
	"github.com/google/uuid"
)

// stubProfilesService records the inputs handlers pass through and answers
// with canned results.
type stubProfilesService struct {
	dto        *profiles.ProfileDTO
	page       *types.ListPage[profiles.ProfileDTO]
	stats      *profiles.Stats
	err        error
	gotStatus  enums.AccountStatus
	gotActor   profiles.Actor
	gotSearch  profiles.SearchParams
	gotOwnerID *uuid.UUID
	gotInput   profiles.ProfileInput
}

func (s *stubProfilesService) Create(_ context.Context, input profiles.ProfileInput) (*profiles.ProfileDTO, error) {
	s.gotInput = input
	return s.dto, s.err
}

func (s *stubProfilesService) Update(_ context.Context, actor profiles.Actor, _ uuid.UUID, _ profiles.ProfileInput) (*profiles.ProfileDTO, error) {
	s.gotActor = actor
	return s.dto, s.err
}

func (s *stubProfilesService) SetStatus(_ context.Context, actor profiles.Actor, _ uuid.UUID, status enums.AccountStatus) (*profiles.ProfileDTO, error) {
	s.gotActor = actor
	s.gotStatus = status
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status value")
	}
	return s.dto, s.err
}

func (s *stubProfilesService) AssignOwner(_ context.Context, _ uuid.UUID, ownerAdminID *uuid.UUID) (*profiles.ProfileDTO, error) {
	s.gotOwnerID = ownerAdminID
	return s.dto, s.err
}

func (s *stubProfilesService) GetByID(_ context.Context, actor profiles.Actor, _ uuid.UUID) (*profiles.ProfileDTO, error) {
	s.gotActor = actor
	return s.dto, s.err
}

func (s *stubProfilesService) GetByOwner(_ context.Context, _ uuid.UUID) (*profiles.ProfileDTO, error) {
	return s.dto, s.err
}

func (s *stubProfilesService) UpdateByOwner(_ context.Context, actor profiles.Actor, _ profiles.ProfileInput) (*profiles.ProfileDTO, error) {
	s.gotActor = actor
	return s.dto, s.err
}

func (s *stubProfilesService) Search(_ context.Context, params profiles.SearchParams) (*types.ListPage[profiles.ProfileDTO], error) {
	s.gotSearch = params
	return s.page, s.err
}

func (s *stubProfilesService) DashboardStats(_ context.Context) (*profiles.Stats, error) {
	return s.stats, s.err
}

func serveWithIdentity(t *testing.T, method, path string, body []byte, identity middleware.Identity, register func(r chi.Router)) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	register(r)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestProfileCreateMixedCaseUsername(t *testing.T) {
	// Canonicalization to lowercase happens in the directory service; the
	// handler must not reject mixed-case input at decode time.
	svc := &stubProfilesService{dto: &profiles.ProfileDTO{Username: "john-doe"}}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	payload := []byte(`{"full_name":"John Doe","username":"JOHN-DOE","email":"john@example.com","phone":"+1-555-0100"}`)
	resp := serveWithIdentity(t, http.MethodPost, "/admin/profiles", payload, identity, func(r chi.Router) {
		r.Post("/admin/profiles", ProfileCreate(svc, nil))
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotInput.Username != "JOHN-DOE" {
		t.Fatalf("expected raw username passed through, got %q", svc.gotInput.Username)
	}
	var body profiles.ProfileDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Username != "john-doe" {
		t.Fatalf("expected normalized username in response, got %q", body.Username)
	}
}

func TestProfileSetStatusInvalidValue(t *testing.T) {
	svc := &stubProfilesService{}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	resp := serveWithIdentity(t, http.MethodPatch, "/admin/profiles/"+uuid.NewString()+"/status",
		[]byte(`{"status":"MAYBE"}`), identity, func(r chi.Router) {
			r.Patch("/admin/profiles/{profileId}/status", ProfileSetStatus(svc, nil))
		})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Invalid status value" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestProfileSetStatusPassesActor(t *testing.T) {
	adminID := uuid.New()
	svc := &stubProfilesService{dto: &profiles.ProfileDTO{Username: "john-doe", Status: enums.AccountStatusDisabled}}
	identity := middleware.Identity{AdminID: adminID, Role: enums.AdminRoleAdmin}

	resp := serveWithIdentity(t, http.MethodPatch, "/admin/profiles/"+uuid.NewString()+"/status",
		[]byte(`{"status":"DISABLED"}`), identity, func(r chi.Router) {
			r.Patch("/admin/profiles/{profileId}/status", ProfileSetStatus(svc, nil))
		})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotStatus != enums.AccountStatusDisabled {
		t.Fatalf("expected DISABLED passed through, got %s", svc.gotStatus)
	}
	if svc.gotActor.AdminID != adminID || svc.gotActor.Role != enums.AdminRoleAdmin {
		t.Fatalf("unexpected actor %+v", svc.gotActor)
	}
}

func TestProfileSetStatusBadID(t *testing.T) {
	svc := &stubProfilesService{}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	resp := serveWithIdentity(t, http.MethodPatch, "/admin/profiles/not-a-uuid/status",
		[]byte(`{"status":"ACTIVE"}`), identity, func(r chi.Router) {
			r.Patch("/admin/profiles/{profileId}/status", ProfileSetStatus(svc, nil))
		})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProfilesSearchCoercesPaging(t *testing.T) {
	svc := &stubProfilesService{page: &types.ListPage[profiles.ProfileDTO]{
		Items:      []profiles.ProfileDTO{},
		Page:       1,
		Total:      0,
		TotalPages: 1,
	}}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	resp := serveWithIdentity(t, http.MethodGet, "/admin/profiles?page=abc&limit=-5&search=john&status=ACTIVE",
		nil, identity, func(r chi.Router) {
			r.Get("/admin/profiles", ProfilesSearch(svc, nil))
		})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotSearch.Page.Page != 1 || svc.gotSearch.Page.Limit != 10 {
		t.Fatalf("expected coerced paging, got %+v", svc.gotSearch.Page)
	}
	if svc.gotSearch.Text != "john" || svc.gotSearch.Status != enums.AccountStatusActive {
		t.Fatalf("unexpected filters %+v", svc.gotSearch)
	}

	var body struct {
		Items      []profiles.ProfileDTO `json:"items"`
		Page       int                   `json:"page"`
		Total      int64                 `json:"total"`
		TotalPages int                   `json:"totalPages"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TotalPages != 1 {
		t.Fatalf("expected totalPages 1, got %d", body.TotalPages)
	}
}

func TestProfileAssignOwnerClears(t *testing.T) {
	svc := &stubProfilesService{dto: &profiles.ProfileDTO{Username: "john-doe"}}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	resp := serveWithIdentity(t, http.MethodPatch, "/admin/profiles/"+uuid.NewString()+"/owner",
		[]byte(`{"owner_admin_id":null}`), identity, func(r chi.Router) {
			r.Patch("/admin/profiles/{profileId}/owner", ProfileAssignOwner(svc, nil))
		})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotOwnerID != nil {
		t.Fatalf("expected nil owner id, got %v", svc.gotOwnerID)
	}
}

func TestDashboardStatsPayload(t *testing.T) {
	svc := &stubProfilesService{stats: &profiles.Stats{
		TotalProfiles:    3,
		ActiveProfiles:   2,
		DisabledProfiles: 1,
		NFCAssignedCount: 2,
	}}
	identity := middleware.Identity{AdminID: uuid.New(), Role: enums.AdminRoleSuperAdmin}

	resp := serveWithIdentity(t, http.MethodGet, "/admin/dashboard", nil, identity, func(r chi.Router) {
		r.Get("/admin/dashboard", DashboardStats(svc, nil))
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["total_profiles"] != 3 || body["active_profiles"] != 2 || body["disabled_profiles"] != 1 || body["nfc_assigned_count"] != 2 {
		t.Fatalf("unexpected stats payload: %v", body)
	}
}
