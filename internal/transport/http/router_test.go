package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports/mocks"
	rest "github.com/Gunvolt24/wb_cache/internal/transport/http"
	"github.com/Gunvolt24/wb_cache/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type env struct {
	orch      *mocks.MockCacheOrchestrator
	validator *mocks.MockItemValidator
	router    http.Handler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	orch := mocks.NewMockCacheOrchestrator(ctrl)
	validator := mocks.NewMockItemValidator(ctrl)
	h := rest.NewHandler(orch, validator, noopLogger{}, 0)
	return &env{orch: orch, validator: validator, router: rest.NewRouter(h, "", "test")}
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const itemBody = `{"name":"Widget","description":"d","value":9.5}`

func TestWriteThrough_OK(t *testing.T) {
	e := newEnv(t)

	stored := &domain.Item{ID: "item-1", Name: "Widget", Value: 9.5}
	e.validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.Item{})).Return(nil)
	e.orch.EXPECT().WriteThrough(gomock.Any(), "item-1", gomock.AssignableToTypeOf(&domain.Item{})).Return(stored, nil)

	w := do(t, e.router, http.MethodPost, "/write-through/item-1", itemBody)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Item
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "item-1" {
		t.Fatalf("wrong item id: %+v", got)
	}
}

func TestWriteThrough_BadJSON_400(t *testing.T) {
	e := newEnv(t)

	// Валидатор и оркестратор не должны вызываться при мусорном теле.
	w := do(t, e.router, http.MethodPost, "/write-through/item-1", "{not-json")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteThrough_ValidationFailed_400(t *testing.T) {
	e := newEnv(t)

	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(validate.ErrInvalidItem)

	w := do(t, e.router, http.MethodPost, "/write-through/item-1", itemBody)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteThrough_PathIDWins(t *testing.T) {
	e := newEnv(t)

	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	e.orch.EXPECT().WriteThrough(gomock.Any(), "route-id", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, item *domain.Item) (*domain.Item, error) {
			if item.ID != "route-id" {
				t.Fatalf("body id must be overridden by route id, got %q", item.ID)
			}
			return item, nil
		})

	body := `{"item_id":"body-id","name":"Widget","value":1}`
	w := do(t, e.router, http.MethodPost, "/write-through/route-id", body)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteThrough_UncachedWrite_502(t *testing.T) {
	e := newEnv(t)

	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	e.orch.EXPECT().WriteThrough(gomock.Any(), "item-1", gomock.Any()).
		Return(nil, domain.ErrUncachedWrite)

	w := do(t, e.router, http.MethodPost, "/write-through/item-1", itemBody)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteThrough_StoreError_500(t *testing.T) {
	e := newEnv(t)

	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	e.orch.EXPECT().WriteThrough(gomock.Any(), "item-1", gomock.Any()).
		Return(nil, errors.New("store down"))

	w := do(t, e.router, http.MethodPost, "/write-through/item-1", itemBody)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteBehind_Accepted_202(t *testing.T) {
	e := newEnv(t)

	stored := &domain.Item{ID: "item-2", Name: "Widget"}
	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	e.orch.EXPECT().WriteBehind(gomock.Any(), "item-2", gomock.Any()).Return(stored, nil)

	w := do(t, e.router, http.MethodPost, "/write-behind/item-2", itemBody)

	if w.Code != http.StatusAccepted {
		t.Fatalf("want 202, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestWriteBehind_CacheError_500(t *testing.T) {
	e := newEnv(t)

	e.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	e.orch.EXPECT().WriteBehind(gomock.Any(), "item-2", gomock.Any()).
		Return(nil, errors.New("cache down"))

	w := do(t, e.router, http.MethodPost, "/write-behind/item-2", itemBody)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReadThrough_Found(t *testing.T) {
	e := newEnv(t)

	want := &domain.Item{ID: "item-3", Name: "Widget"}
	e.orch.EXPECT().ReadThrough(gomock.Any(), "item-3").Return(want, nil)

	w := do(t, e.router, http.MethodGet, "/read-through/item-3", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Item
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "item-3" {
		t.Fatalf("wrong item: %+v", got)
	}
}

func TestReadThrough_NotFound_404(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().ReadThrough(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

	w := do(t, e.router, http.MethodGet, "/read-through/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCacheAside_Found(t *testing.T) {
	e := newEnv(t)

	want := &domain.Item{ID: "item-4"}
	e.orch.EXPECT().ReadCacheAside(gomock.Any(), "item-4").Return(want, nil)

	w := do(t, e.router, http.MethodGet, "/cache-aside/item-4", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCacheAside_StoreError_500(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().ReadCacheAside(gomock.Any(), "item-4").Return(nil, errors.New("db error"))

	w := do(t, e.router, http.MethodGet, "/cache-aside/item-4", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestInvalidate_Removed(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().Invalidate(gomock.Any(), "item-5").Return(true, nil)

	w := do(t, e.router, http.MethodDelete, "/invalidate-cache/item-5", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["invalidated"] != true {
		t.Fatalf("want invalidated=true, got %+v", got)
	}
}

func TestInvalidate_AbsentIsStillOK(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().Invalidate(gomock.Any(), "gone").Return(false, nil)

	w := do(t, e.router, http.MethodDelete, "/invalidate-cache/gone", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["invalidated"] != false {
		t.Fatalf("want invalidated=false, got %+v", got)
	}
}

func TestDeleteItem_204(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().DeleteAndInvalidate(gomock.Any(), "item-6").Return(nil)

	w := do(t, e.router, http.MethodDelete, "/item/item-6", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteItem_StoreError_500(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().DeleteAndInvalidate(gomock.Any(), "item-6").Return(errors.New("store down"))

	w := do(t, e.router, http.MethodDelete, "/item/item-6", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestHealth_OK(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().Health(gomock.Any()).Return(nil)

	w := do(t, e.router, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestHealth_Degraded_503(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().Health(gomock.Any()).Return(errors.New("cache unreachable"))

	w := do(t, e.router, http.MethodGet, "/health", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestStoreItem_Found(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().StoreItem(gomock.Any(), "item-7").Return(&domain.Item{ID: "item-7"}, nil)

	w := do(t, e.router, http.MethodGet, "/store/item-7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestStoreItem_Absent_404(t *testing.T) {
	e := newEnv(t)

	e.orch.EXPECT().StoreItem(gomock.Any(), "missing").Return(nil, nil)

	w := do(t, e.router, http.MethodGet, "/store/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestStoreList_DefaultLimitOffset(t *testing.T) {
	e := newEnv(t)

	ret := []*domain.Item{{ID: "a"}, {ID: "b"}}
	e.orch.EXPECT().StoreList(gomock.Any(), 20, 0).Return(ret, nil)

	w := do(t, e.router, http.MethodGet, "/store", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Item
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestStoreList_WithParams_Clamped(t *testing.T) {
	e := newEnv(t)

	// limit=1000 клэмпится до 100
	e.orch.EXPECT().StoreList(gomock.Any(), 100, 7).Return([]*domain.Item{}, nil)

	w := do(t, e.router, http.MethodGet, "/store?limit=1000&offset=7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestNoRoute_404(t *testing.T) {
	e := newEnv(t)

	w := do(t, e.router, http.MethodGet, "/no-such-route", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	e := newEnv(t)

	w := do(t, e.router, http.MethodPut, "/read-through/123", "")

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing_200(t *testing.T) {
	e := newEnv(t)

	w := do(t, e.router, http.MethodGet, "/ping", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	e := newEnv(t)

	w := do(t, e.router, http.MethodGet, "/metrics", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
