package applications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	applicationstore "github.com/pclub-iiitnr/lenshub/internal/app/store/applications"
	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *applicationstore.Store) {
	t.Helper()
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	apps := applicationstore.New(docs)
	return Routes(NewHandler(apps, zap.NewNop())), apps
}

func TestSubmit_RequiresSignIn(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","email":"a@iiitnr.edu.in"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestSubmit_TiesApplicationToUser(t *testing.T) {
	router, apps := newTestRouter(t)
	user := testutil.MemberUser()

	body := `{"name":"Asha","email":"asha@iiitnr.edu.in","phone":"12345","experience":"2 years","equipment":"Nikon D750"}`
	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), user)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
	}

	list, err := apps.List(testutil.Context(t))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}
	if list[0].UserID != user.UID {
		t.Errorf("user_id: got %q, want %q", list[0].UserID, user.UID)
	}
	if list[0].Status != "pending" {
		t.Errorf("status: got %q", list[0].Status)
	}
}

func TestSubmit_SanitizesInputs(t *testing.T) {
	router, apps := newTestRouter(t)

	body := `{"name":"Asha","email":"asha@iiitnr.edu.in","experience":"<script>alert(1)</script>2 years"}`
	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), testutil.MemberUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, body %s", rec.Code, rec.Body.String())
	}

	list, _ := apps.List(testutil.Context(t))
	if strings.Contains(list[0].Experience, "<script>") {
		t.Errorf("experience not sanitized: %q", list[0].Experience)
	}
}

func TestSubmit_RequiresNameAndEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"123"}`)), testutil.MemberUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	var env struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Error != "name and email are required" {
		t.Errorf("unexpected message %q", env.Error)
	}
}
