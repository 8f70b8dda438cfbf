package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	personDomain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	userDomain "github.com/BruksfildServices01/clinic-api/internal/domain/user"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	personUC "github.com/BruksfildServices01/clinic-api/internal/usecase/person"
)

func init() {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()
}

// ------------------------------
// fakes
// ------------------------------

type memPersons struct {
	mu   sync.Mutex
	rows map[uint]models.Person
}

func newMemPersons() *memPersons { return &memPersons{rows: map[uint]models.Person{}} }

func (m *memPersons) Create(_ context.Context, p *models.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uint(len(m.rows) + 1)
	m.rows[p.ID] = *p
	return nil
}

func (m *memPersons) GetByID(_ context.Context, id uint) (*models.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, httperr.NotFound("person_not_found", "no")
	}
	return &p, nil
}

func (m *memPersons) FindByDNI(_ context.Context, dni string) (*models.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.rows {
		if p.DNI == dni {
			return &p, nil
		}
	}
	return nil, httperr.NotFound("person_not_found", "no")
}

func (m *memPersons) List(context.Context, personDomain.Filter, query.Options) (query.Result[models.Person], error) {
	return query.Result[models.Person]{}, nil
}

func (m *memPersons) Update(_ context.Context, p *models.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[p.ID] = *p
	return nil
}

func (m *memPersons) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type memUsers struct {
	created []models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.created = append(m.created, *u)
	return nil
}

func (m *memUsers) GetByID(context.Context, uuid.UUID) (*models.User, error) {
	return nil, httperr.NotFound("user_not_registered", "no")
}

func (m *memUsers) List(context.Context, userDomain.Filter, query.Options) (query.Result[models.User], error) {
	return query.Result[models.User]{}, nil
}

func (m *memUsers) Update(context.Context, *models.User) error { return nil }
func (m *memUsers) Delete(context.Context, uuid.UUID) error     { return nil }

type stubProvisioner struct {
	id  uuid.UUID
	err error
}

func (s stubProvisioner) CreateUser(context.Context, string, string) (uuid.UUID, error) {
	return s.id, s.err
}

// ------------------------------
// helpers
// ------------------------------

func send(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var out httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func personRouter(repo *memPersons) *gin.Engine {
	h := NewPersonHandler(
		repo,
		personUC.NewRegisterPerson(repo, audit.Nop()),
		personUC.NewUploadPhoto(repo, nil, 512, 1_000_000, audit.Nop()),
		audit.Nop(),
		1<<20,
	)

	r := gin.New()
	r.POST("/personas", h.Create)
	r.GET("/personas/:id", h.Get)
	r.PUT("/personas/:id", h.Update)
	r.POST("/personas/:id/foto", h.UploadPhoto)
	r.PUT("/personas/:id/foto", h.SetPhotoURL)
	return r
}

// ------------------------------
// persons
// ------------------------------

func TestPersonCreate_IdempotentOnDNI(t *testing.T) {
	repo := newMemPersons()
	r := personRouter(repo)

	body := map[string]any{"nombres": "Luis", "apellidos": "Quispe", "dni": "44556677"}

	w := send(r, http.MethodPost, "/personas", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body["nombres"] = "Otro"
	w = send(r, http.MethodPost, "/personas", body)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Persona models.Person `json:"persona"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Luis", out.Persona.FirstName)
	assert.Len(t, repo.rows, 1)
}

func TestPersonCreate_MissingFields(t *testing.T) {
	r := personRouter(newMemPersons())

	w := send(r, http.MethodPost, "/personas", map[string]any{"nombres": "Luis"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := errorBody(t, w)
	assert.Equal(t, "invalid_input", e.Code)
	assert.ElementsMatch(t, []string{"apellidos", "dni"}, e.Fields)
}

func TestPersonUpdate_RejectsBlankRequiredFields(t *testing.T) {
	repo := newMemPersons()
	require.NoError(t, repo.Create(context.Background(), &models.Person{FirstName: "Luis", LastName: "Quispe", DNI: "1"}))
	r := personRouter(repo)

	w := send(r, http.MethodPut, "/personas/1", map[string]any{"nombres": "  ", "telefono": "999"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"nombres"}, errorBody(t, w).Fields)

	w = send(r, http.MethodPut, "/personas/1", map[string]any{"telefono": "999", "direccion": ""})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	p := repo.rows[1]
	require.NotNil(t, p.Phone)
	assert.Equal(t, "999", *p.Phone)
	assert.Nil(t, p.Address)
	assert.Equal(t, "Luis", p.FirstName)
}

func TestPersonGet_InvalidAndMissingID(t *testing.T) {
	r := personRouter(newMemPersons())

	w := send(r, http.MethodGet, "/personas/x1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", errorBody(t, w).Code)

	w = send(r, http.MethodGet, "/personas/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPersonUploadPhoto_DisabledWithoutStore(t *testing.T) {
	repo := newMemPersons()
	require.NoError(t, repo.Create(context.Background(), &models.Person{FirstName: "A", LastName: "B", DNI: "1"}))
	r := personRouter(repo)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("foto", "a.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not really a png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/personas/1/foto", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "uploads_disabled", errorBody(t, w).Code)
}

func TestPersonUploadPhoto_RequiresFile(t *testing.T) {
	r := personRouter(newMemPersons())

	req := httptest.NewRequest(http.MethodPost, "/personas/1/foto", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"foto"}, errorBody(t, w).Fields)
}

func TestPersonSetPhotoURL_Validates(t *testing.T) {
	repo := newMemPersons()
	require.NoError(t, repo.Create(context.Background(), &models.Person{FirstName: "A", LastName: "B", DNI: "1"}))
	r := personRouter(repo)

	w := send(r, http.MethodPut, "/personas/1/foto", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"foto_url"}, errorBody(t, w).Fields)

	w = send(r, http.MethodPut, "/personas/1/foto", map[string]any{"foto_url": "https://cdn.example.pe/1.webp"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, repo.rows[1].PhotoURL)
}

// ------------------------------
// admin auth
// ------------------------------

func adminAuthRouter(p Provisioner, users *memUsers) *gin.Engine {
	h := NewAdminAuthHandler(p, users, func(string) bool { return true }, audit.Nop())
	r := gin.New()
	r.POST("/crear-auth", h.CreateAuth)
	return r
}

func TestCreateAuth_Validation(t *testing.T) {
	r := adminAuthRouter(stubProvisioner{id: uuid.New()}, &memUsers{})

	cases := []struct {
		name string
		body map[string]any
		code string
	}{
		{"missing", map[string]any{"email": "a@b.pe"}, "invalid_input"},
		{"malformed email", map[string]any{"email": "not-an-email", "password": "secret1"}, "invalid_email"},
		{"unknown role", map[string]any{"email": "a@b.pe", "password": "secret1", "role": "root"}, "invalid_role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/crear-auth", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, errorBody(t, w).Code)
		})
	}
}

func TestCreateAuth_DisabledWithoutProvisioner(t *testing.T) {
	r := adminAuthRouter(nil, &memUsers{})

	w := send(r, http.MethodPost, "/crear-auth", map[string]any{"email": "a@b.pe", "password": "secret1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "provisioning_disabled", errorBody(t, w).Code)
}

func TestCreateAuth_CreatesUserRowWhenRoleGiven(t *testing.T) {
	sub := uuid.New()
	users := &memUsers{}
	r := adminAuthRouter(stubProvisioner{id: sub}, users)

	w := send(r, http.MethodPost, "/crear-auth", map[string]any{
		"email":    "  Staff@Clinica.PE ",
		"password": "secret1",
		"role":     "asistente",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		AuthUserID uuid.UUID    `json:"auth_user_id"`
		Usuario    *models.User `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, sub, out.AuthUserID)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, "asistente", out.Usuario.Role)
	require.Len(t, users.created, 1)
	assert.Equal(t, sub, users.created[0].ID)
}

func TestCreateAuth_PropagatesProviderConflict(t *testing.T) {
	r := adminAuthRouter(stubProvisioner{err: httperr.Conflict("email_exists", "taken")}, &memUsers{})

	w := send(r, http.MethodPost, "/crear-auth", map[string]any{"email": "a@b.pe", "password": "secret1"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_exists", errorBody(t, w).Code)
}
