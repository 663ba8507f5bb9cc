package localstore_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

const testDir = "data"

func newTestStore(t *testing.T) (*localstore.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := localstore.New(fs, testDir, logger.Nop())
	require.NoError(t, err, "el gateway debe construirse sobre un memfs vacío")
	return store, fs
}

// ──────────────────────────────────────────────────────────────────────────────
// Store — gateway clave/valor
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_GuardarYLeer(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save("saludo", map[string]string{"hola": "mundo"}))

	var out map[string]string
	require.NoError(t, store.Load("saludo", &out))
	assert.Equal(t, "mundo", out["hola"])
}

func TestStore_ClaveAusenteDejaElValorPorDefecto(t *testing.T) {
	store, _ := newTestStore(t)

	valor := "defecto"
	require.NoError(t, store.Load("no-existe", &valor))
	assert.Equal(t, "defecto", valor, "una clave ausente no debe tocar el destino")
}

func TestStore_ContenidoCorruptoSeTrataComoAusente(t *testing.T) {
	store, fs := newTestStore(t)
	require.NoError(t, afero.WriteFile(fs, testDir+"/roto.json", []byte("{esto no es json"), 0o644))

	valor := "defecto"
	require.NoError(t, store.Load("roto", &valor), "un blob corrupto no debe propagar error")
	assert.Equal(t, "defecto", valor)
}

func TestStore_RemoveEliminaYEsIdempotente(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save("temporal", 42))
	assert.True(t, store.Exists("temporal"))

	require.NoError(t, store.Remove("temporal"))
	assert.False(t, store.Exists("temporal"))

	require.NoError(t, store.Remove("temporal"), "eliminar una clave inexistente es un no-op exitoso")
}

func TestStore_SaveReemplazaLaClaveCompleta(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save("lista", []int{1, 2, 3}))
	require.NoError(t, store.Save("lista", []int{9}))

	var out []int
	require.NoError(t, store.Load("lista", &out))
	assert.Equal(t, []int{9}, out, "cada Save reemplaza el contenido anterior por completo")
}

// ──────────────────────────────────────────────────────────────────────────────
// UserRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_CreateYFindByEmailCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewUserRepository(store)

	require.NoError(t, repo.Create(&entity.User{
		ID:    "u1",
		Name:  "Ana",
		Email: "Ana@Ejemplo.com",
	}))

	found, err := repo.FindByEmail("ana@ejemplo.COM")
	require.NoError(t, err)
	require.NotNil(t, found, "la búsqueda por email ignora mayúsculas")
	assert.Equal(t, "u1", found.ID)

	missing, err := repo.FindByEmail("otra@ejemplo.com")
	require.NoError(t, err)
	assert.Nil(t, missing, "email no registrado devuelve nil sin error")
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepo
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, userID, sku string) *entity.Product {
	return &entity.Product{
		ID:        id,
		UserID:    userID,
		Name:      "Producto " + id,
		SKU:       sku,
		Category:  "General",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProductRepo_ListByOwnerFiltraYPreservaOrden(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewProductRepository(store)

	require.NoError(t, repo.Create(producto("p1", "u1", "A1")))
	require.NoError(t, repo.Create(producto("p2", "u2", "B1")))
	require.NoError(t, repo.Create(producto("p3", "u1", "C1")))

	owned, err := repo.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "p1", owned[0].ID, "el orden de inserción se preserva")
	assert.Equal(t, "p3", owned[1].ID)
}

func TestProductRepo_UpdateInexistenteNoTocaLaColeccion(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewProductRepository(store)

	require.NoError(t, repo.Create(producto("p1", "u1", "A1")))

	err := repo.Update(producto("fantasma", "u1", "Z9"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "actualizar un ID inexistente debe fallar")

	owned, err := repo.ListByOwner("u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "A1", owned[0].SKU, "la colección debe quedar intacta")
}

func TestProductRepo_DeleteInexistenteEsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewProductRepository(store)

	require.NoError(t, repo.Create(producto("p1", "u1", "A1")))
	require.NoError(t, repo.Delete("fantasma"), "eliminar un ID inexistente es exitoso")

	owned, err := repo.ListByOwner("u1")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestProductRepo_DeleteIgnoraElDueno(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewProductRepository(store)

	require.NoError(t, repo.Create(producto("p1", "u1", "A1")))
	require.NoError(t, repo.Delete("p1"))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionRepo_CicloDeVidaDeLaSesion(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewSessionRepository(store)

	// Sin sesión
	s, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, s, "sin login no hay sesión")

	// Login
	require.NoError(t, repo.Set(&entity.Session{ID: "u1", Name: "Ana", Email: "ana@ejemplo.com"}))
	s, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "u1", s.ID)

	// Logout
	require.NoError(t, repo.Clear())
	s, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, s, "logout destruye la sesión")
}

func TestSessionRepo_EmailRecordado(t *testing.T) {
	store, _ := newTestStore(t)
	repo := localstore.NewSessionRepository(store)

	email, err := repo.RememberedEmail()
	require.NoError(t, err)
	assert.Empty(t, email)

	require.NoError(t, repo.RememberEmail("ana@ejemplo.com"))
	email, err = repo.RememberedEmail()
	require.NoError(t, err)
	assert.Equal(t, "ana@ejemplo.com", email)
}
