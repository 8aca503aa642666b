package envconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

func TestDefaults(t *testing.T) {
	srv, err := NewHTTPServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3000", srv.Address())
	assert.Equal(t, 60*time.Second, srv.BDEReadTimeout())

	m, err := NewMongoConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", m.DSN())
	assert.Equal(t, "test", m.DatabaseName())
	assert.False(t, m.Configured())

	cols, err := NewCollectionsConfig()
	require.NoError(t, err)
	assert.Equal(t, model.Collections{
		Stock:         "nuovaGiacenza",
		Product:       "prodottis",
		Category:      "categoriaprodottis",
		Brand:         "marcaprodottis",
		Type:          "tipologiaprodottis",
		Model:         "modelloprodottis",
		Color:         "coloreprodottis",
		Size:          "tagliaclientes",
		Warehouse:     "magazzinis",
		Supplier:      "fornitoris",
		LoadRecord:    "caricoscaricos",
		Client:        "clientes",
		Appointment:   "appuntamentos",
		Atelier:       "ateliers",
		Employee:      "users",
		ClientProduct: "prodotticlientes",
	}, cols.Collections())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_COLLECTION_STOCK", "giacenze")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_DOMAINS", "https://crm.example.it, ,https://app.valoresposi.it")
	t.Setenv("CORS_STRICT", "true")

	srv, err := NewHTTPServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8081, srv.Port())

	m, err := NewMongoConfig()
	require.NoError(t, err)
	assert.True(t, m.Configured())

	cols, err := NewCollectionsConfig()
	require.NoError(t, err)
	assert.Equal(t, "giacenze", cols.Collections().Stock)

	a, err := NewAppConfig()
	require.NoError(t, err)
	assert.False(t, a.ExposeErrors())

	c, err := NewCORSConfig()
	require.NoError(t, err)
	assert.True(t, c.Strict())
	assert.Contains(t, c.AllowedOrigins(), "https://crm.example.it")
	assert.Len(t, c.AllowedOrigins(), len(defaultOrigins)+1)
}

func TestInvalidValue(t *testing.T) {
	t.Setenv("DB_READ_TIMEOUT", "soon")

	_, err := NewHTTPServerConfig()
	require.Error(t, err)
}
