package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruit-track/internal/domain"
)

// captureLog redirige el logger global de zerolog a un buffer durante el test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

// Un error no mapeado (p. ej. la base caída) responde 500 genérico al cliente
// pero deja el detalle completo en el log del servidor.
func TestRespondError_ErrorInternoSeLoggeaSinFiltrarDetalle(t *testing.T) {
	buf := captureLog(t)

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, errors.New("pgx: conexión perdida con la base"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "error interno")
	assert.NotContains(t, string(body), "pgx", "el detalle no se filtra al cliente")

	assert.Contains(t, buf.String(), "pgx: conexión perdida con la base",
		"el error subyacente debe quedar en el log del servidor")
	assert.Contains(t, buf.String(), "/boom", "el log incluye la ruta que falló")
}

// Los errores de dominio mapeados a 4xx viajan al cliente y no ensucian el log.
func TestRespondError_ErroresDeDominioNoSeLoggean(t *testing.T) {
	buf := captureLog(t)

	app := fiber.New()
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return respondError(c, domain.ErrNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notfound", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, buf.String())
}
