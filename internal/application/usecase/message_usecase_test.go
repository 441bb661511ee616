package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

const (
	msgCEOID    = "00000000-0000-0000-0000-000000000001"
	msgDriverID = "00000000-0000-0000-0000-000000000002"
	msgSellerID = "00000000-0000-0000-0000-000000000003"
)

func buildMessageUseCase() (*usecase.MessageUseCase, *fakeMessageRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: msgCEOID, Name: "Jefe", Role: entity.RoleCEO, IsActive: true},
		&entity.User{ID: msgDriverID, Name: "Conductor", Role: entity.RoleDriver, IsActive: true},
		&entity.User{ID: msgSellerID, Name: "Vendedor", Role: entity.RoleSeller, IsActive: true},
	)
	repo := newFakeMessageRepo()
	return usecase.NewMessageUseCase(repo, users), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Send
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_PersonalSoloReportaAlCEO(t *testing.T) {
	uc, _ := buildMessageUseCase()

	// Aunque el driver intente dirigirse a otro rol, el destino se fuerza a ceo.
	resp, err := uc.Send(msgDriverID, entity.RoleDriver, dto.SendMessageRequest{
		RecipientRole: entity.RoleSeller,
		Subject:       "Llanta pinchada",
		Body:          "Necesito repuesto en la ruta 4",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCEO, resp.RecipientRole)
	assert.Empty(t, resp.RecipientID)
	assert.False(t, resp.Read, "los mensajes nacen sin leer")
}

func TestSend_CEOBroadcastARol(t *testing.T) {
	uc, _ := buildMessageUseCase()

	resp, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientRole: entity.RoleSeller,
		Subject:       "Precios de hoy",
		Body:          "Mango a 2.50 el kilo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, resp.RecipientRole)
}

func TestSend_CEODirectoAUsuario(t *testing.T) {
	uc, _ := buildMessageUseCase()

	resp, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientID: msgDriverID,
		Subject:     "Cambio de ruta",
		Body:        "Mañana sales por el mercado norte",
	})
	require.NoError(t, err)
	assert.Equal(t, msgDriverID, resp.RecipientID)
	assert.Empty(t, resp.RecipientRole)
}

func TestSend_CEODestinoAmbiguoOVacio(t *testing.T) {
	uc, _ := buildMessageUseCase()

	// Ambos destinos a la vez
	_, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientRole: entity.RoleDriver,
		RecipientID:   msgDriverID,
		Subject:       "s",
		Body:          "b",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "exactamente un destino")

	// Ninguno
	_, err = uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSend_CEODestinatarioInexistente(t *testing.T) {
	uc, _ := buildMessageUseCase()

	_, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientID: "00000000-0000-0000-0000-00000000dead",
		Subject:     "s",
		Body:        "b",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Inbox
// ──────────────────────────────────────────────────────────────────────────────

func TestInbox_ScopingPorDestinatario(t *testing.T) {
	uc, _ := buildMessageUseCase()

	_, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientRole: entity.RoleDriver, Subject: "a conductores", Body: "b",
	})
	require.NoError(t, err)
	_, err = uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientID: msgSellerID, Subject: "directo a vendedor", Body: "b",
	})
	require.NoError(t, err)
	_, err = uc.Send(msgDriverID, entity.RoleDriver, dto.SendMessageRequest{
		Subject: "reporte al jefe", Body: "b",
	})
	require.NoError(t, err)

	driverInbox, err := uc.Inbox(msgDriverID, entity.RoleDriver, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, driverInbox, 1, "el driver solo ve el broadcast a su rol")
	assert.Equal(t, "a conductores", driverInbox[0].Subject)
	assert.Equal(t, "Jefe", driverInbox[0].SenderName, "el nombre del remitente se resuelve")

	sellerInbox, err := uc.Inbox(msgSellerID, entity.RoleSeller, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, sellerInbox, 1)
	assert.Equal(t, "directo a vendedor", sellerInbox[0].Subject)

	ceoInbox, err := uc.Inbox(msgCEOID, entity.RoleCEO, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, ceoInbox, 3, "el CEO ve todos los mensajes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkRead
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkRead_IdempotenteConservaReadAt(t *testing.T) {
	uc, repo := buildMessageUseCase()
	sent, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientID: msgDriverID, Subject: "s", Body: "b",
	})
	require.NoError(t, err)

	first, err := uc.MarkRead(sent.ID, msgDriverID, entity.RoleDriver)
	require.NoError(t, err)
	assert.True(t, first.Read)
	require.NotNil(t, first.ReadAt)
	firstReadAt := *first.ReadAt

	time.Sleep(5 * time.Millisecond)

	second, err := uc.MarkRead(sent.ID, msgDriverID, entity.RoleDriver)
	require.NoError(t, err)
	assert.True(t, second.Read)
	require.NotNil(t, second.ReadAt)
	assert.Equal(t, firstReadAt, *second.ReadAt,
		"repetir la marca no cambia el read_at original")
	assert.Equal(t, firstReadAt, *repo.messages[sent.ID].ReadAt)
}

func TestMarkRead_SoloDestinatarioValido(t *testing.T) {
	uc, _ := buildMessageUseCase()
	sent, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientID: msgDriverID, Subject: "s", Body: "b",
	})
	require.NoError(t, err)

	_, err = uc.MarkRead(sent.ID, msgSellerID, entity.RoleSeller)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un usuario ajeno al mensaje no puede marcarlo")

	// El CEO siempre puede
	_, err = uc.MarkRead(sent.ID, msgCEOID, entity.RoleCEO)
	assert.NoError(t, err)
}

func TestMarkRead_BroadcastLoMarcaUnMiembroDelRol(t *testing.T) {
	uc, _ := buildMessageUseCase()
	sent, err := uc.Send(msgCEOID, entity.RoleCEO, dto.SendMessageRequest{
		RecipientRole: entity.RoleDriver, Subject: "s", Body: "b",
	})
	require.NoError(t, err)

	resp, err := uc.MarkRead(sent.ID, msgDriverID, entity.RoleDriver)
	require.NoError(t, err)
	assert.True(t, resp.Read)
}

func TestMarkRead_MensajeInexistente(t *testing.T) {
	uc, _ := buildMessageUseCase()

	_, err := uc.MarkRead("no-existe", msgCEOID, entity.RoleCEO)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
