package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fruit-track/internal/application/dto"
	"github.com/tu-usuario/fruit-track/internal/domain"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// MessageUseCase gestiona la mensajería interna.
// Política de envío: el CEO puede hacer broadcast a un rol o enviar directo a
// un usuario; cualquier otro rol solo puede escribirle al rol ceo.
type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageUseCase {
	return &MessageUseCase{messageRepo: messageRepo, userRepo: userRepo}
}

// Send crea un mensaje aplicando la política por rol del remitente.
func (uc *MessageUseCase) Send(senderID, senderRole string, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	m := &entity.Message{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: time.Now(),
	}

	if senderRole == entity.RoleCEO {
		// El CEO elige destino: rol o usuario concreto, exactamente uno.
		switch {
		case in.RecipientID != "" && in.RecipientRole == "":
			recipient, err := uc.userRepo.GetByID(in.RecipientID)
			if err != nil {
				return nil, err
			}
			if recipient == nil {
				return nil, domain.ErrUserNotFound
			}
			m.RecipientID = recipient.ID
		case in.RecipientRole != "" && in.RecipientID == "":
			if !entity.IsValidRole(in.RecipientRole) {
				return nil, domain.ErrInvalidRole
			}
			m.RecipientRole = in.RecipientRole
		default:
			return nil, domain.ErrInvalidInput
		}
	} else {
		// El resto del personal solo reporta hacia arriba.
		m.RecipientRole = entity.RoleCEO
	}

	if err := uc.messageRepo.Create(m); err != nil {
		return nil, err
	}
	return uc.toResponse(m), nil
}

// Inbox devuelve los mensajes visibles para el caller: el CEO ve todos, el
// resto solo los dirigidos a él o a su rol.
func (uc *MessageUseCase) Inbox(callerID, callerRole string, page dto.PageRequest) ([]dto.MessageResponse, error) {
	page.DefaultPage()
	var (
		rows []*entity.Message
		err  error
	)
	if callerRole == entity.RoleCEO {
		rows, err = uc.messageRepo.List(page.Limit, page.Offset)
	} else {
		rows, err = uc.messageRepo.ListForRecipient(callerID, callerRole, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	out := make([]dto.MessageResponse, 0, len(rows))
	for _, m := range rows {
		resp := uc.toResponse(m)
		if name, ok := names[m.SenderID]; ok {
			resp.SenderName = name
		} else if u, err := uc.userRepo.GetByID(m.SenderID); err == nil && u != nil {
			names[m.SenderID] = u.Name
			resp.SenderName = u.Name
		}
		out = append(out, *resp)
	}
	return out, nil
}

// MarkRead marca un mensaje como leído. Solo un destinatario válido (o el CEO)
// puede hacerlo; repetir la operación sobre un mensaje ya leído no cambia nada
// y conserva el read_at original.
func (uc *MessageUseCase) MarkRead(id, callerID, callerRole string) (*dto.MessageResponse, error) {
	m, err := uc.messageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !m.CanBeReadBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	if !m.Read {
		now := time.Now()
		if err := uc.messageRepo.MarkRead(m.ID, now); err != nil {
			return nil, err
		}
		m.Read = true
		m.ReadAt = &now
	}
	return uc.toResponse(m), nil
}

func (uc *MessageUseCase) toResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:            m.ID,
		SenderID:      m.SenderID,
		RecipientRole: m.RecipientRole,
		RecipientID:   m.RecipientID,
		Subject:       m.Subject,
		Body:          m.Body,
		Read:          m.Read,
		ReadAt:        m.ReadAt,
		CreatedAt:     m.CreatedAt,
	}
}
