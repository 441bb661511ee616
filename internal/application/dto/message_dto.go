package dto

import "time"

// SendMessageRequest body para POST /api/messages.
// El CEO puede hacer broadcast a un rol (recipient_role); cualquier otro rol
// solo envía mensajes directos al CEO (recipient_id se resuelve en el use case).
type SendMessageRequest struct {
	RecipientRole string `json:"recipient_role" validate:"omitempty,oneof=ceo admin storekeeper seller purchaser driver"`
	RecipientID   string `json:"recipient_id" validate:"omitempty,uuid"`
	Subject       string `json:"subject" validate:"required,min=1,max=150"`
	Body          string `json:"body" validate:"required,min=1,max=2000"`
}

// MessageResponse salida de un mensaje.
type MessageResponse struct {
	ID            string     `json:"id"`
	SenderID      string     `json:"sender_id"`
	SenderName    string     `json:"sender_name,omitempty"`
	RecipientRole string     `json:"recipient_role,omitempty"`
	RecipientID   string     `json:"recipient_id,omitempty"`
	Subject       string     `json:"subject"`
	Body          string     `json:"body"`
	Read          bool       `json:"read"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
