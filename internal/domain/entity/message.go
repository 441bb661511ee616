package entity

import "time"

// Message es un mensaje interno. Se dirige a un rol completo (broadcast del CEO)
// o a un usuario concreto; exactamente uno de RecipientRole/RecipientID está definido.
// El estado de lectura solo lo muta un destinatario válido (o el CEO) y marcar
// como leído es idempotente.
type Message struct {
	ID            string
	SenderID      string
	RecipientRole string // vacío si es mensaje directo
	RecipientID   string // vacío si es broadcast a rol
	Subject       string
	Body          string
	Read          bool
	ReadAt        *time.Time
	CreatedAt     time.Time
}

// IsBroadcast indica si el mensaje va dirigido a un rol completo.
func (m Message) IsBroadcast() bool {
	return m.RecipientRole != ""
}

// CanBeReadBy decide si el usuario (id + rol) puede leer/marcar este mensaje.
// El CEO siempre puede; el resto solo si es el destinatario directo o miembro
// del rol destinatario.
func (m Message) CanBeReadBy(userID, role string) bool {
	if role == RoleCEO {
		return true
	}
	if m.RecipientID != "" {
		return m.RecipientID == userID
	}
	return m.RecipientRole == role
}
