package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación de mensajes internos sobre PostgreSQL.
type MessageRepo struct {
	pool *pgxpool.Pool
}

// NewMessageRepository construye el adaptador.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Create persiste un mensaje. recipient_role y recipient_id son excluyentes.
func (r *MessageRepo) Create(m *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, recipient_role, recipient_id, subject, body, read, read_at, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.SenderID, m.RecipientRole, m.RecipientID, m.Subject, m.Body, m.Read, m.ReadAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje por ID.
func (r *MessageRepo) GetByID(id string) (*entity.Message, error) {
	query := `
		SELECT id, sender_id, COALESCE(recipient_role, ''), COALESCE(recipient_id, ''), subject, body, read, read_at, created_at
		FROM messages WHERE id = $1`
	var m entity.Message
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.SenderID, &m.RecipientRole, &m.RecipientID, &m.Subject, &m.Body, &m.Read, &m.ReadAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &m, nil
}

// List lista todos los mensajes (vista del CEO).
func (r *MessageRepo) List(limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, sender_id, COALESCE(recipient_role, ''), COALESCE(recipient_id, ''), subject, body, read, read_at, created_at
		FROM messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListForRecipient lista los mensajes dirigidos al usuario o a su rol.
func (r *MessageRepo) ListForRecipient(userID, role string, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, sender_id, COALESCE(recipient_role, ''), COALESCE(recipient_id, ''), subject, body, read, read_at, created_at
		FROM messages WHERE recipient_id = $1 OR recipient_role = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, userID, role, limit, offset)
}

// MarkRead marca el mensaje como leído conservando el primer read_at.
func (r *MessageRepo) MarkRead(id string, readAt time.Time) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE messages SET read = true, read_at = COALESCE(read_at, $2) WHERE id = $1`, id, readAt)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

func (r *MessageRepo) list(query string, args ...any) ([]*entity.Message, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientRole, &m.RecipientID, &m.Subject, &m.Body, &m.Read, &m.ReadAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
