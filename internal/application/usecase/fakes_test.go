package usecase_test

import (
	"time"

	"github.com/tu-usuario/fruit-track/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Deactivate(id string) error {
	if u, ok := r.users[id]; ok {
		u.IsActive = false
	}
	return nil
}

type fakeMessageRepo struct {
	messages map[string]*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[string]*entity.Message{}}
}

func (r *fakeMessageRepo) Create(m *entity.Message) error { r.messages[m.ID] = m; return nil }

func (r *fakeMessageRepo) GetByID(id string) (*entity.Message, error) { return r.messages[id], nil }

func (r *fakeMessageRepo) List(int, int) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) ListForRecipient(userID, role string, _, _ int) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		if (m.RecipientID != "" && m.RecipientID == userID) || (m.RecipientRole != "" && m.RecipientRole == role) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(id string, readAt time.Time) error {
	if m, ok := r.messages[id]; ok && !m.Read {
		m.Read = true
		m.ReadAt = &readAt
	}
	return nil
}

type fakeSalaryRepo struct {
	salaries map[string]*entity.Salary
	payments map[string]*entity.SalaryPayment
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		salaries: map[string]*entity.Salary{},
		payments: map[string]*entity.SalaryPayment{},
	}
}

func (r *fakeSalaryRepo) Create(s *entity.Salary) error { r.salaries[s.ID] = s; return nil }

func (r *fakeSalaryRepo) GetByID(id string) (*entity.Salary, error) { return r.salaries[id], nil }

func (r *fakeSalaryRepo) List(int, int) ([]*entity.Salary, error) {
	var out []*entity.Salary
	for _, s := range r.salaries {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSalaryRepo) CreatePayment(p *entity.SalaryPayment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakeSalaryRepo) GetPaymentByID(id string) (*entity.SalaryPayment, error) {
	return r.payments[id], nil
}

func (r *fakeSalaryRepo) ListPayments(int, int) ([]*entity.SalaryPayment, error) {
	var out []*entity.SalaryPayment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeSalaryRepo) UpdatePaymentStatus(id, status string) error {
	if p, ok := r.payments[id]; ok {
		p.Status = status
	}
	return nil
}
