package db

import (
	"github.com/zee00111/islamic-project/internal/model"
)

func (s *pgStore) CreateStatusCheck(id, clientName string) (*model.StatusCheck, error) {
	var check model.StatusCheck
	err := s.db.Get(&check, `
		INSERT INTO status_checks (id, client_name)
		VALUES ($1, $2)
		RETURNING id, client_name, created_at`,
		id, clientName)
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *pgStore) ListStatusChecks(limit int) ([]model.StatusCheck, error) {
	checks := []model.StatusCheck{}
	err := s.db.Select(&checks, `
		SELECT id, client_name, created_at
		FROM status_checks
		ORDER BY created_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	return checks, nil
}
