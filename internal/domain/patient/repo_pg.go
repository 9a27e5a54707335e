package patient

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct{ db db.DB }

func NewRepoPG(conn db.DB) Repository { return &repoPG{db: conn} }

const summaryCols = `iid, full_name, sex, phone`

func scanSummary(row pgx.Row) (Summary, error) {
	var s Summary
	err := row.Scan(&s.IID, &s.FullName, &s.Sex, &s.Phone)
	return s, err
}

func (r *repoPG) ListOrderedByLastName(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+summaryCols+`
		FROM patient
		ORDER BY regexp_replace(full_name, '^.* ', ''), full_name
		LIMIT $1`, limit)
	if err != nil {
		return nil, db.OperationFailed("list patients", err)
	}
	defer rows.Close()

	out := make([]Summary, 0, limit)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, db.OperationFailed("list patients", err)
		}
		out = append(out, s)
	}
	return out, db.OperationFailed("list patients", rows.Err())
}

func (r *repoPG) Insert(ctx context.Context, p *Patient) error {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO patient (iid, cin, full_name, birth, sex, blood_group, phone)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			p.IID, p.CIN, p.FullName, p.Birth, p.Sex, p.BloodGroup, p.Phone)
		return err
	})
	return db.InsertionFailed("insert patient", err)
}
