package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct{ db db.DB }

func NewRepoPG(conn db.DB) Repository { return &repoPG{db: conn} }

func (r *repoPG) Schedule(ctx context.Context, a *Appointment) error {
	at, err := ParseClock(a.Time)
	if err != nil {
		return db.OperationFailed("schedule appointment", err)
	}

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO clinical_activity (caid, iid, staff_id, dep_id, date, time)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			a.CAID, a.IID, a.StaffID, a.DepID, a.Date, at); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO appointment (caid, reason, status)
			VALUES ($1,$2,$3)`,
			a.CAID, a.Reason, a.Status)
		return err
	})
	return db.OperationFailed("schedule appointment", err)
}

// ParseClock converts HH:MM or HH:MM:SS into a postgres TIME value.
func ParseClock(s string) (pgtype.Time, error) {
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			us := int64(t.Hour())*int64(time.Hour/time.Microsecond) +
				int64(t.Minute())*int64(time.Minute/time.Microsecond) +
				int64(t.Second())*int64(time.Second/time.Microsecond)
			return pgtype.Time{Microseconds: us, Valid: true}, nil
		}
	}
	return pgtype.Time{}, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s)
}
