package dashboard

import (
	"context"
	"time"

	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct{ db db.Querier }

func NewRepoPG(conn db.Querier) Repository { return &repoPG{db: conn} }

func (r *repoPG) count(ctx context.Context, op, sql string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, sql).Scan(&n); err != nil {
		return 0, db.OperationFailed(op, err)
	}
	return n, nil
}

func (r *repoPG) CountPatients(ctx context.Context) (int, error) {
	return r.count(ctx, "count patients", `SELECT COUNT(*) FROM patient`)
}

func (r *repoPG) CountStaff(ctx context.Context) (int, error) {
	return r.count(ctx, "count staff", `SELECT COUNT(*) FROM staff`)
}

func (r *repoPG) CountAppointments(ctx context.Context) (int, error) {
	return r.count(ctx, "count appointments", `SELECT COUNT(*) FROM appointment`)
}

func (r *repoPG) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, "count low stock", `SELECT COUNT(*) FROM stock WHERE qty < reorder_level`)
}

func (r *repoPG) RecentPatients(ctx context.Context, limit int) ([]patient.Summary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT iid, full_name, sex, phone
		FROM patient
		ORDER BY iid DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, db.OperationFailed("recent patients", err)
	}
	defer rows.Close()

	var out []patient.Summary
	for rows.Next() {
		var p patient.Summary
		if err := rows.Scan(&p.IID, &p.FullName, &p.Sex, &p.Phone); err != nil {
			return nil, db.OperationFailed("recent patients", err)
		}
		out = append(out, p)
	}
	return out, db.OperationFailed("recent patients", rows.Err())
}

func (r *repoPG) UpcomingAppointments(ctx context.Context, from *time.Time, limit int) ([]Upcoming, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.caid, p.full_name, s.full_name,
			to_char(c.date, 'YYYY-MM-DD'), to_char(c.time, 'HH24:MI'),
			a.reason, a.status
		FROM appointment a
		JOIN clinical_activity c ON c.caid = a.caid
		JOIN patient p ON p.iid = c.iid
		JOIN staff s ON s.staff_id = c.staff_id
		WHERE $1::date IS NULL OR c.date >= $1::date
		ORDER BY c.date, c.time, a.caid
		LIMIT $2`, from, limit)
	if err != nil {
		return nil, db.OperationFailed("upcoming appointments", err)
	}
	defer rows.Close()

	var out []Upcoming
	for rows.Next() {
		var u Upcoming
		if err := rows.Scan(&u.CAID, &u.PatientName, &u.StaffName, &u.Date, &u.Time,
			&u.Reason, &u.Status); err != nil {
			return nil, db.OperationFailed("upcoming appointments", err)
		}
		out = append(out, u)
	}
	return out, db.OperationFailed("upcoming appointments", rows.Err())
}

func (r *repoPG) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT sex, COUNT(*)
		FROM patient
		GROUP BY sex
		ORDER BY sex`)
	if err != nil {
		return nil, db.OperationFailed("gender distribution", err)
	}
	defer rows.Close()

	var out []GenderCount
	for rows.Next() {
		var g GenderCount
		if err := rows.Scan(&g.Sex, &g.Count); err != nil {
			return nil, db.OperationFailed("gender distribution", err)
		}
		out = append(out, g)
	}
	return out, db.OperationFailed("gender distribution", rows.Err())
}

func (r *repoPG) AppointmentsByMonth(ctx context.Context, months int) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		WITH window_months AS (
			SELECT generate_series(
				date_trunc('month', CURRENT_DATE::timestamp) - ($1::int - 1) * INTERVAL '1 month',
				date_trunc('month', CURRENT_DATE::timestamp),
				INTERVAL '1 month') AS month
		)
		SELECT to_char(w.month, 'YYYY-MM'), COUNT(a.caid)
		FROM window_months w
		LEFT JOIN clinical_activity c ON date_trunc('month', c.date::timestamp) = w.month
		LEFT JOIN appointment a ON a.caid = c.caid
		GROUP BY w.month
		ORDER BY w.month`, months)
	if err != nil {
		return nil, db.OperationFailed("appointments by month", err)
	}
	defer rows.Close()

	var out []MonthCount
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, db.OperationFailed("appointments by month", err)
		}
		out = append(out, m)
	}
	return out, db.OperationFailed("appointments by month", rows.Err())
}
