package staff

import (
	"context"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct{ db db.Querier }

func NewRepoPG(conn db.Querier) Repository { return &repoPG{db: conn} }

// Hospitals without appointments produce no staff_hosp rows and therefore
// never reach the division.
const shareSQL = `
	WITH staff_hosp AS (
		SELECT c.staff_id, d.hid, COUNT(*) AS n
		FROM appointment a
		JOIN clinical_activity c ON c.caid = a.caid
		JOIN department d ON d.dep_id = c.dep_id
		GROUP BY c.staff_id, d.hid
	), hosp_tot AS (
		SELECT hid, SUM(n) AS n
		FROM staff_hosp
		GROUP BY hid
	)
	SELECT st.staff_id, st.full_name, h.hid, h.name, sh.n,
		ROUND(100.0 * sh.n / ht.n, 2)::float8 AS pct
	FROM staff_hosp sh
	JOIN hosp_tot ht ON ht.hid = sh.hid
	JOIN staff st ON st.staff_id = sh.staff_id
	JOIN hospital h ON h.hid = sh.hid
	ORDER BY pct DESC, st.full_name, h.name
	LIMIT $1`

func (r *repoPG) Share(ctx context.Context, limit *int) ([]Share, error) {
	rows, err := r.db.Query(ctx, shareSQL, limit)
	if err != nil {
		return nil, db.OperationFailed("staff share", err)
	}
	defer rows.Close()

	var out []Share
	for rows.Next() {
		var s Share
		if err := rows.Scan(&s.StaffID, &s.FullName, &s.HID, &s.HospitalName,
			&s.TotalAppointments, &s.PctOfHospital); err != nil {
			return nil, db.OperationFailed("staff share", err)
		}
		out = append(out, s)
	}
	return out, db.OperationFailed("staff share", rows.Err())
}

func (r *repoPG) Distribution(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.dep_id, COALESCE(d.name, 'Department ' || d.dep_id), COUNT(*) AS n
		FROM staff s
		JOIN department d ON d.dep_id = s.dep_id
		GROUP BY d.dep_id, d.name
		ORDER BY n DESC, d.dep_id`)
	if err != nil {
		return nil, db.OperationFailed("staff distribution", err)
	}
	defer rows.Close()

	var out []DepartmentCount
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.DepID, &dc.Department, &dc.Count); err != nil {
			return nil, db.OperationFailed("staff distribution", err)
		}
		out = append(out, dc)
	}
	return out, db.OperationFailed("staff distribution", rows.Err())
}
