package inventory

import (
	"context"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct{ db db.Querier }

func NewRepoPG(conn db.Querier) Repository { return &repoPG{db: conn} }

func (r *repoPG) LowStock(ctx context.Context) ([]StockItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.hid, h.name, m.mid, m.name,
			COALESCE(s.qty, 0), COALESCE(s.reorder_level, 10)
		FROM medication m
		LEFT JOIN stock s ON s.mid = m.mid
		JOIN hospital h ON h.hid = s.hid
		WHERE COALESCE(s.qty, 0) < COALESCE(s.reorder_level, 10)
		ORDER BY h.hid, m.name`)
	if err != nil {
		return nil, db.OperationFailed("low stock", err)
	}
	defer rows.Close()

	var out []StockItem
	for rows.Next() {
		var it StockItem
		if err := rows.Scan(&it.HID, &it.HospitalName, &it.MID, &it.MedicationName,
			&it.Quantity, &it.ReorderLevel); err != nil {
			return nil, db.OperationFailed("low stock", err)
		}
		out = append(out, it)
	}
	return out, db.OperationFailed("low stock", rows.Err())
}

func (r *repoPG) CriticalStock(ctx context.Context, limit int) ([]StockItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.hid, h.name, m.mid, m.name, s.qty, s.reorder_level,
			s.reorder_level - s.qty AS shortfall
		FROM stock s
		JOIN medication m ON m.mid = s.mid
		JOIN hospital h ON h.hid = s.hid
		WHERE s.qty < s.reorder_level
		ORDER BY shortfall DESC, h.hid, m.name
		LIMIT $1`, limit)
	if err != nil {
		return nil, db.OperationFailed("critical stock", err)
	}
	defer rows.Close()

	var out []StockItem
	for rows.Next() {
		var it StockItem
		if err := rows.Scan(&it.HID, &it.HospitalName, &it.MID, &it.MedicationName,
			&it.Quantity, &it.ReorderLevel, &it.Shortfall); err != nil {
			return nil, db.OperationFailed("critical stock", err)
		}
		out = append(out, it)
	}
	return out, db.OperationFailed("critical stock", rows.Err())
}

func (r *repoPG) StockStatus(ctx context.Context) (StockStatus, error) {
	var st StockStatus
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE qty * 2 < r),
			COUNT(*) FILTER (WHERE qty * 2 >= r AND qty < r),
			COUNT(*) FILTER (WHERE qty >= r AND qty < r * 2),
			COUNT(*) FILTER (WHERE qty >= r * 2)
		FROM (SELECT qty, COALESCE(reorder_level, 10) AS r FROM stock) s`).
		Scan(&st.Critical, &st.Low, &st.Normal, &st.High)
	if err != nil {
		return StockStatus{}, db.OperationFailed("stock status", err)
	}
	return st, nil
}
