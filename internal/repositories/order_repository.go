package repositories

import (
	"database/sql"
	"errors"

	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/domain"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const orderColumns = `
	o.id,
	o.order_code,
	o.vehicle_id,
	o.vehicle_name,
	o.vehicle_type,
	o.transmission,
	o.service,
	o.customer_name,
	o.customer_phone,
	o.payment_method,
	COALESCE(o.payment_proof,''),
	o.driver_id,
	COALESCE(d.name,''),
	o.status,
	o.days,
	COALESCE(o.start_date,''),
	COALESCE(o.end_date,''),
	o.base_cost,
	o.matic_fee,
	o.driver_fee,
	o.discount_amount,
	o.total,
	DATE_FORMAT(o.created_at, '%Y-%m-%d %H:%i:%s')
`

const orderFrom = ` FROM orders o LEFT JOIN drivers d ON d.id = o.driver_id `

func scanOrder(row interface{ Scan(...any) error }) (domain.Order, error) {
	var (
		o        domain.Order
		driverID sql.NullInt64
	)
	err := row.Scan(
		&o.ID,
		&o.OrderCode,
		&o.VehicleID,
		&o.VehicleName,
		&o.VehicleType,
		&o.Transmission,
		&o.Service,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.PaymentMethod,
		&o.PaymentProof,
		&driverID,
		&o.DriverName,
		&o.Status,
		&o.Days,
		&o.StartDate,
		&o.EndDate,
		&o.BaseCost,
		&o.MaticFee,
		&o.DriverFee,
		&o.DiscountAmount,
		&o.Total,
		&o.CreatedAt,
	)
	if driverID.Valid {
		id := driverID.Int64
		o.DriverID = &id
	}
	return o, err
}

// List returns orders, newest first, optionally filtered by status.
func (r OrderRepository) List(status string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom
	args := []any{}
	if status != "" {
		query += ` WHERE o.status=?`
		args = append(args, status)
	}
	query += ` ORDER BY o.id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data order", Err: err}
	}
	defer rows.Close()

	list := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "gagal scan data order", Err: err}
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

// ListByPeriod returns orders created within a month (1-12) of a year.
func (r OrderRepository) ListByPeriod(year, month int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + `
		WHERE YEAR(o.created_at)=? AND MONTH(o.created_at)=?
		ORDER BY o.id DESC`

	rows, err := r.db().Query(query, year, month)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data order", Err: err}
	}
	defer rows.Close()

	list := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "gagal scan data order", Err: err}
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

func (r OrderRepository) GetByID(id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	row := r.db().QueryRow(`SELECT `+orderColumns+orderFrom+` WHERE o.id=? LIMIT 1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.NotFoundError{Resource: "order"}
		}
		return domain.Order{}, domain.InternalError{Msg: "gagal query order", Err: err}
	}
	return o, nil
}

func (r OrderRepository) GetByCode(code string) (domain.Order, error) {
	if code == "" {
		return domain.Order{}, domain.ValidationError{Field: "orderCode", Msg: "kode order wajib diisi"}
	}
	row := r.db().QueryRow(`SELECT `+orderColumns+orderFrom+` WHERE o.order_code=? LIMIT 1`, code)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.NotFoundError{Resource: "order"}
		}
		return domain.Order{}, domain.InternalError{Msg: "gagal query order", Err: err}
	}
	return o, nil
}

// Create persists the order together with its quote snapshot.
func (r OrderRepository) Create(o domain.Order) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO orders
			(order_code, vehicle_id, vehicle_name, vehicle_type, transmission, service,
			 customer_name, customer_phone, payment_method, payment_proof,
			 status, days, start_date, end_date,
			 base_cost, matic_fee, driver_fee, discount_amount, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		o.OrderCode, o.VehicleID, o.VehicleName, o.VehicleType, o.Transmission, o.Service,
		o.CustomerName, o.CustomerPhone, o.PaymentMethod, nullIfEmpty(o.PaymentProof),
		o.Status, o.Days, nullIfEmpty(o.StartDate), nullIfEmpty(o.EndDate),
		o.BaseCost, o.MaticFee, o.DriverFee, o.DiscountAmount, o.Total,
	)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "order", Msg: "kode order sudah terpakai"}
		}
		return 0, domain.InternalError{Msg: "gagal menyimpan order", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r OrderRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE orders SET status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal update status order", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "order"}
	}
	return nil
}

func (r OrderRepository) AssignDriver(id, driverID int64) error {
	res, err := r.db().Exec(`UPDATE orders SET driver_id=? WHERE id=?`, driverID, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal menugaskan driver", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "order"}
	}
	return nil
}
