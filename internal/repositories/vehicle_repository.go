package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `
	id,
	vehicle_code,
	name,
	brand,
	type,
	passengers,
	transmission,
	COALESCE(fuel,''),
	year,
	price_per_day,
	rating,
	COALESCE(discount_percentage,0),
	COALESCE(photo_url,'')
`

func scanVehicle(row interface{ Scan(...any) error }) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.Name,
		&v.Brand,
		&v.Type,
		&v.Passengers,
		&v.Transmission,
		&v.Fuel,
		&v.Year,
		&v.PricePerDay,
		&v.Rating,
		&v.DiscountPercentage,
		&v.PhotoURL,
	)
	return v, err
}

// List returns vehicles, newest first. q matches name or brand; limit<=0
// returns everything (dipakai katalog publik yang filter di memori).
func (r VehicleRepository) List(q string, page, limit int) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	args := []any{}

	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE (name LIKE ? OR brand LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like)
	}

	query += ` ORDER BY id DESC`

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		if limit > 200 {
			limit = 200
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data kendaraan", Err: err}
	}
	defer rows.Close()

	list := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "gagal scan data kendaraan", Err: err}
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

func (r VehicleRepository) GetByID(id int64) (domain.Vehicle, error) {
	if id <= 0 {
		return domain.Vehicle{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	row := r.db().QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id=? LIMIT 1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Vehicle{}, domain.NotFoundError{Resource: "kendaraan"}
		}
		return domain.Vehicle{}, domain.InternalError{Msg: "gagal query kendaraan", Err: err}
	}
	return v, nil
}

func (r VehicleRepository) Create(v domain.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles
			(vehicle_code, name, brand, type, passengers, transmission, fuel, year, price_per_day, rating, discount_percentage, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, v.Code, v.Name, v.Brand, v.Type, v.Passengers, v.Transmission, nullIfEmpty(v.Fuel), v.Year, v.PricePerDay, v.Rating, v.DiscountPercentage, nullIfEmpty(v.PhotoURL))
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "kendaraan", Msg: "kode kendaraan sudah terdaftar"}
		}
		return 0, domain.InternalError{Msg: "gagal menambah kendaraan", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r VehicleRepository) Update(id int64, v domain.Vehicle) error {
	res, err := r.db().Exec(`
		UPDATE vehicles
		SET vehicle_code=?, name=?, brand=?, type=?, passengers=?, transmission=?, fuel=?, year=?, price_per_day=?, rating=?, discount_percentage=?, photo_url=?
		WHERE id=?
	`, v.Code, v.Name, v.Brand, v.Type, v.Passengers, v.Transmission, nullIfEmpty(v.Fuel), v.Year, v.PricePerDay, v.Rating, v.DiscountPercentage, nullIfEmpty(v.PhotoURL), id)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "kendaraan", Msg: "kode kendaraan sudah terdaftar"}
		}
		return domain.InternalError{Msg: "gagal update kendaraan", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kendaraan"}
	}
	return nil
}

func (r VehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal hapus kendaraan", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kendaraan"}
	}
	return nil
}

func nullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
