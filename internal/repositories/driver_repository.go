package repositories

import (
	"database/sql"
	"errors"

	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/domain"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DriverRepository) List() ([]domain.Driver, error) {
	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(address,''), phone, status
		FROM drivers
		ORDER BY name ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data driver", Err: err}
	}
	defer rows.Close()

	list := []domain.Driver{}
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.Status); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan data driver", Err: err}
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

func (r DriverRepository) GetByID(id int64) (domain.Driver, error) {
	if id <= 0 {
		return domain.Driver{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	var d domain.Driver
	err := r.db().QueryRow(`
		SELECT id, name, COALESCE(address,''), phone, status
		FROM drivers WHERE id=? LIMIT 1`, id).
		Scan(&d.ID, &d.Name, &d.Address, &d.Phone, &d.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Driver{}, domain.NotFoundError{Resource: "driver"}
		}
		return domain.Driver{}, domain.InternalError{Msg: "gagal query driver", Err: err}
	}
	return d, nil
}

func (r DriverRepository) Create(d domain.Driver) (int64, error) {
	status := d.Status
	if status == "" {
		status = domain.DriverAvailable
	}
	res, err := r.db().Exec(`
		INSERT INTO drivers (name, address, phone, status)
		VALUES (?, ?, ?, ?)`,
		d.Name, nullIfEmpty(d.Address), d.Phone, status)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "driver", Msg: "nomor telepon sudah terdaftar"}
		}
		return 0, domain.InternalError{Msg: "gagal menambah driver", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r DriverRepository) Update(id int64, d domain.Driver) error {
	res, err := r.db().Exec(`
		UPDATE drivers SET name=?, address=?, phone=? WHERE id=?`,
		d.Name, nullIfEmpty(d.Address), d.Phone, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal update driver", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

// UpdateStatus flips availability. Dipanggil hanya oleh order service saat
// assignment / penyelesaian pesanan.
func (r DriverRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE drivers SET status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal update status driver", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal hapus driver", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
