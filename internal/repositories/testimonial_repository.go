package repositories

import (
	"database/sql"

	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/domain"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func (r TestimonialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TestimonialRepository) List() ([]domain.Testimonial, error) {
	rows, err := r.db().Query(`
		SELECT id, customer_name, vehicle_name, rating, comment
		FROM testimonials
		ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil testimoni", Err: err}
	}
	defer rows.Close()

	list := []domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.VehicleName, &t.Rating, &t.Comment); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan testimoni", Err: err}
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

func (r TestimonialRepository) Create(t domain.Testimonial) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO testimonials (customer_name, vehicle_name, rating, comment)
		VALUES (?, ?, ?, ?)`,
		t.CustomerName, t.VehicleName, t.Rating, t.Comment)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal menyimpan testimoni", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r TestimonialRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM testimonials WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal hapus testimoni", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "testimoni"}
	}
	return nil
}
