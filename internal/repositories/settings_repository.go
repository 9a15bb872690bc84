package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "sewamobil-backend/internal/config"
	"sewamobil-backend/internal/domain"
)

// Settings keys untuk konten singleton halaman pengaturan.
const (
	SettingContactInfo = "contact_info"
	SettingTerms       = "terms_content"
)

type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettingsRepository) ListBankAccounts() ([]domain.BankAccount, error) {
	rows, err := r.db().Query(`
		SELECT id, bank_name, account_number, account_name, COALESCE(logo_url,'')
		FROM bank_accounts
		ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil rekening bank", Err: err}
	}
	defer rows.Close()

	list := []domain.BankAccount{}
	for rows.Next() {
		var b domain.BankAccount
		if err := rows.Scan(&b.ID, &b.BankName, &b.AccountNumber, &b.AccountName, &b.LogoURL); err != nil {
			return nil, domain.InternalError{Msg: "gagal scan rekening bank", Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error iterasi rows", Err: err}
	}
	return list, nil
}

func (r SettingsRepository) CreateBankAccount(b domain.BankAccount) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bank_accounts (bank_name, account_number, account_name, logo_url)
		VALUES (?, ?, ?, ?)`,
		b.BankName, b.AccountNumber, b.AccountName, nullIfEmpty(b.LogoURL))
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "rekening", Msg: "nomor rekening sudah terdaftar"}
		}
		return 0, domain.InternalError{Msg: "gagal menyimpan rekening bank", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r SettingsRepository) DeleteBankAccount(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bank_accounts WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "gagal hapus rekening bank", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "rekening"}
	}
	return nil
}

// GetSetting unmarshals a JSON settings value into dst. Missing keys are
// reported as NotFound so callers can fall back to defaults.
func (r SettingsRepository) GetSetting(key string, dst any) error {
	var raw []byte
	err := r.db().QueryRow(`SELECT value FROM settings WHERE setting_key=? LIMIT 1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "pengaturan " + key}
		}
		return domain.InternalError{Msg: "gagal query pengaturan", Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.InternalError{Msg: "pengaturan korup", Err: err}
	}
	return nil
}

func (r SettingsRepository) PutSetting(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode pengaturan", Err: err}
	}
	_, err = r.db().Exec(`
		INSERT INTO settings (setting_key, value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value=VALUES(value)`, key, raw)
	if err != nil {
		return domain.InternalError{Msg: "gagal menyimpan pengaturan", Err: err}
	}
	return nil
}
