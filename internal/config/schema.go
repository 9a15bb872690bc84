package config

import (
	"database/sql"
	"fmt"
)

// Tabel dibuat idempoten saat boot supaya instance baru langsung jalan
// tanpa langkah migrasi terpisah.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		vehicle_code VARCHAR(32) NOT NULL,
		name VARCHAR(120) NOT NULL,
		brand VARCHAR(64) NOT NULL,
		type VARCHAR(64) NOT NULL,
		passengers INT NOT NULL DEFAULT 4,
		transmission VARCHAR(16) NOT NULL,
		fuel VARCHAR(32) NULL,
		year INT NOT NULL DEFAULT 0,
		price_per_day BIGINT NOT NULL,
		rating DOUBLE NOT NULL DEFAULT 0,
		discount_percentage INT NULL,
		photo_url VARCHAR(512) NULL,
		UNIQUE KEY uq_vehicles_code (vehicle_code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS drivers (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		address VARCHAR(255) NULL,
		phone VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Tersedia'
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_code VARCHAR(16) NOT NULL,
		vehicle_id BIGINT NOT NULL,
		vehicle_name VARCHAR(120) NOT NULL,
		vehicle_type VARCHAR(64) NOT NULL,
		transmission VARCHAR(16) NOT NULL,
		service VARCHAR(16) NOT NULL,
		customer_name VARCHAR(120) NOT NULL,
		customer_phone VARCHAR(32) NOT NULL,
		payment_method VARCHAR(32) NOT NULL,
		payment_proof VARCHAR(255) NULL,
		driver_id BIGINT NULL,
		status VARCHAR(24) NOT NULL DEFAULT 'pending',
		days INT NOT NULL DEFAULT 1,
		start_date VARCHAR(10) NULL,
		end_date VARCHAR(10) NULL,
		base_cost BIGINT NOT NULL DEFAULT 0,
		matic_fee BIGINT NOT NULL DEFAULT 0,
		driver_fee BIGINT NOT NULL DEFAULT 0,
		discount_amount BIGINT NOT NULL DEFAULT 0,
		total BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_orders_code (order_code),
		KEY idx_orders_status (status),
		KEY idx_orders_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS testimonials (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		customer_name VARCHAR(120) NOT NULL,
		vehicle_name VARCHAR(120) NOT NULL,
		rating INT NOT NULL,
		comment TEXT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bank_accounts (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bank_name VARCHAR(64) NOT NULL,
		account_number VARCHAR(64) NOT NULL,
		account_name VARCHAR(120) NOT NULL,
		logo_url VARCHAR(512) NULL,
		UNIQUE KEY uq_bank_accounts_number (account_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS settings (
		setting_key VARCHAR(64) NOT NULL PRIMARY KEY,
		value JSON NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the application tables when they do not exist.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database belum terhubung")
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("gagal menyiapkan skema: %w", err)
		}
	}
	return nil
}
