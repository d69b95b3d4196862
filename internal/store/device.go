package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotPaired is returned when no device has been paired
var ErrNotPaired = errors.New("no device paired")

// GetDevice retrieves the paired device
func (db *DB) GetDevice() (*Device, error) {
	row := db.QueryRow(`
		SELECT device_id, name, seed, paired_at
		FROM device
		WHERE id = 1
	`)

	var d Device
	var pairedAt string
	err := row.Scan(&d.DeviceID, &d.Name, &d.Seed, &pairedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotPaired
	}
	if err != nil {
		return nil, err
	}

	d.PairedAt, err = time.Parse(time.RFC3339, pairedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveDevice stores or replaces the paired device
func (db *DB) SaveDevice(d *Device) error {
	_, err := db.Exec(`
		INSERT INTO device (id, device_id, name, seed, paired_at, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			device_id = excluded.device_id,
			name = excluded.name,
			seed = excluded.seed,
			paired_at = excluded.paired_at,
			updated_at = CURRENT_TIMESTAMP
	`, d.DeviceID, d.Name, d.Seed, d.PairedAt.UTC().Format(time.RFC3339))
	return err
}

// DeleteDevice removes the pairing
func (db *DB) DeleteDevice() error {
	_, err := db.Exec(`DELETE FROM device WHERE id = 1`)
	return err
}
