package repositories

import (
	"database/sql"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ItineraryRepository holds both the reusable master templates and the
// per-package day rows.
type ItineraryRepository struct {
	DB *sql.DB
}

func (r ItineraryRepository) ListMasters(destinationID *int64) ([]models.ItineraryMaster, error) {
	query := `
		SELECT id, destination_id, COALESCE(name,''), title, COALESCE(description,''), COALESCE(image,'')
		FROM itinerary_masters`
	args := []any{}
	if destinationID != nil {
		query += ` WHERE destination_id = ? OR destination_id IS NULL`
		args = append(args, *destinationID)
	}
	query += ` ORDER BY name ASC, title ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ItineraryMaster{}
	for rows.Next() {
		var (
			m      models.ItineraryMaster
			destID sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &destID, &m.Name, &m.Title, &m.Description, &m.Image); err != nil {
			return nil, err
		}
		if destID.Valid {
			id := destID.Int64
			m.DestinationID = &id
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r ItineraryRepository) GetMaster(id int64) (models.ItineraryMaster, error) {
	var (
		m      models.ItineraryMaster
		destID sql.NullInt64
	)
	err := r.DB.QueryRow(`
		SELECT id, destination_id, COALESCE(name,''), title, COALESCE(description,''), COALESCE(image,'')
		FROM itinerary_masters WHERE id = ?`, id).
		Scan(&m.ID, &destID, &m.Name, &m.Title, &m.Description, &m.Image)
	if err == sql.ErrNoRows {
		return m, domain.NotFoundError{Resource: "itinerary master"}
	}
	if destID.Valid {
		v := destID.Int64
		m.DestinationID = &v
	}
	return m, err
}

func (r ItineraryRepository) CreateMaster(m models.ItineraryMaster) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO itinerary_masters (destination_id, name, title, description, image)
		VALUES (?, ?, ?, ?, ?)`,
		intdb.NullIfNilInt64(m.DestinationID), intdb.NullIfEmpty(m.Name), m.Title,
		intdb.NullIfEmpty(m.Description), intdb.NullIfEmpty(m.Image))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ItineraryRepository) UpdateMaster(m models.ItineraryMaster) error {
	res, err := r.DB.Exec(`
		UPDATE itinerary_masters SET destination_id=?, name=?, title=?, description=?, image=? WHERE id=?`,
		intdb.NullIfNilInt64(m.DestinationID), intdb.NullIfEmpty(m.Name), m.Title,
		intdb.NullIfEmpty(m.Description), intdb.NullIfEmpty(m.Image), m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "itinerary master"}
	}
	return nil
}

func (r ItineraryRepository) DeleteMaster(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM itinerary_masters WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "itinerary master"}
	}
	return nil
}

// FetchTemplate satisfies the formset's template lookup with just the pair of
// fields the autofill needs.
func (r ItineraryRepository) FetchTemplate(id int64) (string, string, error) {
	var title, description string
	err := r.DB.QueryRow(`
		SELECT title, COALESCE(description,'') FROM itinerary_masters WHERE id = ?`, id).
		Scan(&title, &description)
	if err == sql.ErrNoRows {
		return "", "", domain.NotFoundError{Resource: "itinerary master"}
	}
	return title, description, err
}

func (r ItineraryRepository) ListDays(packageID int64) ([]models.ItineraryDay, error) {
	rows, err := r.DB.Query(`
		SELECT id, package_id, master_template_id, day_number, COALESCE(title,''),
		       COALESCE(description,''), COALESCE(image,'')
		FROM itinerary_days WHERE package_id = ?
		ORDER BY day_number ASC, id ASC`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ItineraryDay{}
	for rows.Next() {
		var (
			d        models.ItineraryDay
			masterID sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.PackageID, &masterID, &d.DayNumber,
			&d.Title, &d.Description, &d.Image); err != nil {
			return nil, err
		}
		if masterID.Valid {
			id := masterID.Int64
			d.MasterTemplate = &id
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReplaceDays writes the synchronized day rows for a package in one
// transaction. Existing rows are updated in place, new rows inserted, and
// rows flagged for deletion removed.
func (r ItineraryRepository) ReplaceDays(packageID int64, days []models.ItineraryDay, deleted []int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range deleted {
		if _, err := tx.Exec(`DELETE FROM itinerary_days WHERE id = ? AND package_id = ?`, id, packageID); err != nil {
			return err
		}
	}
	for _, d := range days {
		if d.ID != 0 {
			if _, err := tx.Exec(`
				UPDATE itinerary_days
				SET master_template_id=?, day_number=?, title=?, description=?, image=?
				WHERE id=? AND package_id=?`,
				intdb.NullIfNilInt64(d.MasterTemplate), d.DayNumber, d.Title,
				intdb.NullIfEmpty(d.Description), intdb.NullIfEmpty(d.Image),
				d.ID, packageID); err != nil {
				return err
			}
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO itinerary_days (package_id, master_template_id, day_number, title, description, image)
			VALUES (?, ?, ?, ?, ?, ?)`,
			packageID, intdb.NullIfNilInt64(d.MasterTemplate), d.DayNumber, d.Title,
			intdb.NullIfEmpty(d.Description), intdb.NullIfEmpty(d.Image)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
