package repositories

import (
	"database/sql"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type CountryRepository struct {
	DB *sql.DB
}

func (r CountryRepository) List() ([]models.Country, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(code,''), COALESCE(header_image,''), COALESCE(video,'')
		FROM countries
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.HeaderImage, &c.Video); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CountryRepository) GetByID(id int64) (models.Country, error) {
	var c models.Country
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(code,''), COALESCE(header_image,''), COALESCE(video,'')
		FROM countries WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Code, &c.HeaderImage, &c.Video)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Resource: "country"}
	}
	return c, err
}

func (r CountryRepository) Create(c models.Country) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO countries (name, code, header_image, video)
		VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(c.Name), intdb.NullIfEmpty(c.Code),
		intdb.NullIfEmpty(c.HeaderImage), intdb.NullIfEmpty(c.Video))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies the merged record; file columns are written as given, so a
// cleared file arrives here already blanked by the handler.
func (r CountryRepository) Update(c models.Country) error {
	res, err := r.DB.Exec(`
		UPDATE countries SET name=?, code=?, header_image=?, video=? WHERE id=?`,
		strings.TrimSpace(c.Name), intdb.NullIfEmpty(c.Code),
		intdb.NullIfEmpty(c.HeaderImage), intdb.NullIfEmpty(c.Video), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "country"}
	}
	return nil
}

func (r CountryRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM countries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "country"}
	}
	return nil
}
