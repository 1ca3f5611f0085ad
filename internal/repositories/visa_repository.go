package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type VisaRepository struct {
	DB *sql.DB
}

const visaColumns = `
	id, country, title, COALESCE(entry_type,''), COALESCE(validity,''), COALESCE(duration,''),
	COALESCE(processing_time,''), COALESCE(visa_type,''),
	cost_price, service_charge, selling_price,
	COALESCE(documents_required,''), COALESCE(photography_required,''),
	COALESCE(card_image,''), supplier_id, is_active, is_popular,
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanVisa(row interface{ Scan(...any) error }) (models.Visa, error) {
	var (
		v          models.Visa
		docs       string
		photos     string
		supplierID sql.NullInt64
	)
	err := row.Scan(&v.ID, &v.Country, &v.Title, &v.EntryType, &v.Validity, &v.Duration,
		&v.ProcessingTime, &v.VisaType,
		&v.CostPrice, &v.ServiceCharge, &v.SellingPrice,
		&docs, &photos,
		&v.CardImage, &supplierID, &v.IsActive, &v.IsPopular, &v.CreatedAt)
	if err != nil {
		return v, err
	}
	v.DocumentsRequired = models.SplitList(docs)
	v.PhotographyRequired = models.SplitList(photos)
	if supplierID.Valid {
		id := supplierID.Int64
		v.SupplierID = &id
	}
	return v, nil
}

// List returns visas ordered the way the manage screen shows them. When
// activeOnly is set the public-site view is returned instead.
func (r VisaRepository) List(activeOnly bool, country string) ([]models.Visa, error) {
	query := `SELECT ` + visaColumns + ` FROM visas`
	where := []string{}
	args := []any{}
	if activeOnly {
		where = append(where, "is_active = 1")
	}
	if strings.TrimSpace(country) != "" {
		where = append(where, "LOWER(country) = LOWER(?)")
		args = append(args, strings.TrimSpace(country))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY country ASC, selling_price ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Visa{}
	for rows.Next() {
		v, err := scanVisa(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VisaRepository) GetByID(id int64) (models.Visa, error) {
	v, err := scanVisa(r.DB.QueryRow(`SELECT `+visaColumns+` FROM visas WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "visa"}
	}
	return v, err
}

func (r VisaRepository) Create(v models.Visa) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO visas (country, title, entry_type, validity, duration, processing_time, visa_type,
		                   cost_price, service_charge, selling_price,
		                   documents_required, photography_required, card_image, supplier_id,
		                   is_active, is_popular, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		strings.TrimSpace(v.Country), strings.TrimSpace(v.Title), v.EntryType, v.Validity, v.Duration,
		v.ProcessingTime, v.VisaType,
		v.CostPrice, v.ServiceCharge, v.SellingPrice,
		v.DocumentsRequired.Join(), v.PhotographyRequired.Join(),
		intdb.NullIfEmpty(v.CardImage), intdb.NullIfNilInt64(v.SupplierID),
		v.IsActive, v.IsPopular)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VisaRepository) Update(v models.Visa) error {
	res, err := r.DB.Exec(`
		UPDATE visas SET country=?, title=?, entry_type=?, validity=?, duration=?, processing_time=?,
		                 visa_type=?, cost_price=?, service_charge=?, selling_price=?,
		                 documents_required=?, photography_required=?, card_image=?, supplier_id=?,
		                 is_active=?, is_popular=?
		WHERE id=?`,
		strings.TrimSpace(v.Country), strings.TrimSpace(v.Title), v.EntryType, v.Validity, v.Duration,
		v.ProcessingTime, v.VisaType, v.CostPrice, v.ServiceCharge, v.SellingPrice,
		v.DocumentsRequired.Join(), v.PhotographyRequired.Join(),
		intdb.NullIfEmpty(v.CardImage), intdb.NullIfNilInt64(v.SupplierID),
		v.IsActive, v.IsPopular, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "visa"}
	}
	return nil
}

// SetFlags applies a PATCH of boolean columns only, the toggle contract.
func (r VisaRepository) SetFlags(id int64, flags map[string]bool) error {
	if len(flags) == 0 {
		return nil
	}
	sets := []string{}
	args := []any{}
	for _, col := range []string{"is_active", "is_popular"} {
		if v, ok := flags[col]; ok {
			sets = append(sets, col+"=?")
			args = append(args, v)
		}
	}
	if len(sets) == 0 {
		return domain.ValidationError{Msg: "no toggleable field in payload"}
	}
	args = append(args, id)
	res, err := r.DB.Exec(fmt.Sprintf(`UPDATE visas SET %s WHERE id=?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "visa"}
	}
	return nil
}

func (r VisaRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM visas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "visa"}
	}
	return nil
}
