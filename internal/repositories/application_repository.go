package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ApplicationRepository covers visa applications together with their
// applicants and each applicant's additional documents.
type ApplicationRepository struct {
	DB *sql.DB
}

const applicationColumns = `
	id, visa_id, COALESCE(application_type,''), COALESCE(internal_id,''), COALESCE(group_name,''),
	COALESCE(DATE_FORMAT(departure_date, '%Y-%m-%d'), ''),
	COALESCE(DATE_FORMAT(return_date, '%Y-%m-%d'), ''),
	total_price, COALESCE(status,''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')`

func scanApplication(row interface{ Scan(...any) error }) (models.VisaApplication, error) {
	var a models.VisaApplication
	err := row.Scan(&a.ID, &a.VisaID, &a.ApplicationType, &a.InternalID, &a.GroupName,
		&a.DepartureDate, &a.ReturnDate, &a.TotalPrice, &a.Status, &a.CreatedAt)
	return a, err
}

func (r ApplicationRepository) List(status string) ([]models.VisaApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM visa_applications`
	args := []any{}
	if strings.TrimSpace(status) != "" {
		query += ` WHERE status = ?`
		args = append(args, strings.TrimSpace(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VisaApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID loads the application with its applicants and their documents, the
// payload the applicant editor re-fetches after every mutation.
func (r ApplicationRepository) GetByID(id int64) (models.VisaApplication, error) {
	a, err := scanApplication(r.DB.QueryRow(`SELECT `+applicationColumns+` FROM visa_applications WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "visa application"}
	}
	if err != nil {
		return a, err
	}
	a.Applicants, err = r.listApplicants(id)
	return a, err
}

func (r ApplicationRepository) listApplicants(applicationID int64) ([]models.VisaApplicant, error) {
	rows, err := r.DB.Query(`
		SELECT id, application_id, COALESCE(first_name,''), COALESCE(last_name,''),
		       COALESCE(passport_number,''), COALESCE(nationality,''), COALESCE(sex,''),
		       COALESCE(DATE_FORMAT(dob, '%Y-%m-%d'), ''),
		       COALESCE(place_of_birth,''), COALESCE(place_of_issue,''), COALESCE(marital_status,''),
		       COALESCE(phone,''),
		       COALESCE(DATE_FORMAT(date_of_issue, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(date_of_expiry, '%Y-%m-%d'), ''),
		       COALESCE(passport_front,''), COALESCE(photo,'')
		FROM visa_applicants WHERE application_id = ?
		ORDER BY id ASC`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VisaApplicant{}
	for rows.Next() {
		var ap models.VisaApplicant
		if err := rows.Scan(&ap.ID, &ap.ApplicationID, &ap.FirstName, &ap.LastName,
			&ap.PassportNumber, &ap.Nationality, &ap.Sex, &ap.DOB,
			&ap.PlaceOfBirth, &ap.PlaceOfIssue, &ap.MaritalStatus, &ap.Phone,
			&ap.DateOfIssue, &ap.DateOfExpiry, &ap.PassportFront, &ap.Photo); err != nil {
			return nil, err
		}
		out = append(out, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		docs, err := r.listDocuments(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].AdditionalDocuments = docs
	}
	return out, nil
}

func (r ApplicationRepository) listDocuments(applicantID int64) ([]models.AdditionalDocument, error) {
	rows, err := r.DB.Query(`
		SELECT id, applicant_id, COALESCE(document_name,''), COALESCE(file,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM additional_documents WHERE applicant_id = ?
		ORDER BY id ASC`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AdditionalDocument{}
	for rows.Next() {
		var d models.AdditionalDocument
		if err := rows.Scan(&d.ID, &d.ApplicantID, &d.DocumentName, &d.File, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ApplicationRepository) Create(a models.VisaApplication) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO visa_applications (visa_id, application_type, internal_id, group_name,
		                               departure_date, return_date, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		a.VisaID, a.ApplicationType, intdb.NullIfEmpty(a.InternalID), intdb.NullIfEmpty(a.GroupName),
		intdb.NullIfEmpty(a.DepartureDate), intdb.NullIfEmpty(a.ReturnDate),
		a.TotalPrice, a.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ApplicationRepository) Update(a models.VisaApplication) error {
	res, err := r.DB.Exec(`
		UPDATE visa_applications
		SET visa_id=?, application_type=?, internal_id=?, group_name=?,
		    departure_date=?, return_date=?, total_price=?, status=?
		WHERE id=?`,
		a.VisaID, a.ApplicationType, intdb.NullIfEmpty(a.InternalID), intdb.NullIfEmpty(a.GroupName),
		intdb.NullIfEmpty(a.DepartureDate), intdb.NullIfEmpty(a.ReturnDate),
		a.TotalPrice, a.Status, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "visa application"}
	}
	return nil
}

func (r ApplicationRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM visa_applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "visa application"}
	}
	return nil
}

func (r ApplicationRepository) AddApplicant(ap models.VisaApplicant) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO visa_applicants (application_id, first_name, last_name, passport_number,
		                             nationality, sex, dob, place_of_birth, place_of_issue,
		                             marital_status, phone, date_of_issue, date_of_expiry)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ap.ApplicationID, ap.FirstName, ap.LastName, ap.PassportNumber,
		ap.Nationality, ap.Sex, intdb.NullIfEmpty(ap.DOB), ap.PlaceOfBirth, ap.PlaceOfIssue,
		ap.MaritalStatus, intdb.NullIfEmpty(ap.Phone),
		intdb.NullIfEmpty(ap.DateOfIssue), intdb.NullIfEmpty(ap.DateOfExpiry))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// applicantColumnFor maps allow-listed payload keys to columns. Anything
// outside the list is rejected before SQL is built.
func applicantColumnFor(field string) (string, bool) {
	for _, f := range models.ApplicantScalarFields {
		if f == field {
			return field, true
		}
	}
	return "", false
}

// PatchApplicant writes only the scalar fields present in the payload.
func (r ApplicationRepository) PatchApplicant(id int64, fields map[string]string) error {
	if len(fields) == 0 {
		return domain.ValidationError{Msg: "no fields to update"}
	}
	sets := []string{}
	args := []any{}
	for _, key := range models.ApplicantScalarFields {
		v, ok := fields[key]
		if !ok {
			continue
		}
		col, _ := applicantColumnFor(key)
		sets = append(sets, col+"=?")
		switch key {
		case "dob", "date_of_issue", "date_of_expiry", "phone":
			args = append(args, intdb.NullIfEmpty(v))
		default:
			args = append(args, v)
		}
	}
	if len(sets) == 0 {
		return domain.ValidationError{Msg: "no updatable field in payload"}
	}
	args = append(args, id)
	res, err := r.DB.Exec(fmt.Sprintf(`UPDATE visa_applicants SET %s WHERE id=?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "applicant"}
	}
	return nil
}

// SetApplicantFile writes one of the two file columns. An empty path clears
// the stored file.
func (r ApplicationRepository) SetApplicantFile(id int64, field, path string) error {
	var col string
	switch field {
	case "passport_front":
		col = "passport_front"
	case "photo":
		col = "photo"
	default:
		return domain.ValidationError{Msg: "unknown file field " + field}
	}
	res, err := r.DB.Exec(`UPDATE visa_applicants SET `+col+`=? WHERE id=?`, intdb.NullIfEmpty(path), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "applicant"}
	}
	return nil
}

func (r ApplicationRepository) DeleteApplicant(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM visa_applicants WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "applicant"}
	}
	return nil
}

func (r ApplicationRepository) AddDocument(d models.AdditionalDocument) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO additional_documents (applicant_id, document_name, file, created_at)
		VALUES (?, ?, ?, NOW())`,
		d.ApplicantID, intdb.NullIfEmpty(d.DocumentName), d.File)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ApplicationRepository) DeleteDocument(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM additional_documents WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "document"}
	}
	return nil
}
