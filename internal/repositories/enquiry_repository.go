package repositories

import (
	"database/sql"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// EnquiryRepository backs the three enquiry inboxes. The public site inserts,
// the admin reads and deletes.
type EnquiryRepository struct {
	DB *sql.DB
}

func (r EnquiryRepository) List(enquiryType string) ([]models.Enquiry, error) {
	query := `
		SELECT id, name, COALESCE(email,''), COALESCE(phone,''), COALESCE(destination,''),
		       COALESCE(purpose,''), COALESCE(enquiry_type,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM enquiries`
	args := []any{}
	if strings.TrimSpace(enquiryType) != "" {
		query += ` WHERE enquiry_type = ?`
		args = append(args, strings.TrimSpace(enquiryType))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Destination,
			&e.Purpose, &e.EnquiryType, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EnquiryRepository) Create(e models.Enquiry) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO enquiries (name, email, phone, destination, purpose, enquiry_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		strings.TrimSpace(e.Name), intdb.NullIfEmpty(e.Email), e.Phone,
		intdb.NullIfEmpty(e.Destination), intdb.NullIfEmpty(e.Purpose), e.EnquiryType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EnquiryRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM enquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "enquiry"}
	}
	return nil
}

func (r EnquiryRepository) ListHoliday() ([]models.HolidayEnquiry, error) {
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(package_type,''), COALESCE(start_city,''), COALESCE(nationality,''),
		       COALESCE(DATE_FORMAT(travel_date, '%Y-%m-%d'), ''),
		       rooms, COALESCE(star_rating,''), COALESCE(holiday_type,''), COALESCE(budget,''),
		       full_name, COALESCE(email,''), COALESCE(phone,''),
		       adults, children, nights, COALESCE(room_type,''), COALESCE(meal_plan,''),
		       COALESCE(message,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM holiday_enquiries
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HolidayEnquiry{}
	for rows.Next() {
		var e models.HolidayEnquiry
		if err := rows.Scan(&e.ID, &e.PackageType, &e.StartCity, &e.Nationality, &e.TravelDate,
			&e.Rooms, &e.StarRating, &e.HolidayType, &e.Budget,
			&e.FullName, &e.Email, &e.Phone,
			&e.Adults, &e.Children, &e.Nights, &e.RoomType, &e.MealPlan,
			&e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EnquiryRepository) CreateHoliday(e models.HolidayEnquiry) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO holiday_enquiries (package_type, start_city, nationality, travel_date,
		                               rooms, star_rating, holiday_type, budget,
		                               full_name, email, phone, adults, children, nights,
		                               room_type, meal_plan, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		intdb.NullIfEmpty(e.PackageType), e.StartCity, e.Nationality, intdb.NullIfEmpty(e.TravelDate),
		e.Rooms, e.StarRating, e.HolidayType, intdb.NullIfEmpty(e.Budget),
		strings.TrimSpace(e.FullName), e.Email, e.Phone, e.Adults, e.Children, e.Nights,
		intdb.NullIfEmpty(e.RoomType), intdb.NullIfEmpty(e.MealPlan), intdb.NullIfEmpty(e.Message))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EnquiryRepository) DeleteHoliday(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM holiday_enquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "holiday enquiry"}
	}
	return nil
}

func (r EnquiryRepository) ListUmrah() ([]models.UmrahEnquiry, error) {
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(package_type,''), COALESCE(start_city,''), COALESCE(nationality,''),
		       COALESCE(DATE_FORMAT(travel_date, '%Y-%m-%d'), ''),
		       rooms, COALESCE(star_rating,''), COALESCE(budget,''),
		       full_name, COALESCE(email,''), COALESCE(phone,''),
		       adults, children, infants, COALESCE(message,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM umrah_enquiries
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UmrahEnquiry{}
	for rows.Next() {
		var e models.UmrahEnquiry
		if err := rows.Scan(&e.ID, &e.PackageType, &e.StartCity, &e.Nationality, &e.TravelDate,
			&e.Rooms, &e.StarRating, &e.Budget,
			&e.FullName, &e.Email, &e.Phone,
			&e.Adults, &e.Children, &e.Infants, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EnquiryRepository) CreateUmrah(e models.UmrahEnquiry) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO umrah_enquiries (package_type, start_city, nationality, travel_date,
		                             rooms, star_rating, budget, full_name, email, phone,
		                             adults, children, infants, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		intdb.NullIfEmpty(e.PackageType), e.StartCity, e.Nationality, intdb.NullIfEmpty(e.TravelDate),
		e.Rooms, e.StarRating, intdb.NullIfEmpty(e.Budget),
		strings.TrimSpace(e.FullName), e.Email, e.Phone,
		e.Adults, e.Children, e.Infants, intdb.NullIfEmpty(e.Message))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EnquiryRepository) DeleteUmrah(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM umrah_enquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "umrah enquiry"}
	}
	return nil
}
