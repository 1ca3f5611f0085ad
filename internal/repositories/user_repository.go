package repositories

import (
	"database/sql"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// UserRepository wraps admin_users access. Password hashes never leave this
// package except to the login check.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) List() ([]models.AdminUser, error) {
	rows, err := r.DB.Query(`
		SELECT id, username, COALESCE(email,''), COALESCE(first_name,''), COALESCE(last_name,''),
		       is_staff, is_superuser,
		       COALESCE(DATE_FORMAT(last_login, '%Y-%m-%d %H:%i:%s'), ''),
		       COALESCE(DATE_FORMAT(date_joined, '%Y-%m-%d %H:%i:%s'), '')
		FROM admin_users
		ORDER BY username ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AdminUser{}
	for rows.Next() {
		var u models.AdminUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
			&u.IsStaff, &u.IsSuperuser, &u.LastLogin, &u.DateJoined); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.DB.QueryRow(`
		SELECT id, username, COALESCE(email,''), COALESCE(first_name,''), COALESCE(last_name,''),
		       is_staff, is_superuser
		FROM admin_users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.IsStaff, &u.IsSuperuser)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// GetCredentials loads the login row by username.
func (r UserRepository) GetCredentials(username string) (models.AdminUser, string, error) {
	var (
		u    models.AdminUser
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, username, COALESCE(email,''), password_hash, is_staff, is_superuser
		FROM admin_users WHERE username = ?`, strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.Email, &hash, &u.IsStaff, &u.IsSuperuser)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) Create(u models.AdminUser, passwordHash string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO admin_users (username, email, first_name, last_name, password_hash, is_staff, is_superuser, date_joined)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
		strings.TrimSpace(u.Username), u.Email, u.FirstName, u.LastName, passwordHash, u.IsStaff, u.IsSuperuser)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update writes profile fields; passwordHash is only applied when non-empty.
func (r UserRepository) Update(u models.AdminUser, passwordHash string) error {
	if passwordHash != "" {
		_, err := r.DB.Exec(`
			UPDATE admin_users
			SET username=?, email=?, first_name=?, last_name=?, is_staff=?, is_superuser=?, password_hash=?
			WHERE id=?`,
			strings.TrimSpace(u.Username), u.Email, u.FirstName, u.LastName, u.IsStaff, u.IsSuperuser, passwordHash, u.ID)
		return err
	}
	_, err := r.DB.Exec(`
		UPDATE admin_users
		SET username=?, email=?, first_name=?, last_name=?, is_staff=?, is_superuser=?
		WHERE id=?`,
		strings.TrimSpace(u.Username), u.Email, u.FirstName, u.LastName, u.IsStaff, u.IsSuperuser, u.ID)
	return err
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM admin_users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// TouchLastLogin records a successful sign-in.
func (r UserRepository) TouchLastLogin(id int64) error {
	_, err := r.DB.Exec(`UPDATE admin_users SET last_login = NOW() WHERE id = ?`, id)
	return err
}
