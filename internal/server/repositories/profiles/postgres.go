package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ProvisionEmpty(ctx context.Context, userID string, role common.Role, name string) error {
	var query string
	switch role {
	case common.RoleTeacher:
		query = `INSERT INTO teacher_profiles (user_id, name, subjects) VALUES ($1, $2, '[]')`
	case common.RoleStudent:
		query = `INSERT INTO student_profiles (user_id, name, marks) VALUES ($1, $2, '{}')`
	case common.RoleAdmin, common.RoleDeveloper:
		query = `INSERT INTO admin_profiles (user_id, name) VALUES ($1, $2)`
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	if _, err := r.db.ExecContext(ctx, query, userID, name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetTeacher(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	query :=
		`SELECT user_id, name, email, phone, bio, photo_url, department, subjects, updated_at
		 FROM teacher_profiles
		 WHERE user_id = $1
		 `

	p := &models.TeacherProfile{}
	var subjects []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Bio, &p.PhotoURL,
		&p.Department, &subjects, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(subjects, &p.Subjects); err != nil {
		return nil, fmt.Errorf("subjects decode error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateTeacher(ctx context.Context, p *models.TeacherProfile) (*models.TeacherProfile, error) {
	subjects, err := json.Marshal(p.Subjects)
	if err != nil {
		return nil, fmt.Errorf("subjects encode error: %w", err)
	}

	query :=
		`UPDATE teacher_profiles
		 SET name = $2, email = $3, phone = $4, bio = $5, photo_url = $6,
		     department = $7, subjects = $8, updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Phone, p.Bio, p.PhotoURL,
		p.Department, subjects).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetStudent(ctx context.Context, userID string) (*models.StudentProfile, error) {
	query :=
		`SELECT user_id, name, email, phone, bio, photo_url, roll_number, class_name, marks, updated_at
		 FROM student_profiles
		 WHERE user_id = $1
		 `

	p := &models.StudentProfile{}
	var marks []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Bio, &p.PhotoURL,
		&p.RollNumber, &p.ClassName, &marks, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(marks, &p.Marks); err != nil {
		return nil, fmt.Errorf("marks decode error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateStudent(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
	marks, err := json.Marshal(p.Marks)
	if err != nil {
		return nil, fmt.Errorf("marks encode error: %w", err)
	}

	query :=
		`UPDATE student_profiles
		 SET name = $2, email = $3, phone = $4, bio = $5, photo_url = $6,
		     roll_number = $7, class_name = $8, marks = $9, updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Phone, p.Bio, p.PhotoURL,
		p.RollNumber, p.ClassName, marks).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListStudents(ctx context.Context, className string) ([]*models.StudentProfile, error) {
	query :=
		`SELECT user_id, name, email, phone, bio, photo_url, roll_number, class_name, marks, updated_at
		 FROM student_profiles
		 `
	args := []any{}
	if className != "" {
		query += ` WHERE class_name = $1`
		args = append(args, className)
	}
	query += ` ORDER BY roll_number`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.StudentProfile
	for rows.Next() {
		p := &models.StudentProfile{}
		var marks []byte
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Bio, &p.PhotoURL,
			&p.RollNumber, &p.ClassName, &marks, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(marks, &p.Marks); err != nil {
			return nil, fmt.Errorf("marks decode error: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) GetAdmin(ctx context.Context, userID string) (*models.AdminProfile, error) {
	query :=
		`SELECT user_id, name, email, phone, bio, photo_url, designation, updated_at
		 FROM admin_profiles
		 WHERE user_id = $1
		 `

	p := &models.AdminProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Bio, &p.PhotoURL,
		&p.Designation, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateAdmin(ctx context.Context, p *models.AdminProfile) (*models.AdminProfile, error) {
	query :=
		`UPDATE admin_profiles
		 SET name = $2, email = $3, phone = $4, bio = $5, photo_url = $6,
		     designation = $7, updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Phone, p.Bio, p.PhotoURL,
		p.Designation).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
