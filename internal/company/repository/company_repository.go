package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"orderfellow/internal/domain"
	apperrors "orderfellow/internal/errors"
)

const mysqlErrDuplicateEntry = 1062

type MySQLCompanyRepository struct {
	db *sql.DB
}

func NewMySQLCompanyRepository(db *sql.DB) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db}
}

func (r *MySQLCompanyRepository) FindByEmail(ctx context.Context, businessEmail string) (*domain.Company, error) {
	query := `
		SELECT id, company_name, business_email, password_hash, email_verified,
		       otp_code, otp_expires_at, kyc_status, business_registration_number,
		       business_address, contact_person_name, contact_person_phone,
		       created_at, updated_at
		FROM companies
		WHERE business_email = ?
	`

	return r.scanCompany(r.db.QueryRowContext(ctx, query, businessEmail),
		fmt.Sprintf("company with email %s not found", businessEmail))
}

func (r *MySQLCompanyRepository) FindByID(ctx context.Context, id uint) (*domain.Company, error) {
	query := `
		SELECT id, company_name, business_email, password_hash, email_verified,
		       otp_code, otp_expires_at, kyc_status, business_registration_number,
		       business_address, contact_person_name, contact_person_phone,
		       created_at, updated_at
		FROM companies
		WHERE id = ?
	`

	return r.scanCompany(r.db.QueryRowContext(ctx, query, id),
		fmt.Sprintf("company with id %d not found", id))
}

func (r *MySQLCompanyRepository) scanCompany(row *sql.Row, notFoundMsg string) (*domain.Company, error) {
	var company domain.Company
	err := row.Scan(
		&company.ID, &company.CompanyName, &company.BusinessEmail, &company.PasswordHash,
		&company.EmailVerified, &company.OtpCode, &company.OtpExpiresAt, &company.KycStatus,
		&company.BusinessRegistrationNumber, &company.BusinessAddress,
		&company.ContactPersonName, &company.ContactPersonPhone,
		&company.CreatedAt, &company.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("querying company: %w", err)
	}

	return &company, nil
}

func (r *MySQLCompanyRepository) Insert(ctx context.Context, company domain.Company) (uint, error) {
	query := `
		INSERT INTO companies (company_name, business_email, password_hash, otp_code, otp_expires_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		company.CompanyName, company.BusinessEmail, company.PasswordHash,
		company.OtpCode, company.OtpExpiresAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, apperrors.NewConflictError("Email already registered")
		}
		return 0, fmt.Errorf("inserting company: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted company id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLCompanyRepository) MarkEmailVerified(ctx context.Context, id uint) error {
	query := `
		UPDATE companies
		SET email_verified = TRUE, otp_code = NULL, otp_expires_at = NULL
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking email verified: %w", err)
	}

	return r.requireRow(result, id)
}

func (r *MySQLCompanyRepository) UpdateKycSubmission(ctx context.Context, id uint, registrationNumber, address, contactName, contactPhone string) error {
	query := `
		UPDATE companies
		SET kyc_status = ?,
		    business_registration_number = ?,
		    business_address = ?,
		    contact_person_name = ?,
		    contact_person_phone = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		domain.KycStatusPending, registrationNumber, address, contactName, contactPhone, id,
	)
	if err != nil {
		return fmt.Errorf("updating kyc submission: %w", err)
	}

	return r.requireRow(result, id)
}

func (r *MySQLCompanyRepository) UpdateKycStatus(ctx context.Context, id uint, status string) error {
	query := `UPDATE companies SET kyc_status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating kyc status: %w", err)
	}

	return r.requireRow(result, id)
}

func (r *MySQLCompanyRepository) requireRow(result sql.Result, id uint) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("company with id %d not found", id))
	}

	return nil
}
