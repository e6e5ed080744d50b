package repository

import (
	"errors"
	"time"

	"menucard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OtpRepository is the GORM-backed OTP store. The unique index on
// email_address makes the upsert the serialization point for concurrent
// reset requests: last writer wins, never two live codes.
type OtpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

// Upsert inserts or replaces the record for email in one statement.
func (r *OtpRepository) Upsert(email, code string, issuedAt time.Time) error {
	record := models.OTP{
		EmailAddress: email,
		Code:         code,
		Verified:     false,
		CreatedAt:    issuedAt,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"code":       code,
			"verified":   false,
			"created_at": issuedAt,
		}),
	}).Create(&record).Error
}

// MarkVerified is a single conditional update, so two concurrent verify
// calls cannot both win: the loser sees verified already set and matches
// nothing.
func (r *OtpRepository) MarkVerified(email, code string, notBefore time.Time) (bool, error) {
	result := r.db.Model(&models.OTP{}).
		Where("email_address = ? AND code = ? AND verified = ? AND created_at > ?",
			email, code, false, notBefore).
		Update("verified", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *OtpRepository) FindVerified(email string, notBefore time.Time) (*models.OTP, error) {
	var record models.OTP
	err := r.db.
		Where("email_address = ? AND verified = ? AND created_at > ?", email, true, notBefore).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *OtpRepository) DeleteByEmail(email string) error {
	return r.db.Where("email_address = ?", email).Delete(&models.OTP{}).Error
}
