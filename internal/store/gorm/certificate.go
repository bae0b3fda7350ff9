package gorm

import (
	"time"

	"github.com/cristianadrielbraun/certgen/internal/certificate"
)

// Certificate is the persisted form of certificate.Certificate. It has no
// DeletedAt column so deletes are permanent.
type Certificate struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	CertificateID string    `gorm:"column:certificate_id;type:varchar(32);uniqueIndex;not null"`
	Name          string    `gorm:"not null"`
	Course        string    `gorm:"not null"`
	Date          string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func fromCertificate(c *certificate.Certificate) *Certificate {
	return &Certificate{
		ID:            c.Key,
		CertificateID: c.ID,
		Name:          c.Name,
		Course:        c.Course,
		Date:          c.Date,
		CreatedAt:     c.CreatedAt,
	}
}

func (c *Certificate) toCertificate() *certificate.Certificate {
	return &certificate.Certificate{
		Key:       c.ID,
		ID:        c.CertificateID,
		Name:      c.Name,
		Course:    c.Course,
		Date:      c.Date,
		CreatedAt: c.CreatedAt,
	}
}
