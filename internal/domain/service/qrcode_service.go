package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that lead customers to a store's rating page.
type QRCodeService interface {
	// GenerateStoreQR returns a PNG image encoding the store's rating link.
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)
}
