package services

import (
	"fmt"
	"strings"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(table models.Table) ([]byte, error)
}

// DefaultQRGenerator encodes the scan link of a table: {BaseURL}/t/{uuid},
// or the numeric id when the table has no UUID.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Link(table models.Table) string {
	code := table.UUID
	if code == "" {
		code = fmt.Sprintf("%d", table.ID)
	}
	return fmt.Sprintf("%s/t/%s", strings.TrimSuffix(g.BaseURL, "/"), code)
}

func (g DefaultQRGenerator) Generate(table models.Table) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(table), qrcode.Medium, size)
}
