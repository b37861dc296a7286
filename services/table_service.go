package services

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
)

type TableService struct {
	State *store.Store
	API   TableAPI
	QR    QRGenerator
}

func NewTableService(st *store.Store, tables TableAPI, qr QRGenerator) *TableService {
	return &TableService{State: st, API: tables, QR: qr}
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	tables, err := s.API.ListTables(ctx)
	if err != nil {
		s.State.Dispatch(store.TablesFailed{Error: api.Message(err, "Failed to load tables")})
		return nil, fmt.Errorf("list tables: %w", err)
	}
	s.State.Dispatch(store.TablesLoaded{Tables: tables})
	return tables, nil
}

// QRCode renders the printable PNG for a table.
func (s *TableService) QRCode(ctx context.Context, tableID uint) ([]byte, *models.Table, error) {
	table, err := s.API.GetTable(ctx, tableID)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %d", ErrTableNotFound, tableID)
		}
		return nil, nil, fmt.Errorf("load table %d: %w", tableID, err)
	}
	png, err := s.QR.Generate(*table)
	if err != nil {
		return nil, nil, fmt.Errorf("encode qr code for table %d: %w", tableID, err)
	}
	return png, table, nil
}
