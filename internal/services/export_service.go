package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
)

// ExportService renders a collection as a downloadable table: header row from
// the record's field names, one data row per record. CSV output goes through
// encoding/csv, so embedded delimiters and quotes are escaped properly.
type ExportService interface {
	ExportCSV(ctx context.Context, collection string, actor models.User) ([]byte, string, error)
	ExportExcel(ctx context.Context, collection string, actor models.User) ([]byte, string, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportCSV(ctx context.Context, collection string, actor models.User) ([]byte, string, error) {
	headers, rows, err := s.collectRows(ctx, collection, actor)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	s.logger.Info("CSV export completed", "collection", collection, "rows", len(rows))
	return buf.Bytes(), collection + ".csv", nil
}

func (s *exportService) ExportExcel(ctx context.Context, collection string, actor models.User) ([]byte, string, error) {
	headers, rows, err := s.collectRows(ctx, collection, actor)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for rowIdx, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Excel export completed", "collection", collection, "rows", len(rows))
	return buf.Bytes(), collection + ".xlsx", nil
}

func (s *exportService) collectRows(ctx context.Context, collection string, actor models.User) ([]string, [][]string, error) {
	switch collection {
	case "users":
		if actor.Role == models.RoleStudent {
			return nil, nil, NewPermissionError(actor.ID, "users", "export", "requires teacher or admin")
		}
		return recordTable(s.repo.Users().List(ctx))
	case "attendance":
		return recordTable(s.repo.Attendance().List(ctx))
	case "assignments":
		return recordTable(s.repo.Assignments().List(ctx))
	case "notes":
		return recordTable(s.repo.Notes().List(ctx))
	case "tasks":
		return recordTable(s.repo.Tasks().ListByAssignee(ctx, actor.ID))
	default:
		return nil, nil, NewValidationError("collection", "is not exportable", collection)
	}
}

// recordTable flattens a slice of uniform records into headers (json field
// names, declaration order) and string rows.
func recordTable[T any](items []T) ([]string, [][]string, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("cannot export non-struct record type %s", t)
	}

	var headers []string
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		headers = append(headers, name)
		fields = append(fields, i)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		v := reflect.ValueOf(item)
		row := make([]string, 0, len(fields))
		for _, idx := range fields {
			row = append(row, fmt.Sprintf("%v", v.Field(idx).Interface()))
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
