package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
)

type exportService struct {
	repo repositories.Repository
}

func NewExportService(repo repositories.Repository) ExportService {
	return &exportService{repo: repo}
}

func (s *exportService) Students(ctx context.Context) (*ExportTable, error) {
	students, err := s.repo.Students().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	table := &ExportTable{
		Headers: []string{"Name", "Class", "Guardian", "Phone", "Enrollment Date"},
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			st.Name, st.Class, st.GuardianName, st.GuardianPhone, st.EnrollmentDate,
		})
	}
	return table, nil
}

func (s *exportService) Payments(ctx context.Context) (*ExportTable, error) {
	payments, err := s.repo.Payments().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	table := &ExportTable{
		Headers: []string{"Student", "Class", "Amount", "Date", "Method", "Status"},
	}
	for _, p := range payments {
		table.Rows = append(table.Rows, []string{
			p.StudentName,
			p.Class,
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			p.Date,
			p.Method,
			string(p.Status),
		})
	}
	return table, nil
}

func (s *exportService) EncodeCSV(table *ExportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) EncodeXLSX(table *ExportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &table.Headers); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
