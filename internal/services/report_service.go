package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

type ReportServiceInterface interface {
	// BookingsReport renders an XLSX workbook of the bookings in
	// [start, end) with a revenue summary row.
	BookingsReport(ctx context.Context, start, end time.Time) ([]byte, string, error)
}

type ReportService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewReportService(dashboardRepo repositories.DashboardRepository) ReportServiceInterface {
	return &ReportService{dashboardRepo: dashboardRepo}
}

func (s *ReportService) BookingsReport(ctx context.Context, start, end time.Time) ([]byte, string, error) {
	rows, err := s.dashboardRepo.BookingReportRows(ctx, start, end)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"Date", "Client", "Service", "Extra services", "Status", "Total"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", err
	}

	var revenue float64
	rowNum := 2
	for _, r := range rows {
		revenue += r.Total
		excelRow := []interface{}{
			r.AppointmentDate.Format("2006-01-02 15:04"),
			r.ClientName,
			r.ServiceName,
			r.ExtraCount,
			r.Status,
			r.Total,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, "", err
		}
		rowNum++
	}

	summary := []interface{}{"", "", "", "", "Revenue", revenue}
	cell, err := excelize.CoordinatesToCellName(1, rowNum+1)
	if err != nil {
		return nil, "", err
	}
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return nil, "", err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("bookings_%s_%s.xlsx", start.Format("20060102"), end.Format("20060102"))
	return buf.Bytes(), fileName, nil
}
