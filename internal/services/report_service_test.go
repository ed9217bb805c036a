package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	req "salonsage/internal/models/request_models"
	"salonsage/internal/repositories"
)

func TestBookingsReportWorkbook(t *testing.T) {
	db := setupTestDB(t)
	reportSvc := NewReportService(repositories.NewDashboardRepository(db))
	bookingSvc := newBookingService(db)

	client := seedClient(t, db, "333 1234567")
	primary := seedService(t, db, "Manicure", 45)
	gel := seedService(t, db, "Gel", 15)

	now := time.Now()
	midday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	out, err := bookingSvc.CreateBooking(context.Background(), req.CreateBookingRequest{
		ClientID:        client.ID.String(),
		ServiceID:       primary.ID.String(),
		AppointmentDate: midday,
	})
	require.NoError(t, err)
	_, err = bookingSvc.AddExtraServices(context.Background(), uuid.MustParse(out.ID), []uuid.UUID{gel.ID})
	require.NoError(t, err)

	start := midday.Add(-12 * time.Hour)
	end := midday.Add(12 * time.Hour)
	data, filename, err := reportSvc.BookingsReport(context.Background(), start, end)
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	// Header, one booking line, a blank spacer, the revenue summary.
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Client", rows[0][1])
	assert.Equal(t, "Maria Rossi", rows[1][1])
	assert.Equal(t, "Manicure", rows[1][2])
	assert.Equal(t, "60", rows[1][5])
}

func TestBookingsReportEmptyRange(t *testing.T) {
	db := setupTestDB(t)
	reportSvc := NewReportService(repositories.NewDashboardRepository(db))

	start := time.Now().Add(-48 * time.Hour)
	end := time.Now().Add(-24 * time.Hour)
	data, _, err := reportSvc.BookingsReport(context.Background(), start, end)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
