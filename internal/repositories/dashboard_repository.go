package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

type DashboardRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountActiveClientSubscriptions(ctx context.Context) (int64, error)
	// RevenueSince sums line-item prices of bookings created at or
	// after the given unix second.
	RevenueSince(ctx context.Context, createdAt int64) (float64, error)
	BookingsBetween(ctx context.Context, start, end time.Time) ([]dbm.Booking, error)
	ServiceBookingCounts(ctx context.Context) ([]ServiceCountRow, error)
	BookingReportRows(ctx context.Context, start, end time.Time) ([]BookingReportRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type ServiceCountRow struct {
	ServiceID string `gorm:"column:service_id"`
	Count     int64  `gorm:"column:count"`
}

type BookingReportRow struct {
	ID              string    `gorm:"column:id"`
	ClientName      string    `gorm:"column:client_name"`
	ServiceName     string    `gorm:"column:service_name"`
	ExtraCount      int64     `gorm:"column:extra_count"`
	Status          string    `gorm:"column:status"`
	AppointmentDate time.Time `gorm:"column:appointment_date"`
	Total           float64   `gorm:"column:total"`
}

func (r *dashboardRepository) CountClients(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Client{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActiveClientSubscriptions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.ClientSubscription{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) RevenueSince(ctx context.Context, createdAt int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&dbm.BookingItem{}).
		Select("COALESCE(SUM(booking_items.price), 0)").
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("bookings.created_at >= ?", createdAt).
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) BookingsBetween(ctx context.Context, start, end time.Time) ([]dbm.Booking, error) {
	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date").
		Find(&bookings).Error
	return bookings, err
}

func (r *dashboardRepository) ServiceBookingCounts(ctx context.Context) ([]ServiceCountRow, error) {
	var rows []ServiceCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Select("service_id, COUNT(*) AS count").
		Group("service_id").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) BookingReportRows(ctx context.Context, start, end time.Time) ([]BookingReportRow, error) {
	var rows []BookingReportRow
	err := r.db.WithContext(ctx).Raw(`
SELECT b.id AS id,
       c.first_name || ' ' || c.last_name AS client_name,
       s.name AS service_name,
       (SELECT COUNT(*) FROM booking_items bi WHERE bi.booking_id = b.id AND bi.kind = ?) AS extra_count,
       b.status AS status,
       b.appointment_date AS appointment_date,
       (SELECT COALESCE(SUM(bi.price), 0) FROM booking_items bi WHERE bi.booking_id = b.id) AS total
FROM bookings b
JOIN clients c ON c.id = b.client_id
JOIN services s ON s.id = b.service_id
WHERE b.appointment_date >= ? AND b.appointment_date < ?
ORDER BY b.appointment_date`,
		dbm.ItemExtra, start, end).Scan(&rows).Error
	return rows, err
}
