package analytics

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/quickcourt/quickcourt-backend/internal/booking"
)

// exportPageSize bounds each page pulled from the booking store while
// streaming an export.
const exportPageSize = 500

type Service interface {
	AdminStats(ctx context.Context, w Window) (*AdminStats, error)
	OwnerStats(ctx context.Context, ownerID string) ([]FacilityStats, error)

	// ExportOwnerBookings renders the owner's bookings in the window as an
	// xlsx workbook and returns the serialized file.
	ExportOwnerBookings(ctx context.Context, ownerID string, w Window) ([]byte, error)
}

type service struct {
	repo     Repository
	bookings booking.Service
}

func NewService(repo Repository, bookings booking.Service) Service {
	return &service{repo: repo, bookings: bookings}
}

func (s *service) AdminStats(ctx context.Context, w Window) (*AdminStats, error) {
	users, err := s.repo.UsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	facilities, err := s.repo.FacilitiesByState(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.BookingsByStatus(ctx, w)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.BookingsPerDay(ctx, w)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		UsersByRole:       users,
		FacilitiesByState: facilities,
		BookingsByStatus:  bookings,
		BookingsPerDay:    daily,
	}, nil
}

func (s *service) OwnerStats(ctx context.Context, ownerID string) ([]FacilityStats, error) {
	return s.repo.OwnerFacilityStats(ctx, ownerID)
}

var exportColumns = []string{
	"Date", "Start", "End", "Facility", "Court", "Player", "Status",
	"Tier", "Unit Price", "Hours", "Base Cost", "Add-on Cost", "Total", "Currency",
}

func (s *service) ExportOwnerBookings(ctx context.Context, ownerID string, w Window) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(sheet, start, end, style)
	}

	row := 2
	for page := 1; ; page++ {
		items, _, err := s.bookings.List(ctx, booking.Filter{
			OwnerID:   ownerID,
			DateFrom:  &w.From,
			DateTo:    &w.To,
			Page:      page,
			PageSize:  exportPageSize,
			SortBy:    "date",
			SortOrder: "ASC",
		})
		if err != nil {
			return nil, fmt.Errorf("load bookings for export failed: %w", err)
		}

		for _, b := range items {
			values := []any{
				b.Date.Format("2006-01-02"), b.StartTime, b.EndTime,
				b.FacilityName, b.CourtName, b.UserName, string(b.Status),
				string(b.Tier), b.UnitPrice, b.DurationHours, b.BaseCost,
				b.AddOnCosts.Sum(), b.TotalAmount, b.Currency,
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}

		if len(items) < exportPageSize {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook failed: %w", err)
	}
	return buf.Bytes(), nil
}
