package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gasthof/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Confirmed Bookings"

var columns = []string{
	"Booking ID", "Room", "Room Type", "Check-in", "Check-out",
	"Guests", "Total Price (EUR)", "Confirmed At",
}

// Exporter renders confirmed bookings into Excel workbooks.
type Exporter struct {
	outputPath string
	logger     *zerolog.Logger
}

func NewExporter(outputPath string, logger *zerolog.Logger) *Exporter {
	return &Exporter{
		outputPath: outputPath,
		logger:     logger,
	}
}

// Write streams a workbook of the given bookings to w.
func (e *Exporter) Write(w io.Writer, bookings []models.ConfirmedBooking) error {
	f, err := buildWorkbook(bookings)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %v", err)
	}
	return nil
}

// Save writes a workbook file under the configured export path and
// returns its location.
func (e *Exporter) Save(bookings []models.ConfirmedBooking) (string, error) {
	if err := os.MkdirAll(e.outputPath, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f, err := buildWorkbook(bookings)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(e.outputPath, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	e.logger.Info().Str("file_path", filePath).Int("bookings", len(bookings)).Msg("Excel file created")
	return filePath, nil
}

func buildWorkbook(bookings []models.ConfirmedBooking) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, column)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, booking := range bookings {
		row := rowIdx + 2
		values := []interface{}{
			booking.ID,
			booking.SelectedRoom.RoomName,
			booking.RoomType,
			booking.CheckIn,
			booking.CheckOut,
			booking.GuestCount,
			booking.SelectedRoom.TotalPrice,
			booking.ConfirmedAt.Format(time.RFC3339),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "H", 20)
	_ = f.DeleteSheet("Sheet1")

	return f, nil
}
