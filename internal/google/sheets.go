package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gasthof/internal/models"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const bookingsSheet = "Bookings"

var bookingHeaders = []interface{}{
	"Booking ID", "Room", "Room Type", "Check-in", "Check-out",
	"Guests", "Total Price (EUR)", "Confirmed At",
}

// SheetsService mirrors confirmed bookings into a Google spreadsheet.
type SheetsService struct {
	service         *sheets.Service
	bookingsSheetID string
}

func NewSheetsService(credentialsFile, bookingsSheetID string) (*SheetsService, error) {
	ctx := context.Background()

	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %v", err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %v", err)
	}

	client := config.Client(ctx)

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %v", err)
	}

	return &SheetsService{
		service:         srv,
		bookingsSheetID: bookingsSheetID,
	}, nil
}

// TestConnection reads the header cell to verify credentials and access.
func (s *SheetsService) TestConnection(ctx context.Context) error {
	_, err := s.service.Spreadsheets.Values.Get(s.bookingsSheetID, bookingsSheet+"!A1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("connection test failed: %v", err)
	}
	return nil
}

// GetServiceAccountEmail returns the service account email from the
// credentials file, for sharing the spreadsheet with it.
func (s *SheetsService) GetServiceAccountEmail(credentialsFile string) (string, error) {
	file, err := os.ReadFile(credentialsFile)
	if err != nil {
		return "", err
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(file, &creds); err != nil {
		return "", err
	}
	return creds.ClientEmail, nil
}

// AppendConfirmedBooking appends one booking row.
func (s *SheetsService) AppendConfirmedBooking(ctx context.Context, booking *models.ConfirmedBooking) error {
	if booking == nil {
		return fmt.Errorf("booking is nil")
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{bookingRowValues(booking)},
	}

	_, err := s.service.Spreadsheets.Values.Append(s.bookingsSheetID, bookingsSheet+"!A:A", valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}

// ReplaceConfirmedBookings rewrites the whole sheet from the ledger.
func (s *SheetsService) ReplaceConfirmedBookings(ctx context.Context, bookings []models.ConfirmedBooking) error {
	clearRange := bookingsSheet + "!A:Z"
	_, err := s.service.Spreadsheets.Values.Clear(s.bookingsSheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear bookings sheet: %v", err)
	}

	values := [][]interface{}{bookingHeaders}
	for i := range bookings {
		values = append(values, bookingRowValues(&bookings[i]))
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err = s.service.Spreadsheets.Values.Update(s.bookingsSheetID, bookingsSheet+"!A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update bookings sheet: %v", err)
	}
	return nil
}

func bookingRowValues(booking *models.ConfirmedBooking) []interface{} {
	return []interface{}{
		booking.ID,
		booking.SelectedRoom.RoomName,
		booking.RoomType,
		booking.CheckIn,
		booking.CheckOut,
		booking.GuestCount,
		booking.SelectedRoom.TotalPrice,
		booking.ConfirmedAt.Format("2006-01-02 15:04:05"),
	}
}
