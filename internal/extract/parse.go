package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gasthof/internal/models"
)

// extractionResponse matches the JSON schema the prompt asks the
// model to produce.
type extractionResponse struct {
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	GuestCount      int    `json:"guest_count"`
	IncludeCatering bool   `json:"include_catering"`
	Notes           string `json:"notes"`
}

func buildExtractionPrompt(freeText string, today time.Time) string {
	return fmt.Sprintf(`You are the booking assistant of a hotel. Extract the booking request below into JSON.

Today's date is %s. Resolve relative dates ("next Friday", "in two weeks") against it.

Respond with ONLY a JSON object in this exact shape:
{
  "room_type": "hotel" or "meeting",
  "check_in": "YYYY-MM-DD",
  "check_out": "YYYY-MM-DD",
  "guest_count": <integer>,
  "include_catering": <boolean, meeting rooms only>,
  "notes": "<anything the guest asked for beyond the fields above>"
}

Use "meeting" only when the request is about a conference, seminar or event space. Leave fields you cannot determine empty ("" or 0).

Request:
%s`, today.Format(models.DateLayout), freeText)
}

// parseInquiry decodes a model response, tolerating markdown code
// fences around the JSON body.
func parseInquiry(raw string) (*models.ExtractedInquiry, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var resp extractionResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}

	return &models.ExtractedInquiry{
		RoomType:        strings.ToLower(strings.TrimSpace(resp.RoomType)),
		CheckIn:         strings.TrimSpace(resp.CheckIn),
		CheckOut:        strings.TrimSpace(resp.CheckOut),
		GuestCount:      resp.GuestCount,
		IncludeCatering: resp.IncludeCatering,
		Notes:           strings.TrimSpace(resp.Notes),
	}, nil
}
