package models

// ExtractedInquiry is the raw structured output of the language-extraction
// collaborator. Nothing here is trusted: the normalizer validates every
// field before it becomes a BookingInquiry.
type ExtractedInquiry struct {
	RoomType        string `json:"room_type"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	GuestCount      int    `json:"guest_count"`
	IncludeCatering bool   `json:"include_catering"`
	Notes           string `json:"notes,omitempty"`
}

// SearchResult is one scored chunk returned by the semantic-search
// collaborator.
type SearchResult struct {
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}
