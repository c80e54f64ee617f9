package models

import "time"

// RoomOption is one priced offer computed for an inquiry. Options are value
// objects: they are recomputed per inquiry and only ever persisted as part
// of a booking record.
type RoomOption struct {
	RoomName     string   `json:"room_name"`
	Category     string   `json:"category"`
	Capacity     int      `json:"capacity"`
	PricePerUnit float64  `json:"price_per_unit"`
	TotalPrice   float64  `json:"total_price"`
	Units        int      `json:"units"`
	UnitKind     string   `json:"unit_kind"` // "night" or "day"
	Features     []string `json:"features,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// BookingInquiry is the validated form of an extracted request. It is
// transient: invalid inquiries never reach the ledger.
type BookingInquiry struct {
	RoomType        string    `json:"room_type"` // hotel, meeting
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	GuestCount      int       `json:"guest_count"`
	IncludeCatering bool      `json:"include_catering"`
	RawText         string    `json:"raw_text,omitempty"`
}

// Units returns the stay length in whole calendar days.
func (i BookingInquiry) Units() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24)
}

// PendingBooking is a durable, not yet confirmed booking holding every
// option offered at inquiry time. Never mutated; removed from the pending
// partition exactly once, on confirmation.
type PendingBooking struct {
	ID              string       `json:"id"`
	RoomType        string       `json:"room_type"`
	CheckIn         string       `json:"check_in"`
	CheckOut        string       `json:"check_out"`
	GuestCount      int          `json:"guest_count"`
	IncludeCatering bool         `json:"include_catering"`
	RawText         string       `json:"raw_text,omitempty"`
	Options         []RoomOption `json:"options"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ConfirmedBooking is terminal and append-only. It carries the pending
// record's identifier forward and exactly one of its offered options,
// copied by value so the price never shifts after confirmation.
type ConfirmedBooking struct {
	ID              string     `json:"id"`
	RoomType        string     `json:"room_type"`
	CheckIn         string     `json:"check_in"`
	CheckOut        string     `json:"check_out"`
	GuestCount      int        `json:"guest_count"`
	IncludeCatering bool       `json:"include_catering"`
	RawText         string     `json:"raw_text,omitempty"`
	SelectedRoom    RoomOption `json:"selected_room"`
	ConfirmedAt     time.Time  `json:"confirmed_at"`
}

// OptionByRoomName returns the offered option matching the room name.
func (p *PendingBooking) OptionByRoomName(name string) (RoomOption, bool) {
	for _, opt := range p.Options {
		if opt.RoomName == name {
			return opt, true
		}
	}
	return RoomOption{}, false
}
