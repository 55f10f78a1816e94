package domain

import "strings"

type Room struct {
	Id            RoomId   `json:"id"`
	Name          string   `json:"name"`
	Type          RoomType `json:"type"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxOccupancy  int      `json:"maxOccupancy"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   bool     `json:"isAvailable"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// RoomTypeAll disables the room type filter.
const RoomTypeAll = "All"

// RoomTypes are the filter buttons shown on the rooms page.
var RoomTypes = []RoomType{RoomTypeAll, "Standard", "Deluxe", "Suite"}

// FilterRoomsByType keeps rooms whose type matches roomType, ignoring case.
// An empty type or RoomTypeAll returns rooms unchanged.
func FilterRoomsByType(rooms []Room, roomType RoomType) []Room {
	if roomType == "" || strings.EqualFold(roomType, RoomTypeAll) {
		return rooms
	}
	filtered := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		if strings.EqualFold(room.Type, roomType) {
			filtered = append(filtered, room)
		}
	}
	return filtered
}

// CoverImage returns the first image of the room or an empty string.
func (r Room) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}
