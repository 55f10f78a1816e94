package frontend_domain

import "github.com/Ghorpaderamdas/server-Hotel/shared/domain"

// RoomCardData is the typed data for the "room_card" template partial.
type RoomCardData struct {
	Room   domain.Room
	Common *CommonTemplateData
}
