package frontend_domain

import (
	"html/template"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

type HomePageData struct {
	FeaturedRooms []domain.Room
	AverageRating float64
	HasRating     bool
	Contact       *domain.ContactInfo
}

type RoomsPageData struct {
	Rooms        []domain.Room
	RoomTypes    []domain.RoomType
	SelectedType domain.RoomType
	CheckIn      string
	CheckOut     string
}

type RoomPageData struct {
	Room domain.Room
}

type BookingFormData struct {
	Room  *domain.Room
	Rooms []domain.Room // choices when no room was picked
	Form  api.CreateBookingRequest
}

type BookingConfirmationData struct {
	Booking domain.Booking
	Nights  int
}

type BookingLookupData struct {
	Query    string
	Searched bool
	Bookings []domain.Booking
}

type MenuPageData struct {
	Items      []domain.MenuItem
	Categories []string
	Selected   string
}

type GalleryPageData struct {
	Images     []domain.GalleryImage
	Categories []string
	Selected   string
}

type BlogCard struct {
	Post    domain.BlogPost
	Excerpt string
}

type BlogListPageData struct {
	Posts []BlogCard
	Query string
}

type BlogPostPageData struct {
	Post domain.BlogPost
	Body template.HTML
}

type FeedbackPageData struct {
	Feedback      []domain.Feedback
	AverageRating float64
	HasRating     bool
	Form          api.CreateFeedbackRequest
}

type ContactPageData struct {
	Info *domain.ContactInfo
	Form api.ContactFormRequest
}

type ResetPasswordPageData struct {
	Token string
}

type OtpPageData struct {
	PhoneNumber string
	CodeSent    bool
}

type ProfilePageData struct {
	User domain.User
}

type ErrorPageData struct {
	Title   string
	Message string
}
