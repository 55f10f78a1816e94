package domain

type MenuItem struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageUrl    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type GalleryImage struct {
	Id          int64  `json:"id"`
	ImageUrl    string `json:"imageUrl"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	UploadedAt  string `json:"uploadedAt"`
}

type BlogPost struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageUrl    string `json:"imageUrl,omitempty"`
	Author      string `json:"author"`
	Excerpt     string `json:"excerpt,omitempty"`
	IsPublished bool   `json:"isPublished"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Feedback struct {
	Id          int64  `json:"id"`
	GuestName   string `json:"guestName"`
	GuestEmail  Email  `json:"guestEmail,omitempty"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	IsApproved  bool   `json:"isApproved"`
	SubmittedAt string `json:"submittedAt"`
}

type ContactInfo struct {
	Id             int64  `json:"id"`
	Phone          string `json:"phone"`
	Email          Email  `json:"email"`
	Address        string `json:"address"`
	MapLink        string `json:"mapLink,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	OpeningHours   string `json:"openingHours,omitempty"`
	UpdatedAt      string `json:"updatedAt"`
}
