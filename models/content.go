package models

import "time"

// Content kinds as they appear in routes and statistics.
const (
	KindDuas  = "duas"
	KindRuqya = "ruqya"
	KindBooks = "books"
)

// DefaultCategory is applied when a create request leaves category empty.
const DefaultCategory = "general"

// ContentBase holds the fields shared by every content item.
type ContentBase struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b ContentBase) GetID() int              { return b.ID }
func (b ContentBase) GetTitle() string        { return b.Title }
func (b ContentBase) GetCategory() string     { return b.Category }
func (b ContentBase) GetCreatedAt() time.Time { return b.CreatedAt }
func (b *ContentBase) SetID(id int)           { b.ID = id }

func (b *ContentBase) Touch(now time.Time, created bool) {
	if created {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// ContentItem is implemented by Dua, RuqyaVideo and Book.
type ContentItem interface {
	GetID() int
	GetTitle() string
	GetCategory() string
	GetCreatedAt() time.Time
}

// Dua is a supplication with its Arabic text and translation.
type Dua struct {
	ContentBase
	Arabic      string  `json:"arabic"`
	Translation string  `json:"translation"`
	AudioURL    *string `json:"audioUrl"`
}

// RuqyaVideo is a recorded ruqya recitation.
type RuqyaVideo struct {
	ContentBase
	Description string  `json:"description"`
	VideoURL    string  `json:"videoUrl"`
	Duration    string  `json:"duration"`
	Thumbnail   *string `json:"thumbnail"`
}

// Book is a downloadable PDF title.
type Book struct {
	ContentBase
	Author      string  `json:"author"`
	Description string  `json:"description"`
	PDFURL      string  `json:"pdfUrl"`
	CoverImage  *string `json:"coverImage"`
	Pages       int     `json:"pages"`
}

// ListParams are the common list query options for content and users.
type ListParams struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type CreateDuaRequest struct {
	Title       string  `json:"title" form:"title"`
	Arabic      string  `json:"arabic" form:"arabic"`
	Translation string  `json:"translation" form:"translation"`
	Category    string  `json:"category" form:"category"`
	AudioURL    *string `json:"audioUrl" form:"audioUrl"`
}

type CreateRuqyaRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	VideoURL    string  `json:"videoUrl" form:"videoUrl"`
	Duration    string  `json:"duration" form:"duration"`
	Category    string  `json:"category" form:"category"`
	Thumbnail   *string `json:"thumbnail" form:"thumbnail"`
}

type CreateBookRequest struct {
	Title       string  `json:"title" form:"title"`
	Author      string  `json:"author" form:"author"`
	Description string  `json:"description" form:"description"`
	PDFURL      string  `json:"pdfUrl" form:"pdfUrl"`
	CoverImage  *string `json:"coverImage" form:"coverImage"`
	Category    string  `json:"category" form:"category"`
	Pages       int     `json:"pages" form:"pages"`
}

// ContentStats summarizes the content collections.
type ContentStats struct {
	Duas       int                 `json:"duas"`
	Ruqya      int                 `json:"ruqya"`
	Books      int                 `json:"books"`
	Total      int                 `json:"total"`
	Categories map[string][]string `json:"categories"`
}
