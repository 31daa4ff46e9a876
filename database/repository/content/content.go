package contentRepo

import (
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
)

type (
	DuaStore   = repository.Collection[models.Dua, *models.Dua]
	RuqyaStore = repository.Collection[models.RuqyaVideo, *models.RuqyaVideo]
	BookStore  = repository.Collection[models.Book, *models.Book]
)

// ContentRepository gives access to the three content collections.
type ContentRepository interface {
	Duas() *DuaStore
	Ruqya() *RuqyaStore
	Books() *BookStore
}

// MemoryContentRepo keeps content in process memory.
type MemoryContentRepo struct {
	duas  *DuaStore
	ruqya *RuqyaStore
	books *BookStore
}

// NewMemoryContentRepo creates the content collections, optionally loaded with sample items.
func NewMemoryContentRepo(withSamples bool) ContentRepository {
	if !withSamples {
		return &MemoryContentRepo{
			duas:  repository.NewCollection[models.Dua](),
			ruqya: repository.NewCollection[models.RuqyaVideo](),
			books: repository.NewCollection[models.Book](),
		}
	}
	now := time.Now()
	return &MemoryContentRepo{
		duas:  repository.NewCollection(sampleDuas(now)...),
		ruqya: repository.NewCollection(sampleRuqya(now)...),
		books: repository.NewCollection(sampleBooks(now)...),
	}
}

func (r *MemoryContentRepo) Duas() *DuaStore    { return r.duas }
func (r *MemoryContentRepo) Ruqya() *RuqyaStore { return r.ruqya }
func (r *MemoryContentRepo) Books() *BookStore  { return r.books }

func base(id int, title, category string, now time.Time) models.ContentBase {
	return models.ContentBase{ID: id, Title: title, Category: category, CreatedAt: now, UpdatedAt: now}
}

func strPtr(s string) *string { return &s }

func sampleDuas(now time.Time) []models.Dua {
	return []models.Dua{
		{
			ContentBase: base(1, "Dua for Morning", "morning", now),
			Arabic:      "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ",
			Translation: "We have reached the morning and at this very time all sovereignty belongs to Allah",
		},
		{
			ContentBase: base(2, "Dua for Evening", "evening", now),
			Arabic:      "أَمْسَيْنَا وَأَمْسَى الْمُلْكُ لِلَّهِ",
			Translation: "We have reached the evening and at this very time all sovereignty belongs to Allah",
		},
	}
}

func sampleRuqya(now time.Time) []models.RuqyaVideo {
	return []models.RuqyaVideo{
		{
			ContentBase: base(1, "Ruqya for Protection", "protection", now),
			Description: "Powerful ruqya for protection from evil eye and black magic",
			VideoURL:    "https://example.com/ruqya-protection.mp4",
			Duration:    "15:30",
			Thumbnail:   strPtr("https://example.com/thumbnail1.jpg"),
		},
	}
}

func sampleBooks(now time.Time) []models.Book {
	return []models.Book{
		{
			ContentBase: base(1, "The Book of Tawheed", "aqeedah", now),
			Author:      "Muhammad ibn Abdul Wahhab",
			Description: "A comprehensive book about Islamic monotheism",
			PDFURL:      "https://example.com/tawheed.pdf",
			CoverImage:  strPtr("https://example.com/tawheed-cover.jpg"),
			Pages:       150,
		},
	}
}
