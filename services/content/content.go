package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"islamicdashboard/database/repository"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// listContent runs the shared filter/search/sort/paginate pipeline over one content kind.
func listContent[T models.ContentItem](items []T, params models.ListParams, fields func(T) []string) listquery.Result[T] {
	return listquery.Run(items, listquery.Query[T]{
		Filters:      []listquery.Filter[T]{listquery.FieldEquals(params.Category, func(t T) string { return t.GetCategory() })},
		Search:       params.Search,
		SearchFields: fields,
		SortKey:      func(t T) time.Time { return t.GetCreatedAt() },
		Page:         listquery.Page{Limit: params.Limit, Offset: params.Offset},
	})
}

func lookupErr(kind string, id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundError(kind + " not found")
	}
	return utils.InternalError(fmt.Sprintf("Failed to fetch %s", strings.ToLower(kind)), fmt.Errorf("lookup %d: %w", id, err))
}

func categoryOrDefault(category string) string {
	if strings.TrimSpace(category) == "" {
		return models.DefaultCategory
	}
	return category
}

func (s *DefaultContentService) ListDuas(params models.ListParams) listquery.Result[models.Dua] {
	return listContent(s.Repo.Duas().List(), params, func(d models.Dua) []string {
		return []string{d.Title, d.Translation}
	})
}

func (s *DefaultContentService) GetDua(id int) (models.Dua, error) {
	dua, err := s.Repo.Duas().FindByID(id)
	if err != nil {
		return models.Dua{}, lookupErr("Dua", id, err)
	}
	return dua, nil
}

func (s *DefaultContentService) CreateDua(req models.CreateDuaRequest) (models.Dua, error) {
	if req.Title == "" || req.Arabic == "" || req.Translation == "" {
		return models.Dua{}, utils.ValidationError("Title, Arabic text, and translation are required")
	}
	dua := s.Repo.Duas().Create(models.Dua{
		ContentBase: models.ContentBase{Title: req.Title, Category: categoryOrDefault(req.Category)},
		Arabic:      req.Arabic,
		Translation: req.Translation,
		AudioURL:    req.AudioURL,
	})
	s.logger.Info("Dua added", zap.Int("id", dua.ID), zap.String("category", dua.Category))
	return dua, nil
}

func (s *DefaultContentService) ListRuqya(params models.ListParams) listquery.Result[models.RuqyaVideo] {
	return listContent(s.Repo.Ruqya().List(), params, func(r models.RuqyaVideo) []string {
		return []string{r.Title, r.Description}
	})
}

func (s *DefaultContentService) GetRuqya(id int) (models.RuqyaVideo, error) {
	video, err := s.Repo.Ruqya().FindByID(id)
	if err != nil {
		return models.RuqyaVideo{}, lookupErr("Ruqya video", id, err)
	}
	return video, nil
}

func (s *DefaultContentService) CreateRuqya(req models.CreateRuqyaRequest) (models.RuqyaVideo, error) {
	if req.Title == "" || req.Description == "" || req.VideoURL == "" {
		return models.RuqyaVideo{}, utils.ValidationError("Title, description, and video URL are required")
	}
	duration := req.Duration
	if duration == "" {
		duration = "00:00"
	}
	video := s.Repo.Ruqya().Create(models.RuqyaVideo{
		ContentBase: models.ContentBase{Title: req.Title, Category: categoryOrDefault(req.Category)},
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Duration:    duration,
		Thumbnail:   req.Thumbnail,
	})
	s.logger.Info("Ruqya video added", zap.Int("id", video.ID), zap.String("category", video.Category))
	return video, nil
}

func (s *DefaultContentService) ListBooks(params models.ListParams) listquery.Result[models.Book] {
	return listContent(s.Repo.Books().List(), params, func(b models.Book) []string {
		return []string{b.Title, b.Author, b.Description}
	})
}

func (s *DefaultContentService) GetBook(id int) (models.Book, error) {
	book, err := s.Repo.Books().FindByID(id)
	if err != nil {
		return models.Book{}, lookupErr("Book", id, err)
	}
	return book, nil
}

func (s *DefaultContentService) CreateBook(req models.CreateBookRequest) (models.Book, error) {
	if req.Title == "" || req.Author == "" || req.Description == "" || req.PDFURL == "" {
		return models.Book{}, utils.ValidationError("Title, author, description, and PDF URL are required")
	}
	pages := req.Pages
	if pages < 0 {
		pages = 0
	}
	book := s.Repo.Books().Create(models.Book{
		ContentBase: models.ContentBase{Title: req.Title, Category: categoryOrDefault(req.Category)},
		Author:      req.Author,
		Description: req.Description,
		PDFURL:      req.PDFURL,
		CoverImage:  req.CoverImage,
		Pages:       pages,
	})
	s.logger.Info("Book added", zap.Int("id", book.ID), zap.String("category", book.Category))
	return book, nil
}

// Stats counts each kind and lists its categories in first-seen order.
func (s *DefaultContentService) Stats() models.ContentStats {
	duas := s.Repo.Duas().List()
	ruqya := s.Repo.Ruqya().List()
	books := s.Repo.Books().List()

	return models.ContentStats{
		Duas:  len(duas),
		Ruqya: len(ruqya),
		Books: len(books),
		Total: len(duas) + len(ruqya) + len(books),
		Categories: map[string][]string{
			models.KindDuas:  listquery.Distinct(duas, func(d models.Dua) string { return d.Category }),
			models.KindRuqya: listquery.Distinct(ruqya, func(r models.RuqyaVideo) string { return r.Category }),
			models.KindBooks: listquery.Distinct(books, func(b models.Book) string { return b.Category }),
		},
	}
}
