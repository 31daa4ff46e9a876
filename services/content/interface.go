package content

import (
	"time"

	contentRepo "islamicdashboard/database/repository/content"
	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"go.uber.org/zap"
)

// DefaultListLimit is the page size when a content list request omits limit.
const DefaultListLimit = 50

// ContentService defines the content catalogue operations.
type ContentService interface {
	ListDuas(params models.ListParams) listquery.Result[models.Dua]
	GetDua(id int) (models.Dua, error)
	CreateDua(req models.CreateDuaRequest) (models.Dua, error)

	ListRuqya(params models.ListParams) listquery.Result[models.RuqyaVideo]
	GetRuqya(id int) (models.RuqyaVideo, error)
	CreateRuqya(req models.CreateRuqyaRequest) (models.RuqyaVideo, error)

	ListBooks(params models.ListParams) listquery.Result[models.Book]
	GetBook(id int) (models.Book, error)
	CreateBook(req models.CreateBookRequest) (models.Book, error)

	Stats() models.ContentStats
}

// DefaultContentService is the in-memory implementation.
type DefaultContentService struct {
	Repo   contentRepo.ContentRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewDefaultContentService(repo contentRepo.ContentRepository) *DefaultContentService {
	return &DefaultContentService{
		Repo:   repo,
		logger: utils.Named("content"),
		now:    time.Now,
	}
}
