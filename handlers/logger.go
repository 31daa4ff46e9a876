package handlers

import (
	"errors"
	"io"
	"strconv"

	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger set by the request logger
// middleware, or the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, utils.ValidationError("Invalid " + name + ": must be a positive integer")
	}
	return id, nil
}

// bindBody decodes a JSON or urlencoded form body, chosen by Content-Type.
// An empty body leaves dst untouched so the service reports the missing fields.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		getLogger(c).Warn("Invalid request body", zap.Error(err))
		return utils.ValidationError("Invalid request body")
	}
	return nil
}

func pageFrom(c *gin.Context, defaultLimit int) listquery.Page {
	return listquery.ParsePage(c.Query("limit"), c.Query("offset"), defaultLimit)
}

func listParams(c *gin.Context, defaultLimit int) models.ListParams {
	page := pageFrom(c, defaultLimit)
	return models.ListParams{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
}

// writeList sends a page of results with count and pagination metadata.
func writeList[T any](c *gin.Context, res listquery.Result[T], page listquery.Page) {
	utils.JSONOK(c, res.Items,
		utils.WithCount(res.Total),
		utils.WithPagination(page.Limit, page.Offset, res.Total))
}
