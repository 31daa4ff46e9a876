package handlers

import (
	"islamicdashboard/models"
	"islamicdashboard/services/admin"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves /api/admin.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Dashboard())
}

func (h *AdminHandler) HealthHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Health())
}

func (h *AdminHandler) ContentStatsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.ContentStats())
}

func (h *AdminHandler) UserAnalyticsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.UserAnalytics())
}

func (h *AdminHandler) ContentAnalyticsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.ContentAnalytics())
}

func (h *AdminHandler) GetSettingsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Settings())
}

// UpdateSettingsHandler handles PUT /api/admin/settings. Omitted flags keep their value.
func (h *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	var req models.SettingsUpdate
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, h.Service.UpdateSettings(req), utils.WithMessage("System settings updated successfully"))
}

func (h *AdminHandler) BackupHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.CreateBackup(), utils.WithMessage("Backup completed successfully"))
}

func (h *AdminHandler) BackupsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.Backups())
}

// LogsHandler handles GET /api/admin/logs?level=&limit=&offset=.
func (h *AdminHandler) LogsHandler(c *gin.Context) {
	page := pageFrom(c, admin.DefaultLogLimit)
	res := h.Service.Logs(c.DefaultQuery("level", admin.LevelAll), page)
	utils.JSONOK(c, res.Items, utils.WithPagination(page.Limit, page.Offset, res.Total))
}
