package admin_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var activityLog services.ActivityRecorder

func Init(recorder services.ActivityRecorder) {
	activityLog = recorder
}

// GetActivityLogs godoc
// @Summary Recent admin activity
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Entries to return (default: 50, max: 200)"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 200 {
		limit = 200
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, err := activityLog.Recent(ctx, limit)
	if err != nil {
		utils.Log.Errorf("[admin.activity] failed to list: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity logs retrieved successfully", logs))
}
