package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// Handlers set these to describe the resource they touched. The ID falls back
// to the :id route param.
const (
	ActivityResourceIDKey   = "activityResourceID"
	ActivityResourceNameKey = "activityResourceName"
)

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ActivityLoggingMiddleware records non-GET admin requests.
// Must be used after AdminAuthMiddleware.
func ActivityLoggingMiddleware(recorder services.ActivityRecorder, resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		email, ok := GetAdminEmailFromContext(c)
		if !ok {
			utils.Log.Warn("[activity-logging] admin info not in context")
			return
		}

		entry := &models.ActivityLog{
			AdminEmail:   email,
			Action:       activityAction(c, resourceType),
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			Status:       models.ActivityStatusSuccess,
			StatusCode:   c.Writer.Status(),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if id := c.GetString(ActivityResourceIDKey); id != "" {
			entry.ResourceID = id
		}
		if name, exists := c.Get(ActivityResourceNameKey); exists {
			entry.ResourceName, _ = name.(string)
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			entry.Status = models.ActivityStatusFailed
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Record(ctx, entry); err != nil {
			utils.Log.Errorf("[activity-logging] failed to record %s: %v", entry.Action, err)
		}
	}
}

// activityAction names the action from the route, e.g. "sent_invoice" for
// POST /invoices/:id/send and "created_invoice" for POST /invoices
func activityAction(c *gin.Context, resourceType string) string {
	route := strings.TrimSuffix(c.FullPath(), "/")
	last := route[strings.LastIndex(route, "/")+1:]
	switch last {
	case "send":
		return "sent_" + resourceType
	case "status":
		return "updated_" + resourceType + "_status"
	}
	verb, ok := methodToActionVerb[c.Request.Method]
	if !ok {
		verb = strings.ToLower(c.Request.Method)
	}
	return verb + "_" + resourceType
}
