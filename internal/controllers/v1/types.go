package v1

import (
	"github.com/finwise/backend/internal/models"
)

type URIID struct {
	ID string `uri:"id" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the resource
}

// resourceURL returns the URL of the API v1 resource.
func resourceURL(base, collection, id string) string {
	return base + "/v1/" + collection + "/" + id
}

// contextURL is the key of the API base URL in the request context.
const contextURL = string(models.ContextURL)
