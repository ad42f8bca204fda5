package handlers

import (
	"encoding/json"
	"strconv"

	"busstation/internal/domain"
	"busstation/internal/registry"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// wantsJSON reports whether the client prefers JSON over HTML. Browsers and
// clients without an Accept header get HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) == binding.MIMEJSON
}

// parseID reads the :id path segment. Anything but a positive integer is a
// missing record.
func parseID(c *gin.Context, table string) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NotFoundError{Resource: table, Err: err}
	}
	return id, nil
}

// submittedValues returns a getter over the request body: a JSON object for
// JSON requests, form fields otherwise. JSON fields must be strings or numbers.
func submittedValues(c *gin.Context) (registry.Getter, error) {
	if c.ContentType() != binding.MIMEJSON {
		return c.GetPostForm, nil
	}
	if c.Request.Body == nil {
		return nil, domain.ValidationError{Msg: "empty body"}
	}
	var body map[string]any
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, domain.ValidationError{Msg: "invalid JSON payload", Err: err}
	}
	return func(field string) (string, bool) {
		// anything but a string or number counts as absent
		switch x := body[field].(type) {
		case string:
			return x, true
		case json.Number:
			return x.String(), true
		default:
			return "", false
		}
	}, nil
}
