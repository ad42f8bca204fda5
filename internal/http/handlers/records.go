package handlers

import (
	"net/http"
	"net/url"

	"busstation/internal/http/middleware"
	"busstation/internal/http/views"
	"busstation/internal/registry"
	"busstation/internal/services"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves the generic list/add/edit/delete pages for every table.
type RecordHandler struct {
	Records services.RecordService
}

func NewRecordHandler(records services.RecordService) *RecordHandler {
	return &RecordHandler{Records: records}
}

func (h *RecordHandler) svc(c *gin.Context) services.RecordService {
	return h.Records.WithRequestID(middleware.GetRequestID(c))
}

func listURL(name string) string {
	return "/table/" + url.PathEscape(name)
}

// GET /
func (h *RecordHandler) Index(c *gin.Context) {
	names := registry.Names()
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"tables": names})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Bus station", "Tables": names})
}

// GET /table/:name
func (h *RecordHandler) List(c *gin.Context) {
	t, recs, err := h.svc(c).List(c.Request.Context(), c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"table": t.Name, "fields": t.Fields, "records": recs})
		return
	}
	c.HTML(http.StatusOK, "table.html", gin.H{
		"Title": t.Name,
		"Table": t,
		"Rows":  views.Rows(recs),
	})
}

// GET /add/:name
func (h *RecordHandler) AddForm(c *gin.Context) {
	t, err := h.Records.Describe(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"table": t.Name, "fields": t.Fields})
		return
	}
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Title":  "Add " + t.Name,
		"Table":  t,
		"Fields": views.FormFields(t, nil),
		"Action": "/add/" + url.PathEscape(t.Name),
	})
}

// POST /add/:name
func (h *RecordHandler) Add(c *gin.Context) {
	name := c.Param("name")
	if _, err := h.Records.Describe(name); err != nil {
		RespondDomainError(c, err)
		return
	}
	get, err := submittedValues(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	t, rec, err := h.svc(c).Create(c.Request.Context(), name, get)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusCreated, rec)
		return
	}
	c.Redirect(http.StatusFound, listURL(t.Name))
}

// GET /edit/:name/:id
func (h *RecordHandler) EditForm(c *gin.Context) {
	t, err := h.Records.Describe(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	id, err := parseID(c, t.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	_, rec, err := h.svc(c).Get(c.Request.Context(), t.Name, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, rec)
		return
	}
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Title":  "Edit " + t.Name,
		"Table":  t,
		"Fields": views.FormFields(t, rec),
		"Action": "/edit/" + url.PathEscape(t.Name) + "/" + c.Param("id"),
	})
}

// POST /edit/:name/:id
func (h *RecordHandler) Edit(c *gin.Context) {
	t, err := h.Records.Describe(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	id, err := parseID(c, t.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	get, err := submittedValues(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	_, rec, err := h.svc(c).Update(c.Request.Context(), t.Name, id, get)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, rec)
		return
	}
	c.Redirect(http.StatusFound, listURL(t.Name))
}

// POST /delete/:name/:id
func (h *RecordHandler) Delete(c *gin.Context) {
	t, err := h.Records.Describe(c.Param("name"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	id, err := parseID(c, t.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := h.svc(c).Delete(c.Request.Context(), t.Name, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "record deleted", "table": t.Name, "id": id})
		return
	}
	c.Redirect(http.StatusFound, listURL(t.Name))
}
