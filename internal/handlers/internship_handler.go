package handlers

import (
	"net/http"

	"interntrack_backend/internal/services"
	"interntrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService services.InternshipService
}

func NewInternshipHandler(base *BaseHandler, internshipService services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:       base,
		internshipService: internshipService,
	}
}

// RegisterRoutes mounts the record routes; every one of them runs behind
// the auth guard. /statistics is registered before /:id so it is not
// captured as a record id.
func (h *InternshipHandler) RegisterRoutes(rg *gin.RouterGroup, authGuard gin.HandlerFunc) {
	internships := rg.Group("/internships")
	internships.Use(authGuard)
	{
		internships.POST("", h.Create)
		internships.GET("", h.List)
		internships.GET("/statistics", h.Statistics)
		internships.GET("/:id", h.Get)
		internships.PUT("/:id", h.Update)
		internships.DELETE("/:id", h.Delete)
	}
}

func (h *InternshipHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Internship added successfully",
		"internship": internship,
	})
}

func (h *InternshipHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var query dto.ListInternshipsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	internships, err := h.internshipService.List(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(internships),
		"internships": internships,
	})
}

func (h *InternshipHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	internship, err := h.internshipService.Get(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"internship": internship,
	})
}

func (h *InternshipHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Internship updated successfully",
		"internship": internship,
	})
}

func (h *InternshipHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.internshipService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Internship deleted successfully",
	})
}

func (h *InternshipHandler) Statistics(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	stats, err := h.internshipService.Statistics(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}
