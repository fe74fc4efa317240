package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/respond"
)

// Handler wires the catalogue CRUD endpoints to a Repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalogue routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/branches", h.listBranches)
	rg.POST("/branches", h.createBranch)
	rg.PUT("/branches/:id", h.updateBranch)
	rg.DELETE("/branches/:id", h.deleteBranch)

	rg.GET("/domains", h.listDomains)
	rg.POST("/domains", h.createDomain)
	rg.PUT("/domains/:id", h.updateDomain)
	rg.DELETE("/domains/:id", h.deleteDomain)

	rg.GET("/skills", h.listSkills)
	rg.POST("/skills", h.createSkill)
	rg.PUT("/skills/:id", h.updateSkill)
	rg.DELETE("/skills/:id", h.deleteSkill)

	rg.GET("/job-roles", h.listRoles)
	rg.POST("/job-roles", h.createRole)
	rg.PUT("/job-roles/:id", h.updateRole)
	rg.DELETE("/job-roles/:id", h.deleteRole)

	rg.GET("/job-role-skills", h.listRoleSkills)
	rg.POST("/job-role-skills", h.createRoleSkill)
	rg.DELETE("/job-role-skills/:roleID/:skillID", h.deleteRoleSkill)
}

type createBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) listBranches(c *gin.Context) {
	limit, offset := pageParams(c)
	branches, err := h.Repo.ListBranches(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list branches", nil)
		return
	}
	respond.OK(c, emptyAsList(branches))
}

func (h *Handler) createBranch(c *gin.Context) {
	var req createBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	branch, err := h.Repo.CreateBranch(c.Request.Context(), Branch{Name: req.Name})
	if err != nil {
		writeStoreError(c, err, "branch")
		return
	}
	respond.JSON(c, http.StatusCreated, branch)
}

func (h *Handler) updateBranch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd BranchUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	branch, err := h.Repo.UpdateBranch(c.Request.Context(), id, upd)
	if err != nil {
		writeStoreError(c, err, "branch")
		return
	}
	respond.OK(c, branch)
}

func (h *Handler) deleteBranch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.DeleteBranch(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "branch")
		return
	}
	respond.OK(c, gin.H{"deleted": id})
}

type createDomainRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BranchID    int64  `json:"branchId" binding:"required"`
}

func (h *Handler) listDomains(c *gin.Context) {
	limit, offset := pageParams(c)
	domains, err := h.Repo.ListDomains(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list domains", nil)
		return
	}
	respond.OK(c, emptyAsList(domains))
}

func (h *Handler) createDomain(c *gin.Context) {
	var req createDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	domain, err := h.Repo.CreateDomain(c.Request.Context(), Domain{
		Name:        req.Name,
		Description: req.Description,
		BranchID:    req.BranchID,
	})
	if err != nil {
		writeStoreError(c, err, "domain")
		return
	}
	respond.JSON(c, http.StatusCreated, domain)
}

func (h *Handler) updateDomain(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd DomainUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	domain, err := h.Repo.UpdateDomain(c.Request.Context(), id, upd)
	if err != nil {
		writeStoreError(c, err, "domain")
		return
	}
	respond.OK(c, domain)
}

func (h *Handler) deleteDomain(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.DeleteDomain(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "domain")
		return
	}
	respond.OK(c, gin.H{"deleted": id})
}

type createSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) listSkills(c *gin.Context) {
	limit, offset := pageParams(c)
	skills, err := h.Repo.ListSkills(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list skills", nil)
		return
	}
	respond.OK(c, emptyAsList(skills))
}

func (h *Handler) createSkill(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	skill, err := h.Repo.CreateSkill(c.Request.Context(), Skill{Name: req.Name})
	if err != nil {
		writeStoreError(c, err, "skill")
		return
	}
	respond.JSON(c, http.StatusCreated, skill)
}

func (h *Handler) updateSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd SkillUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	skill, err := h.Repo.UpdateSkill(c.Request.Context(), id, upd)
	if err != nil {
		writeStoreError(c, err, "skill")
		return
	}
	respond.OK(c, skill)
}

func (h *Handler) deleteSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.DeleteSkill(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "skill")
		return
	}
	respond.OK(c, gin.H{"deleted": id})
}

type createRoleRequest struct {
	Title       string `json:"title" binding:"required"`
	DomainID    int64  `json:"domainId" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) listRoles(c *gin.Context) {
	limit, offset := pageParams(c)
	roles, err := h.Repo.ListRoles(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list job roles", nil)
		return
	}
	respond.OK(c, emptyAsList(roles))
}

func (h *Handler) createRole(c *gin.Context) {
	var req createRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	role, err := h.Repo.CreateRole(c.Request.Context(), JobRole{
		Title:       req.Title,
		DomainID:    req.DomainID,
		Description: req.Description,
	})
	if err != nil {
		writeStoreError(c, err, "job role")
		return
	}
	respond.JSON(c, http.StatusCreated, role)
}

func (h *Handler) updateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd JobRoleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	role, err := h.Repo.UpdateRole(c.Request.Context(), id, upd)
	if err != nil {
		writeStoreError(c, err, "job role")
		return
	}
	respond.OK(c, role)
}

func (h *Handler) deleteRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Repo.DeleteRole(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "job role")
		return
	}
	respond.OK(c, gin.H{"deleted": id})
}

type createRoleSkillRequest struct {
	RoleID  int64 `json:"roleId" binding:"required"`
	SkillID int64 `json:"skillId" binding:"required"`
}

func (h *Handler) listRoleSkills(c *gin.Context) {
	limit, offset := pageParams(c)
	links, err := h.Repo.ListRoleSkills(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list role-skill links", nil)
		return
	}
	respond.OK(c, emptyAsList(links))
}

func (h *Handler) createRoleSkill(c *gin.Context) {
	var req createRoleSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	link := RoleSkillLink{RoleID: req.RoleID, SkillID: req.SkillID}
	if err := h.Repo.CreateRoleSkill(c.Request.Context(), link); err != nil {
		writeStoreError(c, err, "role-skill link")
		return
	}
	respond.JSON(c, http.StatusCreated, link)
}

func (h *Handler) deleteRoleSkill(c *gin.Context) {
	roleID, ok := pathID(c, "roleID")
	if !ok {
		return
	}
	skillID, ok := pathID(c, "skillID")
	if !ok {
		return
	}
	if err := h.Repo.DeleteRoleSkill(c.Request.Context(), roleID, skillID); err != nil {
		writeStoreError(c, err, "role-skill link")
		return
	}
	respond.OK(c, gin.H{"deletedRoleId": roleID, "deletedSkillId": skillID})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid id", nil)
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit = 100
	offset = 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

func writeStoreError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", entity+" not found", nil)
	case errors.Is(err, ErrExists):
		respond.Error(c, http.StatusConflict, "conflict", entity+" already exists", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to write "+entity, nil)
	}
}

// emptyAsList keeps list responses as [] instead of null.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
