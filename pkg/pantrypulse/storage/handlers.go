package storage

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

const (
	msgNotFound     = "Storage area not found or user not authorized"
	msgLinkNotFound = "Link not found or user not authorized"
)

// Handler handles storage area requests
type Handler struct{}

// NewHandler creates a new storage handler
func NewHandler() *Handler {
	return &Handler{}
}

// StorageAreaRequest is the body of create and update
type StorageAreaRequest struct {
	Name string `json:"name" validate:"required"`
}

// LinkGroupRequest links a group to a storage area
type LinkGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

func (req *StorageAreaRequest) name() (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", api.Validation("name is required")
	}
	return name, nil
}

// List returns the caller's storage areas
// @Summary List storage areas
// @Tags storage
// @Produce json
// @Success 200 {array} models.StorageArea
// @Failure 401 {object} api.MessageBody "Authentication required"
// @Security BearerAuth
// @Router /storage [get]
func (h *Handler) List(r *api.Request) (*api.Response, error) {
	areas := []models.StorageArea{}
	if err := r.Store().
		Where("user_id = ?", r.UserID()).
		Order("name ASC").
		Find(&areas).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(areas), nil
}

// Create adds a storage area
// @Summary Create a storage area
// @Tags storage
// @Accept json
// @Produce json
// @Param request body StorageAreaRequest true "Storage area details"
// @Success 200 {object} models.StorageArea
// @Failure 400 {object} api.MessageBody "Validation error"
// @Security BearerAuth
// @Router /storage [post]
func (h *Handler) Create(r *api.Request) (*api.Response, error) {
	var req StorageAreaRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	name, err := req.name()
	if err != nil {
		return nil, err
	}

	area := models.StorageArea{UserID: r.UserID(), Name: name}
	if err := r.Store().Create(&area).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(area), nil
}

// Update renames a storage area
// @Summary Update a storage area
// @Tags storage
// @Accept json
// @Produce json
// @Param id path string true "Storage area ID"
// @Param request body StorageAreaRequest true "Storage area details"
// @Success 200 {object} models.StorageArea
// @Failure 404 {object} api.MessageBody "Storage area not found"
// @Security BearerAuth
// @Router /storage/{id} [put]
func (h *Handler) Update(r *api.Request) (*api.Response, error) {
	var req StorageAreaRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	name, err := req.name()
	if err != nil {
		return nil, err
	}

	db := r.Store()
	id := r.Param("id")

	result := db.Model(&models.StorageArea{}).
		Where("id = ? AND user_id = ?", id, r.UserID()).
		Update("name", name)
	if result.Error != nil {
		return nil, api.ServerError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgNotFound)
	}

	var area models.StorageArea
	if err := db.Where("id = ?", id).First(&area).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(area), nil
}

// Delete removes a storage area together with its items and group links
// @Summary Delete a storage area
// @Description Items stored in the area and its group links are deleted too.
// @Tags storage
// @Produce json
// @Param id path string true "Storage area ID"
// @Success 200 {object} api.MessageBody
// @Failure 404 {object} api.MessageBody "Storage area not found"
// @Security BearerAuth
// @Router /storage/{id} [delete]
func (h *Handler) Delete(r *api.Request) (*api.Response, error) {
	result := r.Store().
		Where("id = ? AND user_id = ?", r.Param("id"), r.UserID()).
		Delete(&models.StorageArea{})
	if result.Error != nil {
		return nil, api.ServerError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgNotFound)
	}

	return api.Message(http.StatusOK, "Storage area deleted"), nil
}

// AddGroup links one of the caller's groups to one of their storage areas
// @Summary Link a group to a storage area
// @Tags storage
// @Accept json
// @Produce json
// @Param id path string true "Storage area ID"
// @Param request body LinkGroupRequest true "Group to link"
// @Success 200 {object} models.StorageAreaGroup
// @Failure 404 {object} api.MessageBody "Storage area or group not found"
// @Failure 409 {object} api.MessageBody "Already linked"
// @Security BearerAuth
// @Router /storage/{id}/groups [post]
func (h *Handler) AddGroup(r *api.Request) (*api.Response, error) {
	var req LinkGroupRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}

	db := r.Store()
	areaID := r.Param("id")

	var area models.StorageArea
	if err := db.Where("id = ? AND user_id = ?", areaID, r.UserID()).First(&area).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, api.NotFound(msgNotFound)
		}
		return nil, api.ServerError(err)
	}

	var group models.ItemGroup
	if err := db.Where("id = ? AND user_id = ?", req.GroupID, r.UserID()).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, api.NotFound("Group not found or user not authorized")
		}
		return nil, api.ServerError(err)
	}

	link := models.StorageAreaGroup{StorageAreaID: area.ID, GroupID: group.ID}
	if err := db.Create(&link).Error; err != nil {
		switch {
		case database.IsDuplicate(err):
			return nil, api.Conflict("Group is already linked to this storage area")
		case database.IsForeignKeyViolation(err):
			// Parent deleted between the checks and the insert.
			return nil, api.NotFound(msgNotFound)
		default:
			return nil, api.ServerError(err)
		}
	}

	return api.OK(link), nil
}

// RemoveGroup unlinks a group from a storage area
// @Summary Unlink a group from a storage area
// @Tags storage
// @Produce json
// @Param id path string true "Storage area ID"
// @Param group_id path string true "Group ID"
// @Success 200 {object} api.MessageBody
// @Failure 404 {object} api.MessageBody "Link not found"
// @Security BearerAuth
// @Router /storage/{id}/groups/{group_id} [delete]
func (h *Handler) RemoveGroup(r *api.Request) (*api.Response, error) {
	db := r.Store()
	owned := db.Model(&models.StorageArea{}).
		Select("id").
		Where("user_id = ?", r.UserID())

	result := db.
		Where("storage_area_id = ? AND group_id = ?", r.Param("id"), r.Param("group_id")).
		Where("storage_area_id IN (?)", owned).
		Delete(&models.StorageAreaGroup{})
	if result.Error != nil {
		return nil, api.ServerError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgLinkNotFound)
	}

	return api.Message(http.StatusOK, "Group removed from storage area"), nil
}

// Routes returns the storage area routes.
func (h *Handler) Routes() []api.Route {
	return []api.Route{
		{Method: http.MethodGet, Path: "/storage", Protected: true, Handler: h.List},
		{Method: http.MethodPost, Path: "/storage", Protected: true, Handler: h.Create},
		{Method: http.MethodPut, Path: "/storage/:id", Protected: true, Handler: h.Update},
		{Method: http.MethodDelete, Path: "/storage/:id", Protected: true, Handler: h.Delete},
		{Method: http.MethodPost, Path: "/storage/:id/groups", Protected: true, Handler: h.AddGroup},
		{Method: http.MethodDelete, Path: "/storage/:id/groups/:group_id", Protected: true, Handler: h.RemoveGroup},
	}
}
