package groups

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

const msgNotFound = "Group not found or user not authorized"

// Handler handles item group requests
type Handler struct{}

// NewHandler creates a new groups handler
func NewHandler() *Handler {
	return &Handler{}
}

// GroupRequest is the body of create and update
type GroupRequest struct {
	GroupName   string `json:"group_name" validate:"required"`
	Description string `json:"description"`
}

// StorageAreaRef is a storage area a group is linked to
type StorageAreaRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupResponse represents a group in list responses
type GroupResponse struct {
	ID           string           `json:"id"`
	GroupName    string           `json:"group_name"`
	Description  string           `json:"description"`
	StorageAreas []StorageAreaRef `json:"storage_areas"`
}

func (req *GroupRequest) name() (string, error) {
	name := strings.TrimSpace(req.GroupName)
	if name == "" {
		return "", api.Validation("group_name is required")
	}
	return name, nil
}

// List returns the caller's groups with the storage areas each is linked to
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} GroupResponse
// @Failure 401 {object} api.MessageBody "Authentication required"
// @Security BearerAuth
// @Router /groups [get]
func (h *Handler) List(r *api.Request) (*api.Response, error) {
	type groupRow struct {
		ID              string
		GroupName       string
		Description     string
		StorageAreaID   *string
		StorageAreaName *string
	}

	// One statement, so the result is a single consistent snapshot.
	var rows []groupRow
	err := r.Store().Table("item_groups").
		Select("item_groups.id, item_groups.group_name, item_groups.description, " +
			"storage_areas.id AS storage_area_id, storage_areas.name AS storage_area_name").
		Joins("LEFT JOIN storage_area_groups ON storage_area_groups.group_id = item_groups.id").
		Joins("LEFT JOIN storage_areas ON storage_areas.id = storage_area_groups.storage_area_id").
		Where("item_groups.user_id = ?", r.UserID()).
		Order("item_groups.group_name ASC, item_groups.id ASC, storage_areas.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, api.ServerError(err)
	}

	groups := []GroupResponse{}
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].ID != row.ID {
			groups = append(groups, GroupResponse{
				ID:           row.ID,
				GroupName:    row.GroupName,
				Description:  row.Description,
				StorageAreas: []StorageAreaRef{},
			})
		}
		if row.StorageAreaID != nil {
			last := &groups[len(groups)-1]
			ref := StorageAreaRef{ID: *row.StorageAreaID}
			if row.StorageAreaName != nil {
				ref.Name = *row.StorageAreaName
			}
			last.StorageAreas = append(last.StorageAreas, ref)
		}
	}

	return api.OK(groups), nil
}

// Create adds a group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body GroupRequest true "Group details"
// @Success 200 {object} models.ItemGroup
// @Failure 400 {object} api.MessageBody "Validation error"
// @Security BearerAuth
// @Router /groups [post]
func (h *Handler) Create(r *api.Request) (*api.Response, error) {
	var req GroupRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	name, err := req.name()
	if err != nil {
		return nil, err
	}

	group := models.ItemGroup{
		UserID:      r.UserID(),
		GroupName:   name,
		Description: req.Description,
	}
	if err := r.Store().Create(&group).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(group), nil
}

// Update replaces a group's name and description
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body GroupRequest true "Group details"
// @Success 200 {object} models.ItemGroup
// @Failure 400 {object} api.MessageBody "Validation error"
// @Failure 404 {object} api.MessageBody "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *Handler) Update(r *api.Request) (*api.Response, error) {
	var req GroupRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	name, err := req.name()
	if err != nil {
		return nil, err
	}

	db := r.Store()
	id := r.Param("id")

	result := db.Model(&models.ItemGroup{}).
		Where("id = ? AND user_id = ?", id, r.UserID()).
		Updates(map[string]interface{}{
			"group_name":  name,
			"description": req.Description,
		})
	if result.Error != nil {
		return nil, api.ServerError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgNotFound)
	}

	var group models.ItemGroup
	if err := db.Where("id = ?", id).First(&group).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(group), nil
}

// Delete un-groups the caller's items and removes the group in one transaction
// @Summary Delete a group
// @Description Items in the group are kept with no group.
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} api.MessageBody
// @Failure 404 {object} api.MessageBody "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *Handler) Delete(r *api.Request) (*api.Response, error) {
	id := r.Param("id")
	userID := r.UserID()

	err := r.Store().Transaction(func(tx *gorm.DB) error {
		var group models.ItemGroup
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&group).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return api.NotFound(msgNotFound)
			}
			return err
		}

		if err := tx.Model(&models.Item{}).
			Where("group_id = ? AND user_id = ?", id, userID).
			Update("group_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ItemGroup{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return api.NotFound(msgNotFound)
		}
		return nil
	})
	if err != nil {
		if api.KindOf(err) == api.KindNotFound {
			return nil, err
		}
		return nil, api.ServerError(err)
	}

	return api.Message(http.StatusOK, "Group deleted and items un-grouped"), nil
}

// Routes returns the group routes.
func (h *Handler) Routes() []api.Route {
	return []api.Route{
		{Method: http.MethodGet, Path: "/groups", Protected: true, Handler: h.List},
		{Method: http.MethodPost, Path: "/groups", Protected: true, Handler: h.Create},
		{Method: http.MethodPut, Path: "/groups/:id", Protected: true, Handler: h.Update},
		{Method: http.MethodDelete, Path: "/groups/:id", Protected: true, Handler: h.Delete},
	}
}
