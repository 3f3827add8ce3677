package items

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

const msgNotFound = "Item not found or user not authorized"

// Handler handles item-related requests
type Handler struct{}

// NewHandler creates a new items handler
func NewHandler() *Handler {
	return &Handler{}
}

// ItemRequest is the body of create and update. Update replaces every field.
type ItemRequest struct {
	ItemName      string  `json:"item_name" validate:"required"`
	Quantity      *int    `json:"quantity" validate:"required,min=0"`
	StorageAreaID *string `json:"storage_area_id" validate:"required"`
	GroupID       *string `json:"group_id"`
	Category      string  `json:"category"`
	ExpiryDate    *string `json:"expiry_date"`
	Barcode       string  `json:"barcode"`
	DateAdded     *string `json:"date_added"`
}

// fields converts the request into column values, resolving optional dates.
func (req *ItemRequest) fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{
		"item_name":       strings.TrimSpace(req.ItemName),
		"quantity":        *req.Quantity,
		"storage_area_id": *req.StorageAreaID,
		"group_id":        emptyToNil(req.GroupID),
		"category":        req.Category,
		"barcode":         req.Barcode,
		"expiry_date":     nil,
	}
	if fields["item_name"] == "" {
		return nil, api.Validation("item_name is required")
	}

	// An empty expiry date from a cleared form field means "no expiry".
	if req.ExpiryDate != nil && strings.TrimSpace(*req.ExpiryDate) != "" {
		d, err := models.ParseDate(*req.ExpiryDate)
		if err != nil {
			return nil, api.Validation("expiry_date must be a date (YYYY-MM-DD)")
		}
		fields["expiry_date"] = &d
	}
	if req.DateAdded != nil && strings.TrimSpace(*req.DateAdded) != "" {
		d, err := models.ParseDate(*req.DateAdded)
		if err != nil {
			return nil, api.Validation("date_added must be a date (YYYY-MM-DD)")
		}
		fields["date_added"] = d
	}
	return fields, nil
}

func emptyToNil(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// checkReferences verifies the storage area and group belong to the caller.
func checkReferences(db *gorm.DB, userID string, fields map[string]interface{}) error {
	var count int64
	if err := db.Model(&models.StorageArea{}).
		Where("id = ? AND user_id = ?", fields["storage_area_id"], userID).
		Count(&count).Error; err != nil {
		return api.ServerError(err)
	}
	if count == 0 {
		return api.Validation("storage_area_id does not reference one of your storage areas")
	}

	if groupID := fields["group_id"]; groupID != nil {
		if err := db.Model(&models.ItemGroup{}).
			Where("id = ? AND user_id = ?", groupID, userID).
			Count(&count).Error; err != nil {
			return api.ServerError(err)
		}
		if count == 0 {
			return api.Validation("group_id does not reference one of your groups")
		}
	}
	return nil
}

// storeError maps constraint violations that slipped past validation.
func storeError(err error) error {
	switch {
	case database.IsCheckViolation(err):
		return api.Validation("quantity must be at least 0")
	case database.IsForeignKeyViolation(err):
		return api.Validation("storage_area_id or group_id does not exist")
	default:
		return api.ServerError(err)
	}
}

// List returns all items owned by the caller
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 401 {object} api.MessageBody "Authentication required"
// @Security BearerAuth
// @Router /items [get]
func (h *Handler) List(r *api.Request) (*api.Response, error) {
	items := []models.Item{}
	if err := r.Store().
		Where("user_id = ?", r.UserID()).
		Order("date_added ASC, item_name ASC").
		Find(&items).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(items), nil
}

// Create adds an item
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item details"
// @Success 200 {object} models.Item
// @Failure 400 {object} api.MessageBody "Validation error"
// @Security BearerAuth
// @Router /items [post]
func (h *Handler) Create(r *api.Request) (*api.Response, error) {
	var req ItemRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	fields, err := req.fields()
	if err != nil {
		return nil, err
	}

	db := r.Store()
	if err := checkReferences(db, r.UserID(), fields); err != nil {
		return nil, err
	}

	item := models.Item{
		UserID:        r.UserID(),
		ItemName:      fields["item_name"].(string),
		Quantity:      *req.Quantity,
		StorageAreaID: req.StorageAreaID,
		Category:      req.Category,
		Barcode:       req.Barcode,
	}
	if g, ok := fields["group_id"].(string); ok {
		item.GroupID = &g
	}
	if d, ok := fields["expiry_date"].(*models.Date); ok {
		item.ExpiryDate = d
	}
	if d, ok := fields["date_added"].(models.Date); ok {
		item.DateAdded = d
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, storeError(err)
	}

	return api.OK(item), nil
}

// Update replaces every editable field of an item
// @Summary Update an item
// @Description Full replace: omitted optional fields are cleared.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body ItemRequest true "Item details"
// @Success 200 {object} models.Item
// @Failure 400 {object} api.MessageBody "Validation error"
// @Failure 404 {object} api.MessageBody "Item not found"
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *Handler) Update(r *api.Request) (*api.Response, error) {
	var req ItemRequest
	if err := r.Bind(&req); err != nil {
		return nil, err
	}
	fields, err := req.fields()
	if err != nil {
		return nil, err
	}

	db := r.Store()
	id := r.Param("id")

	var item models.Item
	err = db.Where("id = ? AND user_id = ?", id, r.UserID()).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, api.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, api.ServerError(err)
	}

	if err := checkReferences(db, r.UserID(), fields); err != nil {
		return nil, err
	}

	result := db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", id, r.UserID()).
		Updates(fields)
	if result.Error != nil {
		return nil, storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgNotFound)
	}

	if err := db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, api.ServerError(err)
	}

	return api.OK(item), nil
}

// Delete removes an item
// @Summary Delete an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} api.MessageBody
// @Failure 404 {object} api.MessageBody "Item not found"
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *Handler) Delete(r *api.Request) (*api.Response, error) {
	result := r.Store().
		Where("id = ? AND user_id = ?", r.Param("id"), r.UserID()).
		Delete(&models.Item{})
	if result.Error != nil {
		return nil, api.ServerError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, api.NotFound(msgNotFound)
	}

	return api.Message(http.StatusOK, "Item deleted"), nil
}

// Routes returns the item routes.
func (h *Handler) Routes() []api.Route {
	return []api.Route{
		{Method: http.MethodGet, Path: "/items", Protected: true, Handler: h.List},
		{Method: http.MethodPost, Path: "/items", Protected: true, Handler: h.Create},
		{Method: http.MethodPut, Path: "/items/:id", Protected: true, Handler: h.Update},
		{Method: http.MethodDelete, Path: "/items/:id", Protected: true, Handler: h.Delete},
	}
}
