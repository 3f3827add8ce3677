package items

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/config"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/database"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenAndMigrate(config.Database{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) string {
	user := models.User{Email: email, Name: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user.ID
}

func createArea(t *testing.T, db *gorm.DB, userID, name string) string {
	area := models.StorageArea{UserID: userID, Name: name}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("Failed to create storage area: %v", err)
	}
	return area.ID
}

func createGroup(t *testing.T, db *gorm.DB, userID, name string) string {
	group := models.ItemGroup{UserID: userID, GroupName: name}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("Failed to create group: %v", err)
	}
	return group.ID
}

func call(db *gorm.DB, h api.HandlerFunc, userID, id, body string) (*api.Response, error) {
	return h(&api.Request{
		Ctx:      context.Background(),
		DB:       db,
		Identity: &api.Identity{UserID: userID},
		Params:   map[string]string{"id": id},
		Body:     []byte(body),
	})
}

func status(resp *api.Response, err error) int {
	if err != nil {
		return api.KindOf(err).Status()
	}
	return resp.Status
}

func TestCreateItem(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	areaID := createArea(t, db, userID, "Freezer")
	groupID := createGroup(t, db, userID, "Vegetables")

	body := fmt.Sprintf(`{"item_name":"Peas","quantity":2,"storage_area_id":%q,"group_id":%q,"category":"veg","expiry_date":"2025-01-31","barcode":"123"}`, areaID, groupID)
	resp, err := call(db, h.Create, userID, "", body)
	if s := status(resp, err); s != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %v", s, err)
	}

	item := resp.Body.(models.Item)
	if item.ID == "" || item.UserID != userID {
		t.Errorf("Expected owned item with id, got %+v", item)
	}
	if item.State != models.ItemStateInStorage {
		t.Errorf("Expected state in_storage, got %s", item.State)
	}
	if item.ExpiryDate == nil || item.ExpiryDate.String() != "2025-01-31" {
		t.Errorf("Expected expiry 2025-01-31, got %v", item.ExpiryDate)
	}
	if item.GroupID == nil || *item.GroupID != groupID {
		t.Errorf("Expected group %s, got %v", groupID, item.GroupID)
	}
	if item.DateAdded.IsZero() {
		t.Error("Expected date_added to default to today")
	}
}

func TestCreateItemEmptyExpiryIsNull(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	areaID := createArea(t, db, userID, "Freezer")

	body := fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q,"expiry_date":"","group_id":""}`, areaID)
	resp, err := call(db, h.Create, userID, "", body)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	item := resp.Body.(models.Item)

	var stored models.Item
	db.First(&stored, "id = ?", item.ID)
	if stored.ExpiryDate != nil {
		t.Errorf("Expected NULL expiry, got %v", stored.ExpiryDate)
	}
	if stored.GroupID != nil {
		t.Errorf("Expected NULL group, got %v", *stored.GroupID)
	}
}

func TestCreateItemValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	otherID := createUser(t, db, "b@example.com")
	areaID := createArea(t, db, userID, "Freezer")
	otherArea := createArea(t, db, otherID, "Their freezer")
	otherGroup := createGroup(t, db, otherID, "Their group")

	bodies := []string{
		fmt.Sprintf(`{"quantity":1,"storage_area_id":%q}`, areaID),
		fmt.Sprintf(`{"item_name":"Peas","storage_area_id":%q}`, areaID),
		`{"item_name":"Peas","quantity":1}`,
		fmt.Sprintf(`{"item_name":"Peas","quantity":-1,"storage_area_id":%q}`, areaID),
		fmt.Sprintf(`{"item_name":"   ","quantity":1,"storage_area_id":%q}`, areaID),
		fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q}`, otherArea),
		fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q,"group_id":%q}`, areaID, otherGroup),
		fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q,"expiry_date":"soon"}`, areaID),
		fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q,"user_id":%q}`, areaID, otherID),
	}
	for _, body := range bodies {
		resp, err := call(db, h.Create, userID, "", body)
		if s := status(resp, err); s != http.StatusBadRequest {
			t.Errorf("Body %s: expected status 400, got %d", body, s)
		}
	}

	var count int64
	db.Model(&models.Item{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no items to be created, got %d", count)
	}
}

func TestListOnlyOwnItems(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	otherID := createUser(t, db, "b@example.com")
	areaID := createArea(t, db, userID, "Freezer")
	otherArea := createArea(t, db, otherID, "Freezer")

	call(db, h.Create, userID, "", fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q}`, areaID))
	call(db, h.Create, otherID, "", fmt.Sprintf(`{"item_name":"Corn","quantity":1,"storage_area_id":%q}`, otherArea))

	resp, err := call(db, h.List, userID, "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	items := resp.Body.([]models.Item)
	if len(items) != 1 || items[0].ItemName != "Peas" {
		t.Errorf("Expected only Peas, got %+v", items)
	}

	resp, _ = call(db, h.List, createUser(t, db, "c@example.com"), "", "")
	if items := resp.Body.([]models.Item); items == nil || len(items) != 0 {
		t.Errorf("Expected an empty, non-nil list, got %#v", items)
	}
}

func TestQuantityLifecycle(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	areaID := createArea(t, db, userID, "Freezer A")

	resp, err := call(db, h.Create, userID, "", fmt.Sprintf(`{"item_name":"Peas","quantity":2,"storage_area_id":%q}`, areaID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := resp.Body.(models.Item).ID

	resp, err = call(db, h.Update, userID, id, fmt.Sprintf(`{"item_name":"Peas","quantity":1,"storage_area_id":%q}`, areaID))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if item := resp.Body.(models.Item); item.Quantity != 1 || item.State != models.ItemStateInStorage {
		t.Errorf("Expected quantity 1 in_storage, got %d %s", item.Quantity, item.State)
	}

	resp, err = call(db, h.Update, userID, id, fmt.Sprintf(`{"item_name":"Peas","quantity":0,"storage_area_id":%q}`, areaID))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if item := resp.Body.(models.Item); item.Quantity != 0 || item.State != models.ItemStateUntracked {
		t.Errorf("Expected quantity 0 untracked, got %d %s", item.Quantity, item.State)
	}

	resp, _ = call(db, h.List, userID, "", "")
	items := resp.Body.([]models.Item)
	if len(items) != 1 || items[0].State != models.ItemStateUntracked {
		t.Errorf("Expected the untracked item to stay listed, got %+v", items)
	}

	resp, err = call(db, h.Update, userID, id, fmt.Sprintf(`{"item_name":"Peas","quantity":-1,"storage_area_id":%q}`, areaID))
	if s := status(resp, err); s != http.StatusBadRequest {
		t.Errorf("Expected status 400 for negative quantity, got %d", s)
	}
	var stored models.Item
	db.First(&stored, "id = ?", id)
	if stored.Quantity != 0 {
		t.Errorf("Expected quantity to stay 0, got %d", stored.Quantity)
	}
}

func TestUpdateIsFullReplace(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	areaID := createArea(t, db, userID, "Freezer")
	groupID := createGroup(t, db, userID, "Veg")

	resp, _ := call(db, h.Create, userID, "", fmt.Sprintf(`{"item_name":"Peas","quantity":2,"storage_area_id":%q,"group_id":%q,"category":"veg","expiry_date":"2025-01-31"}`, areaID, groupID))
	id := resp.Body.(models.Item).ID

	resp, err := call(db, h.Update, userID, id, fmt.Sprintf(`{"item_name":"Garden peas","quantity":2,"storage_area_id":%q}`, areaID))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	item := resp.Body.(models.Item)
	if item.ItemName != "Garden peas" {
		t.Errorf("Expected renamed item, got %s", item.ItemName)
	}
	if item.GroupID != nil || item.ExpiryDate != nil || item.Category != "" {
		t.Errorf("Expected omitted fields to be cleared, got %+v", item)
	}
}

func TestUpdateAndDeleteNotOwned(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	ownerID := createUser(t, db, "a@example.com")
	intruderID := createUser(t, db, "b@example.com")
	areaID := createArea(t, db, ownerID, "Freezer")
	intruderArea := createArea(t, db, intruderID, "Freezer")

	resp, _ := call(db, h.Create, ownerID, "", fmt.Sprintf(`{"item_name":"Peas","quantity":2,"storage_area_id":%q}`, areaID))
	id := resp.Body.(models.Item).ID

	resp, err := call(db, h.Update, intruderID, id, fmt.Sprintf(`{"item_name":"Stolen","quantity":9,"storage_area_id":%q}`, intruderArea))
	if s := status(resp, err); s != http.StatusNotFound {
		t.Errorf("Expected status 404 on update, got %d", s)
	}

	resp, err = call(db, h.Delete, intruderID, id, "")
	if s := status(resp, err); s != http.StatusNotFound {
		t.Errorf("Expected status 404 on delete, got %d", s)
	}

	resp, err = call(db, h.Update, ownerID, "does-not-exist", fmt.Sprintf(`{"item_name":"X","quantity":1,"storage_area_id":%q}`, areaID))
	if s := status(resp, err); s != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown id, got %d", s)
	}

	var stored models.Item
	db.First(&stored, "id = ?", id)
	if stored.ItemName != "Peas" || stored.Quantity != 2 {
		t.Errorf("Expected item untouched, got %+v", stored)
	}
}

func TestDeleteItem(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	areaID := createArea(t, db, userID, "Freezer")

	resp, _ := call(db, h.Create, userID, "", fmt.Sprintf(`{"item_name":"Peas","quantity":2,"storage_area_id":%q}`, areaID))
	id := resp.Body.(models.Item).ID

	resp, err := call(db, h.Delete, userID, id, "")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if msg := resp.Body.(api.MessageBody).Msg; msg != "Item deleted" {
		t.Errorf("Expected 'Item deleted', got %q", msg)
	}

	resp, err = call(db, h.Delete, userID, id, "")
	if s := status(resp, err); s != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", s)
	}
}
