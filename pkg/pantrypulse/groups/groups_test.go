package groups

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

func createGroup(t *testing.T, db *gorm.DB, h *Handler, userID, name string) string {
	resp, err := call(db, h.Create, userID, "", fmt.Sprintf(`{"group_name":%q,"description":"desc"}`, name))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return resp.Body.(models.ItemGroup).ID
}

func createItems(t *testing.T, db *gorm.DB, userID, groupID string, n int) {
	area := models.StorageArea{UserID: userID, Name: "Freezer"}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("Failed to create storage area: %v", err)
	}
	for i := 0; i < n; i++ {
		item := models.Item{
			UserID:        userID,
			StorageAreaID: &area.ID,
			GroupID:       &groupID,
			ItemName:      fmt.Sprintf("item-%d", i),
			Quantity:      1,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("Failed to create item: %v", err)
		}
	}
}

func TestCreateGroup(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")

	resp, err := call(db, h.Create, userID, "", `{"group_name":"Vegetables","description":"green"}`)
	if s := status(resp, err); s != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %v", s, err)
	}
	group := resp.Body.(models.ItemGroup)
	if group.ID == "" || group.UserID != userID || group.GroupName != "Vegetables" {
		t.Errorf("Unexpected group: %+v", group)
	}
	if group.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	for _, body := range []string{`{}`, `{"group_name":""}`, `{"group_name":"  "}`, `{"group_name":1}`} {
		resp, err := call(db, h.Create, userID, "", body)
		if s := status(resp, err); s != http.StatusBadRequest {
			t.Errorf("Body %s: expected status 400, got %d", body, s)
		}
	}
}

func TestListGroupsAggregatesStorageAreas(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	otherID := createUser(t, db, "b@example.com")

	veg := createGroup(t, db, h, userID, "Vegetables")
	createGroup(t, db, h, userID, "Bread")
	createGroup(t, db, h, otherID, "Apples")

	freezer := models.StorageArea{UserID: userID, Name: "Freezer"}
	chest := models.StorageArea{UserID: userID, Name: "Chest"}
	require.NoError(t, db.Create(&freezer).Error)
	require.NoError(t, db.Create(&chest).Error)
	require.NoError(t, db.Create(&models.StorageAreaGroup{StorageAreaID: freezer.ID, GroupID: veg}).Error)
	require.NoError(t, db.Create(&models.StorageAreaGroup{StorageAreaID: chest.ID, GroupID: veg}).Error)

	resp, err := call(db, h.List, userID, "", "")
	require.NoError(t, err)
	groups := resp.Body.([]GroupResponse)

	require.Len(t, groups, 2)
	assert.Equal(t, "Bread", groups[0].GroupName)
	assert.NotNil(t, groups[0].StorageAreas)
	assert.Empty(t, groups[0].StorageAreas)

	assert.Equal(t, "Vegetables", groups[1].GroupName)
	assert.Equal(t, []StorageAreaRef{{ID: chest.ID, Name: "Chest"}, {ID: freezer.ID, Name: "Freezer"}}, groups[1].StorageAreas)

	resp, err = call(db, h.List, createUser(t, db, "c@example.com"), "", "")
	require.NoError(t, err)
	assert.Equal(t, []GroupResponse{}, resp.Body)
}

func TestUpdateGroup(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	ownerID := createUser(t, db, "a@example.com")
	otherID := createUser(t, db, "b@example.com")
	id := createGroup(t, db, h, ownerID, "Veg")

	resp, err := call(db, h.Update, ownerID, id, `{"group_name":"Vegetables"}`)
	require.NoError(t, err)
	group := resp.Body.(models.ItemGroup)
	assert.Equal(t, "Vegetables", group.GroupName)
	assert.Equal(t, "", group.Description, "omitted description is cleared")

	resp, err = call(db, h.Update, otherID, id, `{"group_name":"Mine now"}`)
	assert.Equal(t, http.StatusNotFound, status(resp, err))

	resp, err = call(db, h.Update, ownerID, id, `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, status(resp, err))
}

func TestDeleteGroupUngroupsItems(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	id := createGroup(t, db, h, userID, "Veg")
	createItems(t, db, userID, id, 3)

	resp, err := call(db, h.Delete, userID, id, "")
	require.NoError(t, err)
	assert.Equal(t, "Group deleted and items un-grouped", resp.Body.(api.MessageBody).Msg)

	var items []models.Item
	require.NoError(t, db.Where("user_id = ?", userID).Find(&items).Error)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Nil(t, item.GroupID)
	}

	resp, err = call(db, h.List, userID, "", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Body)

	resp, err = call(db, h.Delete, userID, id, "")
	assert.Equal(t, http.StatusNotFound, status(resp, err))
}

func TestDeleteGroupNotOwned(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	ownerID := createUser(t, db, "a@example.com")
	intruderID := createUser(t, db, "b@example.com")
	id := createGroup(t, db, h, ownerID, "Veg")
	createItems(t, db, ownerID, id, 2)

	resp, err := call(db, h.Delete, intruderID, id, "")
	assert.Equal(t, http.StatusNotFound, status(resp, err))

	var grouped int64
	db.Model(&models.Item{}).Where("group_id = ?", id).Count(&grouped)
	assert.Equal(t, int64(2), grouped)
}

func TestDeleteGroupIsAtomicUnderConcurrentReads(t *testing.T) {
	db := setupTestDB(t)
	h := NewHandler()
	userID := createUser(t, db, "a@example.com")
	id := createGroup(t, db, h, userID, "Veg")
	const n = 20
	createItems(t, db, userID, id, n)

	var wg sync.WaitGroup
	inconsistent := make(chan string, 100)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				var groups, grouped int64
				err := db.Transaction(func(tx *gorm.DB) error {
					if err := tx.Model(&models.ItemGroup{}).Where("id = ?", id).Count(&groups).Error; err != nil {
						return err
					}
					return tx.Model(&models.Item{}).Where("group_id = ?", id).Count(&grouped).Error
				})
				if err != nil {
					inconsistent <- err.Error()
					return
				}
				if !(groups == 1 && grouped == n) && !(groups == 0 && grouped == 0) {
					inconsistent <- fmt.Sprintf("groups=%d grouped=%d", groups, grouped)
				}
			}
		}()
	}

	resp, err := call(db, h.Delete, userID, id, "")
	wg.Wait()
	close(inconsistent)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	for msg := range inconsistent {
		t.Errorf("Observed partial delete: %s", msg)
	}
}

func TestDeleteGroupRollsBackOnFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "item_groups"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "group_name"}).AddRow("g-1", "u-1", "Veg"))
	mock.ExpectExec(`UPDATE "freezer_items" SET "group_id"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "item_groups"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	resp, err := call(db, NewHandler().Delete, "u-1", "g-1", "")
	assert.Nil(t, resp)
	assert.Equal(t, api.KindServer, api.KindOf(err))

	rendered := api.ErrorResponse(err)
	assert.Equal(t, http.StatusInternalServerError, rendered.Status)
	assert.Equal(t, api.MessageBody{Msg: api.ServerErrorMessage}, rendered.Body)

	assert.NoError(t, mock.ExpectationsWereMet())
}
