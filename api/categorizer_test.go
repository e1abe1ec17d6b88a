package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"categorizer/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupCategorizerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCategorizerHandler()
	router.POST("/category", h.AddCategory)
	router.POST("/subcategory", h.AddSubcategory)
	router.POST("/subcategory/bulk", h.AddSubcategories)
	router.GET("/category", h.FindAllCategoryNames)
	router.GET("/category/object", h.FindAllCategories)
	router.GET("/subcategory", h.FindAllCategorySubcategoryNames)
	router.GET("/subcategory/object", h.FindAllSubcategories)
	router.DELETE("/category/:cat", h.DeleteCategory)
	router.DELETE("/subcategory/:cat/:sub", h.DeleteSubcategory)
	router.DELETE("/subcategory", h.DeleteAllSubcategories)
	router.GET("/dump", h.Dump)
	return router
}

func TestCategorizerHandler_AddCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 判重计数为 0
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	// INSERT category
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/category?cat=PERSON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PERSON", resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddCategory_EmptyName(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	// 名称为空，不触发任何数据库操作
	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/category", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
}

func TestCategorizerHandler_AddCategory_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 已存在同名类别
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/category?cat=PERSON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddCategory_DuplicateKeyBackstop(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 判重通过后并发写入触发唯一索引冲突，应按重复处理而非报错
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/category?cat=PERSON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddSubcategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 查询父类别
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", time.Now(), time.Now()))

	// 组合判重，无记录
	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "Joe King").
		WillReturnRows(sqlmock.NewRows([]string{}))

	// INSERT subcategory
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `subcategories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/subcategory?cat=PERSON&sub=Joe+King", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Joe King", resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddSubcategory_CategoryMissing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 父类别不存在
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("GHOST").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/subcategory?cat=GHOST&sub=x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddSubcategory_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", time.Now(), time.Now()))

	// 组合已存在
	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "Joe King").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "created_at", "updated_at"}).
			AddRow(1, "Joe King", 1, time.Now(), time.Now()))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/subcategory?cat=PERSON&sub=Joe+King", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddSubcategories_PartialSuccess(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 第一条新组合，写入成功
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "Joe King").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `subcategories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 第二条重复，静默跳过
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "Jane Doe").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "created_at", "updated_at"}).
			AddRow(2, "Jane Doe", 1, time.Now(), time.Now()))

	router := setupCategorizerRouter()
	body := `[{"category":"PERSON","subcategory":"Joe King"},{"category":"PERSON","subcategory":"Jane Doe"}]`
	req := httptest.NewRequest("POST", "/subcategory/bulk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 部分成功仍整体返回 200，结果只含写入成功的组合
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[{"category":"PERSON","subcategory":"Joe King"}]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddSubcategories_EmptyList(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/subcategory/bulk", bytes.NewBufferString(`[]`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
}

func TestCategorizerHandler_AddSubcategories_MalformedBody(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/subcategory/bulk", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 请求体格式错误属于边界故障，返回 406
	assert.Equal(t, 406, w.Code)
}

func TestCategorizerHandler_FindAllCategoryNames(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `name` FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("PERSON").AddRow("PLACE"))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("GET", "/category", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `["PERSON","PLACE"]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_FindAllCategories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", now, now).
			AddRow(2, "PLACE", now, now))
	// 预加载子类别
	mock.ExpectQuery("SELECT \\* FROM `subcategories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "created_at", "updated_at"}).
			AddRow(1, "Joe King", 1, now, now))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("GET", "/category/object", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "PERSON", resp[0]["name"])
	subcategories := resp[0]["subcategories"].([]interface{})
	require.Len(t, subcategories, 1)
	assert.Equal(t, "Joe King", subcategories[0].(map[string]interface{})["name"])
	assert.Equal(t, "PLACE", resp[1]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_FindAllCategorySubcategoryNames(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT categories.name AS category, subcategories.name AS subcategory FROM `subcategories`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "subcategory"}).
			AddRow("PERSON", "Joe King").
			AddRow("PERSON", "Jane Doe"))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("GET", "/subcategory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t,
		`[{"category":"PERSON","subcategory":"Joe King"},{"category":"PERSON","subcategory":"Jane Doe"}]`,
		w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_DeleteCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "PERSON", time.Now(), time.Now()))
	// 子类别由外键级联删除，这里只删类别行
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("DELETE", "/category/PERSON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_DeleteCategory_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WithArgs("GHOST").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("DELETE", "/category/GHOST", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_DeleteSubcategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "Joe King").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id", "created_at", "updated_at"}).
			AddRow(1, "Joe King", 1, time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `subcategories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("DELETE", "/subcategory/PERSON/Joe%20King", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_DeleteSubcategory_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs("PERSON", "ghost").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("DELETE", "/subcategory/PERSON/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 304, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_DeleteAllSubcategories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `subcategories`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	router := setupCategorizerRouter()
	req := httptest.NewRequest("DELETE", "/subcategory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_Dump_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 空数据集返回两个空列表而非 null
	mock.ExpectQuery("SELECT categories.name AS category, subcategories.name AS subcategory FROM `subcategories`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "subcategory"}))
	mock.ExpectQuery("SELECT categories.name AS category, COUNT\\(subcategories.id\\) AS count FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("GET", "/dump", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[[],[]]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_Dump(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT categories.name AS category, subcategories.name AS subcategory FROM `subcategories`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "subcategory"}).
			AddRow("PERSON", "Joe King").
			AddRow("PLACE", "Paris"))
	// 数量降序，同数量按类别名升序
	mock.ExpectQuery("SELECT categories.name AS category, COUNT\\(subcategories.id\\) AS count FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("PERSON", 1).
			AddRow("PLACE", 1))

	router := setupCategorizerRouter()
	req := httptest.NewRequest("GET", "/dump", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Len(t, resp[0], 2)
	assert.Len(t, resp[1], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorizerHandler_AddCategory_StorageFault(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 存储层故障属于基础设施错误，返回 500
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `categories`").
		WithArgs("PERSON").
		WillReturnError(assert.AnError)

	router := setupCategorizerRouter()
	req := httptest.NewRequest("POST", "/category?cat=PERSON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
