package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/cache"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== 测试辅助 ====================

// testEnv 控制器测试环境
type testEnv struct {
	engine  *gin.Engine
	userSvc *service.UserService
	store   cache.Store
}

// setupControllerTest 内存库 + 内存验证码存储，路由只挂被测接口
func setupControllerTest(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.SysUser{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	store := cache.NewMemoryStore(time.Minute)
	captchaSvc := service.NewCaptchaService(nil, store)
	userSvc := service.NewUserService(repository.NewUserRepository(db), captchaSvc, nil)

	authCtl := NewAuthController(userSvc, captchaSvc)
	userCtl := NewUserController(userSvc)

	engine := gin.New()
	engine.POST("/user/login", authCtl.Login)
	engine.POST("/user/register", authCtl.Register)
	engine.POST("/user/getCaptchaImage", authCtl.GetCaptchaImage)
	engine.POST("/user/add", userCtl.Add)
	engine.POST("/user/update", userCtl.Update)
	engine.POST("/user/delete", userCtl.Delete)
	engine.POST("/user/info", userCtl.Info)
	engine.POST("/user/list", userCtl.List)
	engine.POST("/user/page", userCtl.Page)

	return &testEnv{engine: engine, userSvc: userSvc, store: store}
}

// postJSON 发 POST 请求并解出响应壳子
func (e *testEnv) postJSON(t *testing.T, path string, payload interface{}) (int, *resp.Body) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var envelope resp.Body
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("解析响应失败: %v, body=%s", err, w.Body.String())
	}
	return w.Code, &envelope
}

func (e *testEnv) mustAddUser(t *testing.T, username, password string) {
	t.Helper()
	status, envelope := e.postJSON(t, "/user/add", dto.CreateUserRequest{
		Username: username,
		Password: password,
	})
	if status != http.StatusOK || envelope.Code != resp.CodeSuccess {
		t.Fatalf("创建用户失败: http=%d code=%d message=%s", status, envelope.Code, envelope.Message)
	}
}

// ==================== 用户管理接口 ====================

func TestUserController_AddDuplicate(t *testing.T) {
	env := setupControllerTest(t)

	env.mustAddUser(t, "alice", "secret123")

	// 同名再建必须拿到业务错误壳子，HTTP 仍是 200
	status, envelope := env.postJSON(t, "/user/add", dto.CreateUserRequest{
		Username: "alice",
		Password: "another123",
	})
	if status != http.StatusOK {
		t.Errorf("http status = %d, want 200", status)
	}
	if envelope.Code != resp.CodeError {
		t.Errorf("code = %d, want %d", envelope.Code, resp.CodeError)
	}
	if envelope.Message != "用户已存在" {
		t.Errorf("message = %q, want 用户已存在", envelope.Message)
	}
}

func TestUserController_AddValidation(t *testing.T) {
	env := setupControllerTest(t)

	// 密码太短，绑定校验直接打回
	_, envelope := env.postJSON(t, "/user/add", map[string]interface{}{
		"username": "alice",
		"password": "123",
	})
	if envelope.Code != resp.CodeError {
		t.Errorf("code = %d, want %d", envelope.Code, resp.CodeError)
	}
}

func TestUserController_InfoNotFound(t *testing.T) {
	env := setupControllerTest(t)

	_, envelope := env.postJSON(t, "/user/info", dto.UserInfoRequest{ID: 999})
	if envelope.Code != resp.CodeError {
		t.Errorf("code = %d, want %d", envelope.Code, resp.CodeError)
	}
	if envelope.Message != "用户不存在" {
		t.Errorf("message = %q, want 用户不存在", envelope.Message)
	}
}

func TestUserController_InfoByUsername(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")

	_, envelope := env.postJSON(t, "/user/info", dto.UserInfoRequest{Username: "alice"})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	data, _ := json.Marshal(envelope.Data)
	var user dto.UserInfo
	if err := json.Unmarshal(data, &user); err != nil {
		t.Fatalf("解析用户信息失败: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want alice", user.Username)
	}
}

func TestUserController_ListWithoutBody(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")

	// list 允许空请求体
	status, envelope := env.postJSON(t, "/user/list", nil)
	if status != http.StatusOK || envelope.Code != resp.CodeSuccess {
		t.Errorf("http=%d code=%d message=%s", status, envelope.Code, envelope.Message)
	}
}

func TestUserController_Page(t *testing.T) {
	env := setupControllerTest(t)

	for _, name := range []string{
		"user01", "user02", "user03", "user04", "user05",
		"user06", "user07", "user08", "user09", "user10",
		"user11", "user12",
	} {
		env.mustAddUser(t, name, "secret123")
	}

	_, envelope := env.postJSON(t, "/user/page", map[string]interface{}{
		"page":     2,
		"pageSize": 10,
	})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	data, _ := json.Marshal(envelope.Data)
	var result struct {
		List     []dto.UserInfo `json:"list"`
		Total    int64          `json:"total"`
		Page     int            `json:"page"`
		PageSize int            `json:"pageSize"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("解析分页结果失败: %v", err)
	}
	if result.Total != 12 {
		t.Errorf("total = %d, want 12", result.Total)
	}
	if len(result.List) != 2 {
		t.Errorf("第 2 页条数 = %d, want 2", len(result.List))
	}
	if len(result.List) > 10 {
		t.Errorf("单页条数 = %d, 超出 pageSize", len(result.List))
	}
}

func TestUserController_Delete(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")

	user, err := env.userSvc.GetUser(context.Background(), &dto.UserInfoRequest{Username: "alice"})
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}

	_, envelope := env.postJSON(t, "/user/delete", dto.IDsRequest{IDs: []int64{user.ID}})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	_, envelope = env.postJSON(t, "/user/info", dto.UserInfoRequest{Username: "alice"})
	if envelope.Code != resp.CodeError {
		t.Errorf("删除后查询 code = %d, want %d", envelope.Code, resp.CodeError)
	}
}

func TestUserController_PasswordNeverReturned(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")

	_, envelope := env.postJSON(t, "/user/info", dto.UserInfoRequest{Username: "alice"})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	data, _ := json.Marshal(envelope.Data)
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if _, ok := raw["password"]; ok {
		t.Error("响应不应包含密码字段")
	}
}
