package controller

import (
	"encoding/json"
	"strings"
	"testing"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/middleware"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== 测试辅助 ====================

// httptest 的默认来源 IP
const testClientIP = "192.0.2.1"

// resetCooldown 清掉登录/验证码冷却，测试里连发请求不互相干扰
func resetCooldown() {
	middleware.GetLoginLimiter().Reset("login:" + testClientIP)
	middleware.GetLoginLimiter().Reset("captcha:" + testClientIP)
}

// seedCaptcha 预置已知答案的验证码
func seedCaptcha(env *testEnv, id, answer string) {
	_ = env.store.Set(id, answer)
}

// ==================== 验证码接口 ====================

func TestAuthController_GetCaptchaImage(t *testing.T) {
	env := setupControllerTest(t)
	resetCooldown()

	_, envelope := env.postJSON(t, "/user/getCaptchaImage", nil)
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	data, _ := json.Marshal(envelope.Data)
	var captcha dto.CaptchaResponse
	if err := json.Unmarshal(data, &captcha); err != nil {
		t.Fatalf("解析验证码响应失败: %v", err)
	}
	if captcha.CaptchaID == "" {
		t.Error("应返回验证码 ID")
	}
	if !strings.HasPrefix(captcha.Image, "data:image/") {
		t.Errorf("image 应为 base64 data URI, got %.40q", captcha.Image)
	}
}

func TestAuthController_GetCaptchaImageCooldown(t *testing.T) {
	env := setupControllerTest(t)
	resetCooldown()

	_, first := env.postJSON(t, "/user/getCaptchaImage", nil)
	if first.Code != resp.CodeSuccess {
		t.Fatalf("首次请求失败: %s", first.Message)
	}

	// 冷却期内连发，第二张被打回
	_, second := env.postJSON(t, "/user/getCaptchaImage", nil)
	if second.Code != resp.CodeError {
		t.Errorf("冷却期内 code = %d, want %d", second.Code, resp.CodeError)
	}
}

// ==================== 登录接口 ====================

func TestAuthController_LoginSuccess(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")
	seedCaptcha(env, "cap-1", "1234")
	resetCooldown()

	_, envelope := env.postJSON(t, "/user/login", dto.LoginRequest{
		Username:     "alice",
		Password:     "secret123",
		CaptchaID:    "cap-1",
		CaptchaValue: "1234",
	})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	data, _ := json.Marshal(envelope.Data)
	var result dto.LoginResponse
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("解析登录响应失败: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("登录成功应返回 Token 对")
	}

	// 签出来的 Access Token 要能解析回同一个用户
	claims, err := middleware.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}
	if claims.Username != "alice" || claims.Subject != "access" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthController_LoginWrongPassword(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")
	seedCaptcha(env, "cap-1", "1234")
	resetCooldown()

	status, envelope := env.postJSON(t, "/user/login", dto.LoginRequest{
		Username:     "alice",
		Password:     "wrong-pass",
		CaptchaID:    "cap-1",
		CaptchaValue: "1234",
	})
	// 业务失败 HTTP 仍是 200，错误走壳子里的 code
	if status != 200 {
		t.Errorf("http status = %d, want 200", status)
	}
	if envelope.Code != resp.CodeError {
		t.Errorf("code = %d, want %d", envelope.Code, resp.CodeError)
	}
	if envelope.Message != "用户名或密码错误" {
		t.Errorf("message = %q, want 用户名或密码错误", envelope.Message)
	}
}

func TestAuthController_LoginCooldown(t *testing.T) {
	env := setupControllerTest(t)
	env.mustAddUser(t, "alice", "secret123")
	resetCooldown()

	seedCaptcha(env, "cap-1", "1234")
	_, first := env.postJSON(t, "/user/login", dto.LoginRequest{
		Username:     "alice",
		Password:     "wrong-pass",
		CaptchaID:    "cap-1",
		CaptchaValue: "1234",
	})
	if first.Code != resp.CodeError {
		t.Fatalf("首次登录失败请求 code = %d", first.Code)
	}

	// 失败不解除冷却，紧跟着的第二次被限流
	seedCaptcha(env, "cap-2", "1234")
	_, second := env.postJSON(t, "/user/login", dto.LoginRequest{
		Username:     "alice",
		Password:     "secret123",
		CaptchaID:    "cap-2",
		CaptchaValue: "1234",
	})
	if second.Code != resp.CodeError {
		t.Errorf("冷却期内 code = %d, want %d", second.Code, resp.CodeError)
	}
	if !strings.Contains(second.Message, "频繁") {
		t.Errorf("message = %q, 应提示操作频繁", second.Message)
	}
}

// ==================== 注册接口 ====================

func TestAuthController_Register(t *testing.T) {
	env := setupControllerTest(t)
	seedCaptcha(env, "cap-1", "1234")

	_, envelope := env.postJSON(t, "/user/register", dto.RegisterRequest{
		Username:     "bob",
		Password:     "secret123",
		CaptchaID:    "cap-1",
		CaptchaValue: "1234",
	})
	if envelope.Code != resp.CodeSuccess {
		t.Fatalf("code = %d, message = %s", envelope.Code, envelope.Message)
	}

	// 同名重复注册
	seedCaptcha(env, "cap-2", "1234")
	_, envelope = env.postJSON(t, "/user/register", dto.RegisterRequest{
		Username:     "bob",
		Password:     "secret123",
		CaptchaID:    "cap-2",
		CaptchaValue: "1234",
	})
	if envelope.Code != resp.CodeError || envelope.Message != "用户已存在" {
		t.Errorf("code = %d, message = %q, want 900/用户已存在", envelope.Code, envelope.Message)
	}
}

func TestAuthController_RegisterBadCaptcha(t *testing.T) {
	env := setupControllerTest(t)

	_, envelope := env.postJSON(t, "/user/register", dto.RegisterRequest{
		Username:     "bob",
		Password:     "secret123",
		CaptchaID:    "missing",
		CaptchaValue: "0000",
	})
	if envelope.Code != resp.CodeError {
		t.Errorf("code = %d, want %d", envelope.Code, resp.CodeError)
	}
}
