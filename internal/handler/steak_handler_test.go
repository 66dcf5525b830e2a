package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"steak-log-server/internal/model"

	"github.com/gin-gonic/gin"
)

func newSteakRouter() *gin.Engine {
	r := gin.New()
	r.POST("/add_steak", testHandler.AddSteak)
	r.GET("/steaks", testHandler.ListSteaks)
	r.DELETE("/steak/:id", testHandler.DeleteSteak)
	return r
}

// 测试内容：验证添加接口回显完整记录并带服务端生成字段。
func TestAddSteakHandler_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := newSteakRouter()

	body, _ := json.Marshal(gin.H{"type": "Ribeye Steak", "cost": 12.5, "weight": 300})
	req := httptest.NewRequest(http.MethodPost, "/add_steak", bytes.NewReader(body))
	req.Header.Set("x-user-id", "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var got model.Steak
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID == "" || got.Timestamp == "" {
		t.Fatalf("期望返回 id 与 timestamp，实际为 %s", w.Body.String())
	}
	if got.Owner != "alice" || got.Type != "Ribeye Steak" || got.Cost != 12.5 || got.Weight != 300 {
		t.Fatalf("期望回显输入字段，实际为 %+v", got)
	}
	if got.Photo != nil {
		t.Fatalf("期望无照片时 photo 为 null")
	}
}

// 测试内容：验证缺失字段与非法 JSON 都返回 400。
func TestAddSteakHandler_BadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := newSteakRouter()

	body, _ := json.Marshal(gin.H{"cost": 12.5, "weight": 300})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add_steak", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/add_steak", bytes.NewReader([]byte("{bad"))))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d body=%s", w2.Code, w2.Body.String())
	}
}

// 测试内容：验证列表只返回请求身份名下的记录，无身份时落入匿名桶。
func TestListSteaksHandler_OwnerScoping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := newSteakRouter()

	addSteak := func(owner string) {
		body, _ := json.Marshal(gin.H{"type": "Sirloin", "cost": 8, "weight": 250})
		req := httptest.NewRequest(http.MethodPost, "/add_steak", bytes.NewReader(body))
		if owner != "" {
			req.Header.Set("x-user-id", owner)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("添加失败: %d %s", w.Code, w.Body.String())
		}
	}
	addSteak("alice")
	addSteak("alice")
	addSteak("bob")
	addSteak("") // 匿名

	listFor := func(owner string) []model.Steak {
		req := httptest.NewRequest(http.MethodGet, "/steaks", nil)
		if owner != "" {
			req.Header.Set("x-user-id", owner)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("列表失败: %d %s", w.Code, w.Body.String())
		}
		var steaks []model.Steak
		_ = json.Unmarshal(w.Body.Bytes(), &steaks)
		return steaks
	}

	if got := listFor("alice"); len(got) != 2 {
		t.Fatalf("期望 alice 有 2 条记录，实际为 %d", len(got))
	}
	if got := listFor("bob"); len(got) != 1 {
		t.Fatalf("期望 bob 有 1 条记录，实际为 %d", len(got))
	}
	anonymous := listFor("")
	if len(anonymous) != 1 || anonymous[0].Owner != "anonymous" {
		t.Fatalf("期望匿名桶有 1 条记录，实际为 %+v", anonymous)
	}
	if got := listFor("carol"); len(got) != 0 {
		t.Fatalf("期望 carol 列表为空（JSON 为 []），实际为 %d 条", len(got))
	}
}

// 测试内容：验证删除接口对本人记录返回 ok，对他人/不存在的返回同样的 404。
func TestDeleteSteakHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := newSteakRouter()

	steak, err := testService.AddSteak("alice", "Ribeye Steak", 12.5, 300, nil)
	if err != nil {
		t.Fatalf("添加失败: %v", err)
	}

	deleteAs := func(owner, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/steak/"+id, nil)
		req.Header.Set("x-user-id", owner)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := deleteAs("bob", steak.ID); w.Code != http.StatusNotFound {
		t.Fatalf("期望他人删除返回 404，实际为 %d", w.Code)
	}
	if w := deleteAs("alice", "no-such-id"); w.Code != http.StatusNotFound {
		t.Fatalf("期望不存在的 id 返回 404，实际为 %d", w.Code)
	}

	w := deleteAs("alice", steak.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OK bool `json:"ok"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.OK {
		t.Fatalf("期望 {ok:true}，实际为 %s", w.Body.String())
	}

	list, _ := testService.ListSteaks("alice")
	if len(list) != 0 {
		t.Fatalf("期望删除后列表为空，实际为 %d 条", len(list))
	}
}

// 测试内容：验证删除接口在没有请求头时会读取请求体中的 user 字段。
func TestDeleteSteakHandler_BodyUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)
	r := newSteakRouter()

	steak, err := testService.AddSteak("alice", "Ribeye Steak", 12.5, 300, nil)
	if err != nil {
		t.Fatalf("添加失败: %v", err)
	}

	body, _ := json.Marshal(gin.H{"user": "alice"})
	req := httptest.NewRequest(http.MethodDelete, "/steak/"+steak.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望请求体身份删除成功，实际为 %d body=%s", w.Code, w.Body.String())
	}

	list, _ := testService.ListSteaks("alice")
	if len(list) != 0 {
		t.Fatalf("期望删除后列表为空，实际为 %d 条", len(list))
	}
}
