package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"steak-log-server/internal/config"
	"steak-log-server/internal/db"
	"steak-log-server/internal/handler"
	"steak-log-server/internal/middleware"
	"steak-log-server/internal/repository"
	"steak-log-server/internal/router"
	"steak-log-server/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitConfig("")
	db.InitDB()

	uploadPath := config.Get().Upload.Path
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("❌ 无法创建上传目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()

	repos := repository.NewRepositories(
		repository.NewSteakRepository(db.DB),
		repository.NewUserRepository(db.DB),
	)
	appService := service.NewAppService(repos, uploadPath)
	router.NewRouter(handler.NewHandler(appService)).Init(r)

	// 使用带缓存控制的静态文件服务发布上传目录
	r.Group(config.Get().Upload.URLPrefix, middleware.StaticCacheMiddleware()).
		StaticFS("", gin.Dir(uploadPath, false))

	// 前端资源仅在 embed 构建时存在
	distFS := GetFrontendAssets()
	var indexData []byte
	if distFS != nil {
		indexData = setupFrontend(r, distFS)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, config.Get().Upload.URLPrefix) {
			c.JSON(404, gin.H{"error": "Upload not found"})
			return
		}

		if distFS == nil {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		path := strings.TrimPrefix(c.Request.URL.Path, "/")

		// 如果 path 为空（即访问根路径 /），直接返回 index.html
		if path == "" {
			c.Data(200, "text/html; charset=utf-8", indexData)
			return
		}

		f, err := distFS.Open(path)
		if err == nil {
			defer f.Close()
			stat, _ := f.Stat()
			if !stat.IsDir() {
				c.FileFromFS(path, http.FS(distFS))
				return
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(200, "text/html; charset=utf-8", indexData)
	})

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	log.Println("✅ 服务已退出")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}
}
