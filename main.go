package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"onebase/internal/config"
	"onebase/internal/handler"
	"onebase/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/onebase.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()
	handler.RegisterHandlers(server, ctx)

	// 设置优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	fmt.Printf("🔗 %s resolver: %s\n", c.Chain.Name, c.Resolver.Address)

	go func() {
		server.Start()
	}()

	<-quit
	fmt.Println("\n🛑 收到退出信号，正在优雅关闭服务...")
}
