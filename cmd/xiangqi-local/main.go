package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"xiangqi/internal/config"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	log.SetPrefix("xiangqi-local: ")

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	webDir := flag.String("web", cfg.WebDir, "directory with index.html / js / svg (empty: built-in page)")
	open := flag.Bool("open", cfg.OpenBrowser, "open the default browser")
	flag.Parse()

	srv := httpserver.NewServer(httpserver.Options{WebDir: *webDir})
	if *webDir == "" {
		log.Printf("listening on %s, serving built-in page", *addr)
	} else {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	}

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := *addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
