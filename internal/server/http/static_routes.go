package httpserver

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed web
var embedded embed.FS

// webFS 返回静态页面的文件系统：dir 为空时用内置的记谱页面
func webFS(dir string) http.FileSystem {
	if dir != "" {
		return http.Dir(dir)
	}
	sub, err := fs.Sub(embedded, "web")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// RegisterStaticRoutes 把页面挂在 /web/ 下，根路径跳转过去。
func RegisterStaticRoutes(mux *http.ServeMux, dir string) {
	if mux == nil {
		return
	}
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(webFS(dir))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/web":
			http.Redirect(w, r, "/web/", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
}
