package httpserver

import "net/http"

// Options 指定静态页面目录，为空时用内置页面
type Options struct {
	WebDir string
}

// Server 把 /api/ 和静态页面挂到同一个 mux 上。
type Server struct {
	mux *http.ServeMux
	api *Handler
}

func NewServer(opts Options) *Server {
	s := &Server{mux: http.NewServeMux(), api: NewHandler()}
	s.mux.Handle("/api/", s.api)
	RegisterStaticRoutes(s.mux, opts.WebDir)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
