package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/confirmation/internal/booking"
	"github.com/avstrong/confirmation/internal/logger"
	"github.com/avstrong/confirmation/internal/render"
)

//go:embed templates/*.html
var templates embed.FS

type issuer interface {
	Issue(ctx context.Context, in booking.Input, style string) (*render.Document, error)
	Styles() []string
	DefaultStyle() string
}

type Server struct {
	srv    *http.Server
	router *http.ServeMux
	l      *logger.Logger
	conf   Conf
	issuer issuer
	form   *template.Template
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	MaxBodyBytes      int64
}

const defaultMaxBodyBytes = 64 << 10

func New(ctx context.Context, conf Conf, issuer issuer) (*Server, error) {
	form, err := template.ParseFS(templates, "templates/form.html")
	if err != nil {
		return nil, fmt.Errorf("parse form template: %w", err)
	}

	if conf.MaxBodyBytes <= 0 {
		conf.MaxBodyBytes = defaultMaxBodyBytes
	}

	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:    srv,
		router: mux,
		l:      conf.L,
		conf:   conf,
		issuer: issuer,
		form:   form,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
