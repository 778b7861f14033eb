package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/avstrong/confirmation/internal/booking"
	"github.com/avstrong/confirmation/internal/render"
)

const (
	confirmationsPath = "/api/confirmations/v1"
	stylesPath        = "/api/styles/v1"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) renderForm(w http.ResponseWriter, status int, view formView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := s.form.Execute(w, view); err != nil {
		s.l.LogErrorf("Could not render booking form: %v", err.Error())
	}
}

// reject answers a request that cannot produce a document. Form posts get
// the form back with the problems next to their fields.
func (s *Server) reject(w http.ResponseWriter, req *confirmationRequest, status int, fields map[string][]string) {
	if req != nil && req.fromForm {
		s.renderForm(w, status, s.newFormView(req, fields))

		return
	}

	s.writeJSON(w, status, fields)
}

func (s *Server) createConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes)

	req, err := decodeRequest(r, s.conf.MaxBodyBytes)
	if errors.Is(err, ErrUnsupportedContent) {
		http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)

		return
	}

	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string][]string{"body": {"malformed request body"}})

		return
	}

	in, lenient, fields := req.input()

	for _, field := range lenient {
		s.l.LogWarnf("Field %s is not a number, it is rendered as 0.00", field)
	}

	if len(fields) > 0 {
		s.reject(w, req, http.StatusBadRequest, fields)

		return
	}

	doc, err := s.issuer.Issue(ctx, in, req.Style)
	if validationErr := booking.IsValidationError(err); validationErr != nil {
		s.reject(w, req, http.StatusBadRequest, validationErr.Fields())

		return
	}

	if errors.Is(err, render.ErrUnknownStyle) {
		s.reject(w, req, http.StatusUnprocessableEntity, map[string][]string{
			"style": {fmt.Sprintf("unknown style %q", req.Style)},
		})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not issue confirmation: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", render.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(doc.Content); err != nil {
		s.l.LogErrorf("Could not write confirmation %s: %v", doc.Filename, err.Error())
	}
}

func (s *Server) formHandler(w http.ResponseWriter, _ *http.Request) {
	s.renderForm(w, http.StatusOK, s.newFormView(nil, nil))
}

func (s *Server) stylesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"default": s.issuer.DefaultStyle(),
		"styles":  s.issuer.Styles(),
	})
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handle(r *http.ServeMux, pattern string, h http.HandlerFunc) {
	r.Handle(pattern, s.applyMiddlewares(h, s.loggerMiddleware(), s.requestIDMiddleware(), s.recoverMiddleware()))
}

func (s *Server) addRoutes(r *http.ServeMux) {
	s.handle(r, "GET /{$}", s.formHandler)
	s.handle(r, "POST "+confirmationsPath, s.createConfirmationHandler)
	s.handle(r, "GET "+stylesPath, s.stylesHandler)
	s.handle(r, fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}
