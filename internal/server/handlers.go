package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/tensile/internal/export"
	"github.com/san-kum/tensile/internal/ingest"
	"github.com/san-kum/tensile/internal/tensile"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// upload is a parsed multipart analysis request.
type upload struct {
	name     string
	dataset  *ingest.Dataset
	specimen tensile.Specimen
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart form: %v", errBadRequest, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: no file uploaded", errBadRequest)
	}
	defer file.Close()

	sp := s.cfg.Specimen
	if sp.Area, err = formFloat(r, "area", sp.Area); err != nil {
		return nil, err
	}
	if sp.GaugeLength, err = formFloat(r, "length", sp.GaugeLength); err != nil {
		return nil, err
	}
	// reject bad geometry before spending time on the file
	err = tensile.Input{Specimen: sp, Units: s.cfg.Units}.Validate()
	if errors.Is(err, tensile.ErrInvalidParameter) {
		return nil, err
	}

	format, err := ingest.FormatFromName(header.Filename)
	if err != nil {
		return nil, err
	}
	ds, err := ingest.Parse(file, format, s.resolver)
	if err != nil {
		return nil, err
	}

	return &upload{name: filepath.Base(header.Filename), dataset: ds, specimen: sp}, nil
}

func formFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", tensile.ErrInvalidParameter, key, raw)
	}
	return v, nil
}

func (s *Server) analyze(u *upload) (*tensile.Result, error) {
	return tensile.Analyze(tensile.Input{
		Displacement: u.dataset.Series.Displacement,
		Load:         u.dataset.Series.Load,
		Specimen:     u.specimen,
		Units:        s.cfg.Units,
	})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status, resp := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
		resp = errorResponse{Error: "internal error", Kind: resp.Kind}
	}
	writeJSON(w, status, resp)
}

func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	u, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}

	res, err := s.analyze(u)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.log.Debug("analyzed upload", "file", u.name, "samples", res.Len(),
		"dropped_displacement", u.dataset.Series.DroppedDisplacement,
		"dropped_load", u.dataset.Series.DroppedLoad)
	writeJSON(w, http.StatusOK, export.NewDocument(res, u.specimen, &u.dataset.Columns))
}

// SeriesRequest is the JSON body of /api/analyze/series.
type SeriesRequest struct {
	Displacement []float64 `json:"displacement"`
	Load         []float64 `json:"load"`
	Area         float64   `json:"area"`
	GaugeLength  float64   `json:"gauge_length"`
}

func (s *Server) analyzeSeries(w http.ResponseWriter, r *http.Request) {
	var req SeriesRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sp := tensile.Specimen{Area: req.Area, GaugeLength: req.GaugeLength}
	res, err := tensile.Analyze(tensile.Input{
		Displacement: req.Displacement,
		Load:         req.Load,
		Specimen:     sp,
		Units:        s.cfg.Units,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export.NewDocument(res, sp, nil))
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	u, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}

	res, err := s.analyze(u)
	if err != nil {
		s.fail(w, err)
		return
	}

	base := strings.TrimSuffix(u.name, filepath.Ext(u.name))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".pdf"))
	meta := export.ReportMeta{Title: r.FormValue("title"), Source: u.name, Specimen: u.specimen}
	if err := export.WritePDF(w, res, meta); err != nil {
		s.log.Error("report generation failed", "err", err)
	}
}
