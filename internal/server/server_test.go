package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/export"
	"github.com/san-kum/tensile/internal/server"
)

const scenarioCSV = "Displacement (mm),Load (N)\n0,0\n1,100\n2,200\n4,300\n6,250\n7,260\n"

type errBody struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind"`
	Columns []string `json:"columns"`
}

func multipartRequest(path, filename, content string, fields map[string]string) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		Expect(err).NotTo(HaveOccurred())
		_, err = io.WriteString(fw, content)
		Expect(err).NotTo(HaveOccurred())
	}
	for k, v := range fields {
		Expect(mw.WriteField(k, v)).To(Succeed())
	}
	Expect(mw.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(path string, body any) *http.Request {
	data, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var _ = Describe("Server", func() {
	var (
		cfg *config.Config
		srv *server.Server
	)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	decodeErr := func(rec *httptest.ResponseRecorder) errBody {
		var body errBody
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return body
	}

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Server.RateLimit = 1000
		cfg.Server.RateBurst = 1000
		srv = server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("GET /api/health", func() {
		It("reports ok", func() {
			rec := serve(httptest.NewRequest(http.MethodGet, "/api/health", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"ok"`))
		})
	})

	Describe("POST /api/analyze", func() {
		It("analyzes an uploaded CSV", func() {
			req := multipartRequest("/api/analyze", "run.csv", scenarioCSV,
				map[string]string{"area": "0.0003", "length": "0.05"})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

			var doc export.Document
			Expect(json.Unmarshal(rec.Body.Bytes(), &doc)).To(Succeed())
			Expect(doc.Stress).To(HaveLen(6))
			Expect(doc.PeakIndex).To(Equal(3))
			Expect(doc.Metrics.MaxLoadN).To(Equal(300.0))
			Expect(doc.Metrics.MaxStressMPa).To(Equal(1.0))
			Expect(doc.Specimen.Area).To(Equal(0.0003))
			Expect(doc.ColumnsUsed).NotTo(BeNil())
			Expect(doc.ColumnsUsed.DispName).To(Equal("displacement (mm)"))
			Expect(doc.ColumnsUsed.LoadName).To(Equal("load (n)"))
		})

		It("falls back to configured geometry", func() {
			rec := serve(multipartRequest("/api/analyze", "run.csv", scenarioCSV, nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var doc export.Document
			Expect(json.Unmarshal(rec.Body.Bytes(), &doc)).To(Succeed())
			Expect(doc.Specimen).To(Equal(cfg.Specimen))
		})

		It("rejects a zero area", func() {
			req := multipartRequest("/api/analyze", "run.csv", scenarioCSV,
				map[string]string{"area": "0", "length": "0.05"})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeErr(rec).Kind).To(Equal("invalid_parameter"))
		})

		It("rejects a non-numeric length", func() {
			req := multipartRequest("/api/analyze", "run.csv", scenarioCSV,
				map[string]string{"length": "long"})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeErr(rec).Kind).To(Equal("invalid_parameter"))
		})

		It("reports insufficient data for a single sample", func() {
			req := multipartRequest("/api/analyze", "run.csv", "disp,load\n1,10\n", nil)
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decodeErr(rec).Kind).To(Equal("insufficient_data"))
		})

		It("lists the headers when columns are missing", func() {
			req := multipartRequest("/api/analyze", "run.csv", "time,temp\n0,20\n1,21\n", nil)
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			body := decodeErr(rec)
			Expect(body.Kind).To(Equal("columns_not_found"))
			Expect(body.Columns).To(Equal([]string{"time", "temp"}))
		})

		It("rejects unsupported file types", func() {
			rec := serve(multipartRequest("/api/analyze", "run.json", scenarioCSV, nil))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeErr(rec).Kind).To(Equal("unreadable_input"))
		})

		It("requires a file", func() {
			rec := serve(multipartRequest("/api/analyze", "", "", map[string]string{"area": "1"}))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeErr(rec).Kind).To(Equal("bad_request"))
		})

		It("honours configured column keys", func() {
			cfg.Columns.Displacement = []string{"stroke"}
			srv = server.New(cfg, nil)
			csv := "Stroke,Load\n0,0\n1,100\n2,200\n"
			rec := serve(multipartRequest("/api/analyze", "run.csv", csv, nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("POST /api/analyze/series", func() {
		It("analyzes inline arrays", func() {
			req := jsonRequest("/api/analyze/series", server.SeriesRequest{
				Displacement: []float64{0, 1, 2, 4, 6, 7},
				Load:         []float64{0, 100, 200, 300, 250, 260},
				Area:         0.0003,
				GaugeLength:  0.05,
			})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var doc export.Document
			Expect(json.Unmarshal(rec.Body.Bytes(), &doc)).To(Succeed())
			Expect(doc.ColumnsUsed).To(BeNil())
			Expect(doc.FractureIndex).To(BeNumerically(">=", doc.PeakIndex))
			Expect(doc.OffsetLine).NotTo(BeNil())
		})

		It("reports mismatched lengths", func() {
			req := jsonRequest("/api/analyze/series", server.SeriesRequest{
				Displacement: []float64{0, 1, 2},
				Load:         []float64{0, 1},
				Area:         1,
				GaugeLength:  1,
			})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeErr(rec).Kind).To(Equal("length_mismatch"))
		})

		It("rejects malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze/series", strings.NewReader("{"))
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /api/report", func() {
		It("returns a PDF", func() {
			req := multipartRequest("/api/report", "run.csv", scenarioCSV,
				map[string]string{"area": "0.0003", "length": "0.05", "title": "Bar 7"})
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/pdf"))
			Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring(`run.pdf`))
			Expect(rec.Body.String()).To(HavePrefix("%PDF"))
		})
	})

	Describe("middleware", func() {
		It("answers CORS preflight", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
			rec := serve(req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("rate limits per client", func() {
			cfg.Server.RateLimit = 0.001
			cfg.Server.RateBurst = 1
			srv = server.New(cfg, nil)

			body := server.SeriesRequest{Displacement: []float64{0, 1}, Load: []float64{0, 1}, Area: 1, GaugeLength: 1}
			Expect(serve(jsonRequest("/api/analyze/series", body)).Code).To(Equal(http.StatusOK))
			Expect(serve(jsonRequest("/api/analyze/series", body)).Code).To(Equal(http.StatusTooManyRequests))

			// health is not limited
			Expect(serve(httptest.NewRequest(http.MethodGet, "/api/health", nil)).Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Run", func() {
		It("shuts down when the context is cancelled", func() {
			cfg.Server.Addr = "127.0.0.1:0"
			srv = server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- srv.Run(ctx) }()

			time.Sleep(50 * time.Millisecond)
			cancel()
			Eventually(done, 2*time.Second).Should(Receive(BeNil()))
		})
	})
})
