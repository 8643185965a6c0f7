package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/tensile/internal/ingest"
	"github.com/san-kum/tensile/internal/tensile"
)

// Document is the wire form of a result. Field names follow the web
// client's expectations; metric names carry the default reporting units.
type Document struct {
	Displacement   []float64        `json:"displacement"`
	Load           []float64        `json:"load"`
	Stress         []float64        `json:"stress"`
	Strain         []float64        `json:"strain"`
	YoungsModulus  []float64        `json:"youngs_modulus"`
	TangentModulus []float64        `json:"tangent_modulus"`
	SlopeAngles    []float64        `json:"slope_angles"`
	ElasticModulus float64          `json:"elastic_modulus"`
	YieldPoint     *tensile.Point   `json:"yield_point"`
	YieldIndex     *int             `json:"yield_index"`
	FracturePoint  tensile.Point    `json:"fracture_point"`
	FractureIndex  int              `json:"fracture_index"`
	PeakIndex      int              `json:"peak_index"`
	OffsetLine     []tensile.XY     `json:"offset_line"`
	Metrics        DocumentMetrics  `json:"metrics"`
	Specimen       tensile.Specimen `json:"specimen"`
	ColumnsUsed    *ingest.Columns  `json:"columns_used,omitempty"`
}

type DocumentMetrics struct {
	MaxStressMPa     float64 `json:"max_stress_mpa"`
	YieldStrengthMPa float64 `json:"yield_strength_mpa"`
	MaxStrain        float64 `json:"max_strain"`
	MaxLoadN         float64 `json:"max_load_n"`
}

// NewDocument builds the wire form; cols may be nil when the series did not
// come from a file.
func NewDocument(res *tensile.Result, sp tensile.Specimen, cols *ingest.Columns) Document {
	m := res.Metrics.Rounded()
	return Document{
		Displacement:   res.Displacement,
		Load:           res.Load,
		Stress:         res.Stress,
		Strain:         res.Strain,
		YoungsModulus:  res.SecantModulus,
		TangentModulus: res.TangentModulus,
		SlopeAngles:    res.SlopeAngles,
		ElasticModulus: res.Modulus,
		YieldPoint:     res.YieldPoint,
		YieldIndex:     res.YieldIndex,
		FracturePoint:  res.FracturePoint,
		FractureIndex:  res.FractureIndex,
		PeakIndex:      res.PeakIndex,
		OffsetLine:     res.OffsetLine,
		Metrics: DocumentMetrics{
			MaxStressMPa:     m.MaxStress,
			YieldStrengthMPa: m.YieldStrength,
			MaxStrain:        m.MaxStrain,
			MaxLoadN:         m.MaxLoad,
		},
		Specimen:    sp,
		ColumnsUsed: cols,
	}
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func SaveJSON(path string, doc Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, doc)
}
