package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/tensile/internal/tensile"
)

var csvHeader = []string{
	"index", "displacement", "load", "strain", "stress",
	"tangent_modulus", "secant_modulus", "slope_angle",
}

// WriteCSV writes one row per sample.
func WriteCSV(w io.Writer, res *tensile.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := 0; i < res.Len(); i++ {
		row := []string{
			strconv.Itoa(i),
			formatFloat(res.Displacement[i]),
			formatFloat(res.Load[i]),
			formatFloat(res.Strain[i]),
			formatFloat(res.Stress[i]),
			formatFloat(res.TangentModulus[i]),
			formatFloat(res.SecantModulus[i]),
			formatFloat(res.SlopeAngles[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, res *tensile.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, res)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
