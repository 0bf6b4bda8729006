package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/entui/internal/entropy"
)

// WriteCSV writes one "offset,entropy" row per sample after a header row.
func WriteCSV(w io.Writer, ds *entropy.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"offset", "entropy"}); err != nil {
		return err
	}
	for _, s := range ds.Samples {
		row := []string{
			strconv.FormatInt(s.Offset, 10),
			strconv.FormatFloat(s.Entropy, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
