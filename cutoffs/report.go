package cutoffs

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vertgenlab/gonomics/fileio"
)

const (
	CriticalValuesFile = "critical_values.csv"
	LowMidHighFile     = "low_mid_high.csv"
)

// WriteCriticalValues writes the x (depth) and y (count) of each cutoff as a small table.
func WriteCriticalValues(w io.Writer, c Cutoffs) error {
	_, err := fmt.Fprintf(w, "Critical point, X, Y\nLow, %s, %d\nMidpoint, %s, %d\nHigh, %s, %d\n",
		c.Low.Depth, c.Low.Count, c.Mid.Depth, c.Mid.Count, c.High.Depth, c.High.Count)
	return err
}

// WriteLowMidHigh writes the cutoff depths in the form read by purge_haplotigs.
func WriteLowMidHigh(w io.Writer, c Cutoffs) error {
	_, err := fmt.Fprintf(w, "cutoff_low,cutoff_mid,cutoff_high\n%s,%s,%s\n", c.Low.Depth, c.Mid.Depth, c.High.Depth)
	return err
}

// WriteReports creates (or overwrites) CriticalValuesFile and LowMidHighFile in dir.
// Files are not written atomically.
func WriteReports(dir string, c Cutoffs) error {
	if err := writeFile(filepath.Join(dir, CriticalValuesFile), c, WriteCriticalValues); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, LowMidHighFile), c, WriteLowMidHigh)
}

func writeFile(filename string, c Cutoffs, write func(io.Writer, Cutoffs) error) error {
	out := fileio.EasyCreate(filename)
	err := write(out, c)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
