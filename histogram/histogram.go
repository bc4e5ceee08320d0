// Package histogram reads coverage histograms of the form depth,count.
package histogram

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/floats"
)

// ErrMalformedLine is returned when a histogram line does not have an integer count after a comma.
var ErrMalformedLine = errors.New("malformed histogram line")

// Bin is one line of a coverage histogram. Equivalent to one line of the purge_haplotigs hist csv.
type Bin struct {
	Depth string // coverage depth label, kept as text
	Count int    // number of observations at Depth
}

// String method for Bin enables easy writing with the fmt package.
func (b Bin) String() string {
	return fmt.Sprintf("%s,%d", b.Depth, b.Count)
}

// Read a histogram file to a slice of bins in file order.
// The file order is trusted to be ascending coverage depth and is never sorted.
func Read(filename string) ([]Bin, error) {
	return ReadLog(filename, nil)
}

// ReadLog is Read with a debug line written to log before the file is opened.
// A nil log is allowed.
func ReadLog(filename string, log *logrus.Logger) ([]Bin, error) {
	if log != nil {
		log.Debugf("Reading %s...", filename)
	}
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}
	file := fileio.EasyOpen(filename)
	var answer []Bin
	var curr Bin
	var line string
	var col []string
	var done bool
	var err error
	var recordNum int
	seen := make(map[string]int) // maps depth label to index in answer
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		recordNum++
		col = strings.Split(line, ",")
		if len(col) < 2 {
			file.Close()
			return nil, fmt.Errorf("%w: %s record %d: %q has no comma", ErrMalformedLine, filename, recordNum, line)
		}

		curr.Depth = col[0]
		curr.Count, err = strconv.Atoi(strings.TrimSpace(col[1]))
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("%w: %s record %d: %v", ErrMalformedLine, filename, recordNum, err)
		}

		// repeated depth keeps the first position and the last count
		if idx, found := seen[curr.Depth]; found {
			answer[idx].Count = curr.Count
			continue
		}
		seen[curr.Depth] = len(answer)
		answer = append(answer, curr)
	}

	err = file.Close()
	exception.PanicOnErr(err)
	return answer, nil
}

// Counts returns the coverage-count sequence. Index i of the output is bins[i].Count.
func Counts(bins []Bin) []float64 {
	ans := make([]float64, len(bins))
	for i := range bins {
		ans[i] = float64(bins[i].Count)
	}
	return ans
}

// Total number of observations in the histogram.
func Total(bins []Bin) float64 {
	return floats.Sum(Counts(bins))
}
