// Package cutoffs estimates the low, midpoint, and high coverage cutoffs used by
// purge_haplotigs to separate haplotigs from primary contigs.
//
// In an unphased assembly the haplotigs show around half the coverage of the diploid
// co-assembled contigs. When the assembly shows this pattern, the three cutoffs can be
// estimated as the first three local minima (order 3) of the coverage vs. count curve.
// That assumption does not always hold; check the purge_haplotigs readhist plot.
package cutoffs

import (
	"errors"
	"fmt"

	"github.com/dasnellings/purgeCutoffs/histogram"
	"github.com/dasnellings/purgeCutoffs/peaks"
	"github.com/sirupsen/logrus"
)

const (
	PeakWidth   float64 = 10 // minimum width at half prominence of a coverage peak
	MinimaOrder int     = 3  // samples on each side a minimum must be lower than
	minPeaks    int     = 2
	numCutoffs  int     = 3
)

// ErrInsufficientMinima is returned when the histogram has fewer local minima than cutoffs.
var ErrInsufficientMinima = errors.New("insufficient local minima found")

const peakWarning = "WARNING:\t%d coverage peaks were estimated in the histogram generated from your .bam file,\n" +
	"\twhen 2 or more are expected. The low, midpoint, and high cutoff points estimated\n" +
	"\tby this script may not be sensible. Please inspect the pattern in the purge_haplotigs .png output.\n" +
	"\tFor more information, see:\n" +
	"\thttps://bitbucket.org/mroachawri/purge_haplotigs/wiki/Tutorial\n"

// Cutoffs are the estimated critical points of a coverage histogram.
type Cutoffs struct {
	Low    histogram.Bin
	Mid    histogram.Bin
	High   histogram.Bin
	Peaks  int             // number of wide peaks found
	Minima []histogram.Bin // all local minima in depth order
}

// Estimate the cutoffs from the first three local minima of bins. The peak count is advisory
// and only produces a warning in log. Nothing is written to disk.
func Estimate(bins []histogram.Bin, log *logrus.Logger) (Cutoffs, error) {
	var ans Cutoffs
	counts := histogram.Counts(bins)

	ans.Peaks = len(peaks.Find(counts, PeakWidth))
	log.Infof("%d peaks were estimated from the histogram generated from your .bam file.", ans.Peaks)
	if ans.Peaks < minPeaks {
		log.Warnf(peakWarning, ans.Peaks)
	}

	minima := peaks.RelMin(counts, MinimaOrder)
	ans.Minima = make([]histogram.Bin, len(minima))
	for i := range minima {
		ans.Minima[i] = bins[minima[i]]
	}
	log.Debugf("%d local minima found with order %d: %v", len(ans.Minima), MinimaOrder, ans.Minima)

	if len(ans.Minima) < numCutoffs {
		return ans, fmt.Errorf("%w: need %d, found %d", ErrInsufficientMinima, numCutoffs, len(ans.Minima))
	}
	ans.Low, ans.Mid, ans.High = ans.Minima[0], ans.Minima[1], ans.Minima[2]
	return ans, nil
}

// Run reads the histogram in input, estimates the cutoffs, and writes both reports to outDir.
// No report is written if the cutoffs cannot be estimated.
func Run(input, outDir string, log *logrus.Logger) error {
	bins, err := histogram.ReadLog(input, log)
	if err != nil {
		return err
	}
	log.Debugf("Read %d coverage values totalling %.0f observations", len(bins), histogram.Total(bins))

	c, err := Estimate(bins, log)
	if err != nil {
		return err
	}
	log.Infof("Cutoffs: low %s, midpoint %s, high %s", c.Low.Depth, c.Mid.Depth, c.High.Depth)
	return WriteReports(outDir, c)
}
