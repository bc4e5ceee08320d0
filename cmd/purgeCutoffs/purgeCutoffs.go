package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dasnellings/purgeCutoffs/cutoffs"
	"github.com/vertgenlab/gonomics/exception"
)

func usage() {
	fmt.Print(
		"purgeCutoffs - Estimate low, midpoint, and high coverage cutoffs for purge_haplotigs from a coverage histogram.\n" +
			"Writes " + cutoffs.CriticalValuesFile + " and " + cutoffs.LowMidHighFile + " to the current directory.\n" +
			"Usage:\n" +
			"purgeCutoffs input.hist.csv\n\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		log.Fatal("ERROR: Must input a single coverage histogram file.")
	}

	logFile, err := os.OpenFile(cutoffs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	exception.PanicOnErr(err)
	logger := cutoffs.NewLogger(logFile)
	logger.Debug("Starting script...")

	err = cutoffs.Run(flag.Arg(0), ".", logger)
	exception.PanicOnErr(err)
	err = logFile.Close()
	exception.PanicOnErr(err)
}
