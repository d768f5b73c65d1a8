package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/eth-easl/sweeper/pkg/metric"
)

type Record struct {
	errorRate    float64
	meanDuration float64
}

func main() {
	var (
		inputDir   = flag.String("i", "data/out", "Path to the directory with invocation record CSV files")
		outputDir  = flag.String("o", "figs", "Path to the directory for output figures")
		debugLevel = flag.String("d", "info", "Debug level: info, debug")
	)
	flag.Parse()
	log.SetOutput(os.Stdout)

	switch *debugLevel {
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode is enabled")
	}

	records, totalFailedNum := parseFiles(*inputDir)
	log.Info("The number of failed trainer invocations is: ", totalFailedNum)

	plotFig(*outputDir, records)
}

func plotFig(outputDir string, records []Record) {
	if _, err := os.Stat(outputDir); errors.Is(err, os.ErrNotExist) {
		log.Info("Creating the output directory")
		err := os.Mkdir(outputDir, os.ModePerm)
		if err != nil {
			log.Fatal(err)
		}
	}

	p := plot.New()

	p.Title.Text = "Trainer wall time"
	p.X.Label.Text = "Label error rate"
	p.Y.Label.Text = "Mean duration [ms]"

	err := plotutil.AddLinePoints(p,
		"Line", getXY(records),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Save the plot to a PNG file.
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(outputDir, "durations.png")); err != nil {
		log.Fatal(err)
	}

	for _, rec := range records {
		log.Debug("Plotting ", rec.errorRate, rec.meanDuration)
	}
}

func parseFiles(inputDir string) ([]Record, int) {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatal("Cannot open the input directory:", err)
	}

	filePattern, err := regexp.Compile(`^.*_invocations_.*\.csv$`)
	if err != nil {
		log.Fatal("Error compiling: ", err)
	}

	durationsByRate := make(map[float64][]float64)
	var totalFailedNum int
	for _, file := range files {
		if matched := filePattern.MatchString(file.Name()); !matched {
			continue
		}

		log.Debug("Open file ", file.Name())
		failedNum := readInvocationRecords(filepath.Join(inputDir, file.Name()), durationsByRate)
		totalFailedNum += failedNum
	}

	var recs []Record
	for rate, durations := range durationsByRate {
		recs = append(recs, Record{
			errorRate:    rate,
			meanDuration: stat.Mean(durations, nil),
		})
	}

	return recs, totalFailedNum
}

func readInvocationRecords(filePath string, durationsByRate map[float64][]float64) int {
	f, err := os.Open(filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var invocationRecords []metric.InvocationRecord
	if err := gocsv.UnmarshalFile(f, &invocationRecords); err != nil {
		log.Fatal(err)
	}

	var failedNum int
	for _, rec := range invocationRecords {
		if rec.ExitCode != 0 {
			// failed trainer runs would skew the wall-time mean
			failedNum++
			continue
		}
		rate, err := strconv.ParseFloat(rec.ErrorRate, 64)
		if err != nil {
			log.Fatal("Cannot convert to float:", err)
		}
		durationsByRate[rate] = append(durationsByRate[rate], float64(rec.Duration))
	}

	return failedNum
}

func getXY(records []Record) plotter.XYs {
	sort.Slice(records, func(i, j int) bool {
		return records[i].errorRate < records[j].errorRate
	})

	pts := make(plotter.XYs, len(records))
	for i := range pts {
		pts[i].X = records[i].errorRate
		pts[i].Y = records[i].meanDuration
	}
	return pts
}
