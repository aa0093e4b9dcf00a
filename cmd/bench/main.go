// Command bench times threshold signature combination across a range of
// thresholds and renders the results as a PNG line chart.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/threshold-crypto/tcrypto"
)

func main() {
	maxThreshold := flag.Int("max-threshold", 32, "largest threshold t to benchmark")
	iterations := flag.Int("iterations", 20, "iterations to average per threshold")
	output := flag.String("output", "combine_signatures.png", "output PNG path")
	flag.Parse()

	var thresholds []float64
	var combineMicros []float64

	msg := []byte("benchmark message")

	for t := 1; t <= *maxThreshold; t++ {
		set, err := tcrypto.TryRandomSecretKeySet(t, rand.Reader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generating key set for t=%d: %v\n", t, err)
			os.Exit(1)
		}
		pubSet := set.PublicKeys()

		shares := make(map[uint64]*tcrypto.SignatureShare, t+1)
		for i := 0; i <= t; i++ {
			shares[uint64(i)] = set.SecretKeyShare(uint64(i)).Sign(msg)
		}

		start := time.Now()
		for i := 0; i < *iterations; i++ {
			if _, err := pubSet.CombineSignatures(shares); err != nil {
				fmt.Fprintf(os.Stderr, "combining signatures for t=%d: %v\n", t, err)
				os.Exit(1)
			}
		}
		combineElapsed := time.Since(start)

		thresholds = append(thresholds, float64(t))
		combineMicros = append(combineMicros, float64(combineElapsed.Microseconds())/float64(*iterations))

		fmt.Printf("t=%-4d combine_signatures: %v/op\n", t, combineElapsed/time.Duration(*iterations))
	}

	graph := chart.Chart{
		Title: "CombineSignatures latency vs threshold",
		XAxis: chart.XAxis{Name: "threshold (t)"},
		YAxis: chart.YAxis{Name: "microseconds/op"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "combine_signatures",
				XValues: thresholds,
				YValues: combineMicros,
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", *output, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		fmt.Fprintf(os.Stderr, "rendering chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("chart written to %s\n", *output)
}
