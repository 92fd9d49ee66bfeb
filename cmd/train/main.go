// playnet-train: Standalone trainer demo for playnet_lib
//
// Usage:
//
//	playnet-train --data=circle --arch="2 4 2 1" --steps=2000 --lr=0.03
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"playnet_lib/dataset"
	"playnet_lib/nn"
	"playnet_lib/trainer"
	"playnet_lib/utils"
)

var (
	arch         = flag.String("arch", "2 4 2 1", "Layer sizes, input layer first")
	data         = flag.String("data", "circle", "Dataset: circle, xor, gauss, spiral")
	activation   = flag.String("activation", "tanh", "Hidden activation: tanh, relu, sigmoid, linear")
	outputAct    = flag.String("output-activation", "tanh", "Output activation")
	regName      = flag.String("reg", "none", "Regularization: none, l1, l2")
	regRate      = flag.Float64("reg-rate", 0, "Regularization rate")
	learningRate = flag.Float64("lr", 0.03, "Learning rate")
	batchSize    = flag.Int("batch", 10, "Examples per weight update")
	steps        = flag.Int("steps", 2000, "Training steps (one example each)")
	noise        = flag.Float64("noise", 0, "Dataset noise amplitude")
	samples      = flag.Int("samples", 500, "Number of synthetic samples")
	seed         = flag.Int64("seed", 42, "Random seed")
	prune        = flag.Float64("prune", 0, "After training, prune links below this |weight| (0 = off)")
	lossInterval = flag.Int("loss-interval", 200, "Steps between loss reports")
	verbose      = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose
	src := rand.NewSource(uint64(*seed))

	shape, err := utils.ParseArchitecture(*arch)
	if err != nil {
		fatalf("Bad architecture %q: %v", *arch, err)
	}
	if len(shape) > 0 && shape[0] != 2 {
		fatalf("Datasets are 2-D; architecture must start with 2, got %v", shape)
	}
	inputIDs := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		inputIDs = append(inputIDs, fmt.Sprintf("x%d", i+1))
	}
	if err := utils.ValidateShape(shape, inputIDs); err != nil {
		fatalf("Bad architecture %q: %v", *arch, err)
	}

	gen, ok := dataset.Lookup[*data]
	if !ok {
		fatalf("Unknown dataset: %s", *data)
	}
	act, ok := nn.ActivationLookup[*activation]
	if !ok {
		fatalf("Unknown activation: %s", *activation)
	}
	outAct, ok := nn.ActivationLookup[*outputAct]
	if !ok {
		fatalf("Unknown output activation: %s", *outputAct)
	}
	reg, ok := nn.RegularizationLookup[*regName]
	if !ok {
		fatalf("Unknown regularization: %s", *regName)
	}

	fmt.Println("playnet_lib trainer")
	fmt.Printf("\nConfiguration:\n")
	fmt.Printf("  Architecture:  %v\n", shape)
	fmt.Printf("  Dataset:       %s (%d samples, noise %.2f)\n", *data, *samples, *noise)
	fmt.Printf("  Activation:    %s / %s\n", act, outAct)
	fmt.Printf("  Regularizer:   %s (rate %.4f)\n", *regName, *regRate)
	fmt.Printf("  Learning Rate: %.4f\n", *learningRate)
	fmt.Printf("  Batch Size:    %d\n", *batchSize)
	fmt.Printf("  Steps:         %d\n", *steps)
	fmt.Println()

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	start := time.Now()
	examples := gen(*samples, *noise, src)
	stats.DataGenTime = time.Since(start)
	xs, ys := dataset.Split(examples)

	start = time.Now()
	net := nn.NewNetwork(shape, act, outAct, reg, inputIDs, false, src)
	stats.ModelInitTime = time.Since(start)
	fmt.Printf("Network: %d layers, %d nodes, %d links\n\n", len(net.Layers), len(net.Nodes), len(net.Links))

	tr := trainer.New(net, *learningRate, *regRate)

	for step := 1; step <= *steps; step++ {
		ex := examples[(step-1)%len(examples)]

		start = time.Now()
		if _, err := tr.Step(ex.X, ex.Label, nn.Square{}); err != nil {
			fatalf("Step %d: %v", step, err)
		}
		stats.StepTime += time.Since(start)

		if step%*batchSize == 0 {
			start = time.Now()
			tr.UpdateWeights()
			stats.UpdateTime += time.Since(start)
		}

		if step%*lossInterval == 0 || step == *steps {
			start = time.Now()
			loss, err := tr.Loss(xs, ys, nn.Square{})
			if err != nil {
				fatalf("Loss at step %d: %v", step, err)
			}
			stats.LossTime += time.Since(start)
			fmt.Printf("Step %d/%d | Loss: %.6f\n", step, *steps, loss)
		}
	}
	stats.TotalTime = time.Since(totalStart)
	fmt.Printf("\nTraining complete! Total time: %.2fs\n", stats.TotalTime.Seconds())

	if *prune > 0 {
		pruned := tr.PruneBelow(*prune)
		fmt.Printf("Pruned %d/%d links below |%.3f|\n", pruned, len(net.Links), *prune)
	}

	if *verbose {
		utils.PrintTimingStats(stats, *steps)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
