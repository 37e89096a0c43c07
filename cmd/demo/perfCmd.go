package demo

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/stubDB/cmd/util"
	"github.com/ValentinKolb/stubDB/lib/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for the simulation store",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfSkip = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. insert,fetch)"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	fmt.Println("Performance testing tool for the simulation store")
	fmt.Println()
	fmt.Println("staring tests...")

	insertResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("insert") {
			return
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := taskStore.Insert(ctx, Task{ID: uuid.NewString()}); err != nil {
				log.Printf("(insert) - error inserting task: %v\n", err)
			}
		}
	})
	printResult("insert", insertResult)

	fetchResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("fetch") {
			return
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := taskStore.Fetch(ctx); err != nil {
				log.Printf("(fetch) - error fetching tasks: %v\n", err)
			}
		}
	})
	printResult("fetch", fetchResult)

	fetchWhereResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("fetch-where") {
			return
		}

		req := store.FetchWhere(func(t Task) bool { return !t.Complete })

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := taskStore.FetchWith(ctx, req); err != nil {
				log.Printf("(fetch-where) - error fetching tasks: %v\n", err)
			}
		}
	})
	printResult("fetch-where", fetchWhereResult)

	updateResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("update") {
			return
		}

		// pick one task to update over and over
		target, ok, err := taskStore.FetchOneWith(ctx, store.FetchFirst[Task]())
		if err != nil || !ok {
			log.Printf("(update) - no task to update: %v\n", err)
			return
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := taskStore.UpdateWith(ctx, target.ID, store.UpdateOf(func(t *Task) {
				t.Complete = !t.Complete
			})); err != nil {
				log.Printf("(update) - error updating task: %v\n", err)
			}
		}
	})
	printResult("update", updateResult)

	mixedResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("mixed") {
			return
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id := uuid.NewString()
			var err error
			switch i % 3 {
			case 0: // insert
				_, err = taskStore.Insert(ctx, Task{ID: id})
			case 1: // fetch one
				_, _, err = taskStore.FetchOneWith(ctx, store.FetchLast[Task]())
			case 2: // delete
				err = taskStore.Delete(ctx, id)
			}

			if err != nil {
				log.Printf("(mixed) - error performing operation (%d): %v\n", i%3, err)
			}
		}
	})
	printResult("mixed", mixedResult)

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}
