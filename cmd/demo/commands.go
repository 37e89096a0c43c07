package demo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ValentinKolb/stubDB/cmd/util"
	"github.com/ValentinKolb/stubDB/lib/store"
	"github.com/google/uuid"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Walk through a full store session",
		Long: util.WrapString("Runs insert, fetch, filter, update, delete and " +
			"stream operations against the session store and reports how long " +
			"each operation category took under the configured delay profile."),
		RunE: runSession,
	}
	seedCmd = &cobra.Command{
		Use:   "seed [file]",
		Short: "Generate a seed file with random tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetCodec()
			if err != nil {
				return err
			}
			tasks := generateTasks(viper.GetInt("count"))
			data, err := c.Marshal(tasks)
			if err != nil {
				return err
			}
			if err := writeFile(args[0], data); err != nil {
				return err
			}
			fmt.Printf("wrote %d tasks to %s\n", len(tasks), args[0])
			return nil
		},
	}
)

func init() {
	key := "dump"
	runCmd.Flags().String(key, "", util.WrapString("Optional path to dump the final store contents to"))
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	timers := gometrics.NewRegistry()

	timed := func(name string, fn func() error) error {
		var err error
		gometrics.GetOrRegisterTimer(name, timers).Time(func() {
			err = fn()
		})
		return err
	}

	// insert a fresh task through a request
	if err := timed("insert", func() error {
		inserted, err := taskStore.InsertWith(ctx, store.InsertOf(func() Task {
			return Task{ID: uuid.NewString(), Description: "Review session notes"}
		}))
		if err != nil {
			return err
		}
		demoLogger.Infof("inserted task %s", inserted.ID)
		return nil
	}); err != nil {
		return err
	}

	// full fetch
	var all []Task
	if err := timed("fetch", func() error {
		var err error
		all, err = taskStore.Fetch(ctx)
		return err
	}); err != nil {
		return err
	}
	fmt.Printf("store holds %d tasks\n", len(all))

	// filtered fetch
	if err := timed("fetch", func() error {
		open, err := taskStore.FetchWith(ctx, store.FetchWhere(func(t Task) bool {
			return !t.Complete
		}))
		if err != nil {
			return err
		}
		fmt.Printf("%d tasks are still open\n", len(open))
		return nil
	}); err != nil {
		return err
	}

	// first and last element
	if err := timed("fetch", func() error {
		if first, ok, err := taskStore.FetchOneWith(ctx, store.FetchFirst[Task]()); err != nil {
			return err
		} else if ok {
			fmt.Printf("oldest task: %s\n", first.Description)
		}
		if last, ok, err := taskStore.FetchOneWith(ctx, store.FetchLast[Task]()); err != nil {
			return err
		} else if ok {
			fmt.Printf("newest task: %s\n", last.Description)
		}
		return nil
	}); err != nil {
		return err
	}

	// complete the oldest open task
	if err := timed("update", func() error {
		open, ok, err := taskStore.FetchOneWith(ctx, store.FetchOneWhere(func(t Task) bool {
			return !t.Complete
		}))
		if err != nil || !ok {
			return err
		}
		if _, err := taskStore.UpdateWith(ctx, open.ID, store.UpdateOf(func(t *Task) {
			t.Complete = true
		})); err != nil {
			return err
		}
		demoLogger.Infof("completed task %s", open.ID)
		return nil
	}); err != nil {
		return err
	}

	// clear out everything already done
	if err := timed("delete", func() error {
		return taskStore.DeleteWhere(ctx, func(t Task) bool {
			return t.Complete
		})
	}); err != nil {
		return err
	}

	// stream the remainder, one element per simulated round-trip
	if err := timed("stream", func() error {
		count := 0
		for task := range taskStore.Stream(ctx) {
			fmt.Printf("  -> %s\n", task.Description)
			count++
		}
		fmt.Printf("streamed %d tasks\n", count)
		return nil
	}); err != nil {
		return err
	}

	printTimers(timers)

	// optionally dump the final contents
	if path := viper.GetString("dump"); path != "" {
		c, err := util.GetCodec()
		if err != nil {
			return err
		}
		final, err := taskStore.Fetch(ctx)
		if err != nil {
			return err
		}
		data, err := c.Marshal(final)
		if err != nil {
			return err
		}
		if err := writeFile(path, data); err != nil {
			return err
		}
		fmt.Printf("dumped %d tasks to %s\n", len(final), path)
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// printTimers prints count and mean duration per operation category
func printTimers(r gometrics.Registry) {
	fmt.Println("\nTimings:")
	r.Each(func(name string, metric interface{}) {
		if timer, ok := metric.(gometrics.Timer); ok {
			fmt.Printf("  %-10s%d ops\tmean %s\n", name, timer.Count(), time.Duration(int64(timer.Mean())))
		}
	})
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
