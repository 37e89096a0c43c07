package demo

import (
	"fmt"

	"github.com/ValentinKolb/stubDB/cmd/util"
	"github.com/ValentinKolb/stubDB/lib/logging"
	"github.com/ValentinKolb/stubDB/lib/store"
	"github.com/ValentinKolb/stubDB/lib/store/mstore"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Task is the element type the demo session stores
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// Identity implements store.Identifiable
func (t Task) Identity() string {
	return t.ID
}

var (
	demoLogger = logger.GetLogger("demo")

	// the session's stores, addressable by name
	registry  = store.NewRegistry[string, Task]()
	taskStore store.IStore[string, Task]

	// DemoCommands represents the demo command group
	DemoCommands = &cobra.Command{
		Use:               "demo",
		Short:             "Run a simulated store session",
		PersistentPreRunE: setupStore,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add common simulation flags to the demo command
	util.SetupStoreFlags(DemoCommands)

	key := "count"
	DemoCommands.PersistentFlags().Int(key, 10, util.WrapString("Number of tasks to generate when no seed file is given"))
	key = "seed-file"
	DemoCommands.PersistentFlags().String(key, "", util.WrapString("Optional path to a seed file to load the initial tasks from"))

	// Add subcommands
	DemoCommands.AddCommand(runCmd)
	DemoCommands.AddCommand(seedCmd)
	DemoCommands.AddCommand(perfTestCmd)
}

// setupStore creates the session's task store from the configured flags
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	if err := logging.Setup(viper.GetString("log-level")); err != nil {
		return err
	}

	profile, err := util.GetDelayProfile()
	if err != nil {
		return err
	}
	fmt.Println(profile.String())

	initial, err := loadTasks()
	if err != nil {
		return err
	}

	taskStore = mstore.NewIdentified(initial, profile)
	if err := registry.Register("tasks", taskStore); err != nil {
		return err
	}
	demoLogger.Infof("session store ready with %d tasks", len(initial))

	return nil
}

// loadTasks reads the seed file if one is configured, otherwise it
// generates the configured number of tasks
func loadTasks() ([]Task, error) {
	if path := viper.GetString("seed-file"); path != "" {
		c, err := util.GetCodec()
		if err != nil {
			return nil, err
		}
		data, err := readFile(path)
		if err != nil {
			return nil, err
		}
		var tasks []Task
		if err := c.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
		}
		demoLogger.Infof("loaded %d tasks from %s", len(tasks), path)
		return tasks, nil
	}

	return generateTasks(viper.GetInt("count")), nil
}

// generateTasks creates n tasks with random identities
func generateTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("Task #%d", i+1),
			Complete:    i%3 == 0,
		}
	}
	return tasks
}
