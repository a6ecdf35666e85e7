// Command avipath loads a flight schedule from CSV files and runs
// cheapest-itinerary searches against it.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kaverin/avipath/core"
	"github.com/kaverin/avipath/ingest"
	"github.com/kaverin/avipath/search"
)

const dateLayout = "2006-01-02"

var (
	flagAirports string
	flagFlights  string
	flagFrom     int
	flagTo       int
	flagDates    []string
	flagHops     int
	flagResults  int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "avipath",
	Short: "Itinerary search over an in-memory flight schedule",
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Load CSV schedules and print the cheapest itineraries",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagAirports, "airports", "", "airport catalog CSV (optional; airports register lazily from flights)")
	searchCmd.Flags().StringVar(&flagFlights, "flights", "data/flights.csv", "flight schedule CSV")
	searchCmd.Flags().IntVar(&flagFrom, "from", 0, "source airport ID")
	searchCmd.Flags().IntVar(&flagTo, "to", 0, "target airport ID")
	searchCmd.Flags().StringSliceVar(&flagDates, "date", nil, "query date YYYY-MM-DD (repeatable; searches run concurrently)")
	searchCmd.Flags().IntVar(&flagHops, "hops", 3, "per-flight expansion budget")
	searchCmd.Flags().IntVar(&flagResults, "results", 10, "maximum itineraries per date")
	searchCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "development logging")

	_ = searchCmd.MarkFlagRequired("from")
	_ = searchCmd.MarkFlagRequired("to")
	_ = searchCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func runSearch(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dates := make([]time.Time, len(flagDates))
	for i, d := range flagDates {
		if dates[i], err = time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("bad --date %q: %w", d, err)
		}
	}

	airports := core.NewAirports()
	loader := ingest.New(airports, ingest.WithLogger(log))

	if flagAirports != "" {
		n, err := loadFrom(flagAirports, loader.LoadAirports)
		if err != nil {
			return err
		}
		log.Info("airport catalog loaded", zap.String("file", flagAirports), zap.Int("airports", n))
	}

	start := time.Now()
	n, err := loadFrom(flagFlights, loader.LoadFlights)
	if err != nil {
		return err
	}
	log.Info("flight schedule loaded",
		zap.String("file", flagFlights),
		zap.Int("flights", n),
		zap.Duration("elapsed", time.Since(start)))

	engine := search.New(airports)
	found := make([][]*search.Itinerary, len(dates))

	start = time.Now()
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			res := <-engine.FindAsync(ctx, search.Query{
				From:      flagFrom,
				To:        flagTo,
				Date:      date,
				HopBudget: flagHops,
				ResultCap: flagResults,
			})
			found[i] = res.Itineraries

			return res.Err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("search completed",
		zap.Int("dates", len(dates)),
		zap.Duration("elapsed", time.Since(start)))

	for i, date := range dates {
		fmt.Printf("---- %d -> %d on %s: %d itineraries\n",
			flagFrom, flagTo, date.Format(dateLayout), len(found[i]))
		for _, it := range found[i] {
			for _, line := range it.Lines() {
				fmt.Println(line)
			}
			fmt.Println()
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	log.Info("memory usage", zap.Uint64("heap_mb", mem.HeapAlloc/1024/1024))

	return nil
}

// loadFrom opens path and feeds it through one of the loader methods.
func loadFrom(path string, load func(r io.Reader) (int, error)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return load(f)
}
