package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/graphics"
	"github.com/go-weft/weft/pkg/layout"
	"github.com/go-weft/weft/pkg/widgets"
)

var (
	benchChildren int
	benchRounds   int
	benchSeed     int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure keyed list reconciliation",
	Long: `Bench mounts a column of keyed labels and repeatedly shuffles the
child order, updating the tree in place each round. Because every child
is keyed, each round moves the existing elements and render objects
instead of recreating them; the timings reflect pure diff and re-slot
cost.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchChildren, "children", 1000, "Number of keyed children")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 100, "Number of shuffle rounds")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Shuffle seed")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchChildren <= 0 || benchRounds <= 0 {
		return fmt.Errorf("--children and --rounds must be positive")
	}

	keys := make([]int, benchChildren)
	for i := range keys {
		keys[i] = i
	}

	owner := core.NewBuildOwner()
	root := core.MountRoot(columnOf(keys), owner)
	owner.FlushBuild()
	flushBenchLayout(owner, root)

	rng := rand.New(rand.NewSource(benchSeed))
	start := time.Now()
	for round := 0; round < benchRounds; round++ {
		rng.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		root.Update(columnOf(keys))
		owner.FlushBuild()
		flushBenchLayout(owner, root)
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "children:    %d\n", benchChildren)
	fmt.Fprintf(out, "rounds:      %d\n", benchRounds)
	fmt.Fprintf(out, "total:       %v\n", elapsed)
	fmt.Fprintf(out, "per round:   %v\n", elapsed/time.Duration(benchRounds))
	fmt.Fprintf(out, "per child:   %v\n", elapsed/time.Duration(benchRounds*benchChildren))
	return nil
}

func columnOf(keys []int) widgets.Column {
	children := make([]core.Widget, len(keys))
	for i, key := range keys {
		children[i] = widgets.Label{
			Text:      fmt.Sprintf("row %d", key),
			WidgetKey: key,
		}
	}
	return widgets.Column{Children: children}
}

func flushBenchLayout(owner *core.BuildOwner, root core.Element) {
	if renderObject := rootRenderObject(root); renderObject != nil {
		owner.Pipeline().ScheduleLayout(renderObject)
		owner.Pipeline().FlushLayout(renderObject, layout.Loose(graphics.Size{Width: 800, Height: 600}))
		owner.Pipeline().ClearPaint()
	}
}
