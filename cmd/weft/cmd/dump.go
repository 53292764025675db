package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-weft/weft/cmd/weft/internal/scene"
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/graphics"
	"github.com/go-weft/weft/pkg/layout"
)

var (
	dumpWidth  float64
	dumpHeight float64
	dumpTight  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <scene.yaml>",
	Short: "Mount a scene and print its element tree",
	Long: `Dump loads a YAML scene file, mounts the widget tree, runs a build
and layout pass, and prints the element tree with the size and offset of
every render object.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().Float64Var(&dumpWidth, "width", 800, "Layout viewport width")
	dumpCmd.Flags().Float64Var(&dumpHeight, "height", 600, "Layout viewport height")
	dumpCmd.Flags().BoolVar(&dumpTight, "tight", false, "Force the root to fill the viewport")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	sc, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	widget, err := sc.Build()
	if err != nil {
		return err
	}

	owner := core.NewBuildOwner()
	root := core.MountRoot(widget, owner)
	owner.FlushBuild()

	size := graphics.Size{Width: dumpWidth, Height: dumpHeight}
	if rootRender := rootRenderObject(root); rootRender != nil {
		constraints := layout.Loose(size)
		if dumpTight {
			constraints = layout.Tight(size)
		}
		owner.Pipeline().ScheduleLayout(rootRender)
		owner.Pipeline().FlushLayout(rootRender, constraints)
	}

	if sc.Name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "scene: %s\n", sc.Name)
	}
	printElementTree(cmd.OutOrStdout(), root, 0)
	return nil
}

func rootRenderObject(root core.Element) layout.RenderObject {
	if provider, ok := root.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}

// printElementTree writes one line per element, pre-order. Render object
// widgets also get their laid-out size and paint offset.
func printElementTree(w io.Writer, element core.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s%s", indent, describeWidget(element.Widget()))

	if _, ok := element.Widget().(core.RenderObjectWidget); ok {
		if provider, ok := element.(interface{ RenderObject() layout.RenderObject }); ok {
			if renderObject := provider.RenderObject(); renderObject != nil {
				size := renderObject.Size()
				line += fmt.Sprintf("  [%gx%g", size.Width, size.Height)
				if data, ok := renderObject.ParentData().(*layout.BoxParentData); ok {
					line += fmt.Sprintf(" @ (%g,%g)", data.Offset.X, data.Offset.Y)
				}
				line += "]"
			}
		}
	}

	fmt.Fprintln(w, line)
	element.VisitChildren(func(child core.Element) bool {
		printElementTree(w, child, depth+1)
		return true
	})
}

func describeWidget(widget core.Widget) string {
	if widget == nil {
		return "<nil>"
	}
	name := fmt.Sprintf("%T", widget)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if key := widget.Key(); key != nil {
		return fmt.Sprintf("%s key=%v", name, key)
	}
	return name
}
