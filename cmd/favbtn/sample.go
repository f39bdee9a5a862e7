package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/favorite"
	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

var (
	sampleSteps    int
	sampleTimeline string
	sampleSize     float64
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sampled values of each timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		theme, err := cfg.Theme()
		if err != nil {
			return err
		}
		easing := anim.EasingByName(theme.Easing)
		timelines := favorite.BuildTimelines(geometry.Build(geometry.R(0, 0, sampleSize, sampleSize)), theme.Fractions, easing)

		selected := timelines.All()
		if sampleTimeline != "" {
			tl := timelines.ByName(sampleTimeline)
			if tl == nil {
				return fmt.Errorf("unknown timeline %q (have %v)", sampleTimeline, favorite.TimelineNames)
			}
			selected = []*anim.Timeline{tl}
		}

		logger.Debug("sampling timelines",
			zap.Int("timelines", len(selected)),
			zap.Int("steps", sampleSteps),
			zap.Duration("duration", theme.Duration))
		return writeSamples(cmd.OutOrStdout(), selected, theme.Duration, sampleSteps)
	},
}

func init() {
	sampleCmd.Flags().IntVarP(&sampleSteps, "steps", "n", 10, "number of intervals to sample")
	sampleCmd.Flags().StringVarP(&sampleTimeline, "timeline", "t", "", "only sample this timeline")
	sampleCmd.Flags().Float64Var(&sampleSize, "size", 80, "button frame size used for geometry-dependent tracks")
	rootCmd.AddCommand(sampleCmd)
}

// writeSamples renders one table per timeline with steps+1 evenly spaced
// rows from start to end.
func writeSamples(w io.Writer, timelines []*anim.Timeline, global time.Duration, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	for _, tl := range timelines {
		d := tl.Duration(global)
		headers := []string{"step", "time"}
		for _, tr := range tl.Tracks {
			headers = append(headers, tr.Property().String())
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			Headers(headers...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		for i := 0; i <= steps; i++ {
			pos := float64(i) / float64(steps)
			row := []string{
				strconv.Itoa(i),
				time.Duration(pos * float64(d)).Round(time.Millisecond).String(),
			}
			for _, s := range tl.Sample(pos) {
				row = append(row, formatValue(s.Value))
			}
			t.Row(row...)
		}

		title := fmt.Sprintf("%s  %.3f × %v = %v", tl.Name, tl.Fraction, global, d)
		if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v anim.Value) string {
	switch v := v.(type) {
	case anim.Scalar:
		return strconv.FormatFloat(float64(v), 'f', 3, 64)
	case anim.Transform:
		if v.TX == 0 && v.TY == 0 {
			return fmt.Sprintf("scale %.3f, %.3f", v.SX, v.SY)
		}
		return fmt.Sprintf("scale %.3f, %.3f  move %.2f, %.2f", v.SX, v.SY, v.TX, v.TY)
	case anim.Color:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
