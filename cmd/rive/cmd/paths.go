package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/go-drift/rive/pkg/rive"
)

func init() {
	RegisterCommand(&Command{
		Name:  "paths",
		Short: "Export the flattened paths of an artboard as SVG",
		Long: `Flatten every path of an artboard and write them as an SVG document,
one <g> per path.

--parent emits coordinates in each path's parent space instead of its
local space. Without -o the SVG is written to stdout.`,
		Usage: "rive paths FILE [-o OUT.svg] [--artboard NAME] [--parent]",
		Run:   runPaths,
	})
}

func runPaths(args []string) error {
	const usage = "rive paths FILE [-o OUT.svg] [--artboard NAME] [--parent]"
	p, err := flagSpec{
		valued:   []string{"--output", "--artboard"},
		switches: []string{"--parent"},
		aliases:  map[string]string{"-o": "--output"},
	}.parse(args)
	if err != nil {
		return err
	}
	path, err := p.file(usage)
	if err != nil {
		return err
	}

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	a, err := doc.artboard(p.str("--artboard", ""))
	if err != nil {
		return err
	}
	defer a.Release()

	paths, err := flattenAll(a, p.set["--parent"])
	if err != nil {
		return err
	}

	var w io.Writer = stdout
	if out := p.str("--output", ""); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	writeSVG(w, a, paths)
	return nil
}

// flattenAll snapshots paths until the artboard runs out of them.
func flattenAll(a *rive.Artboard, toParent bool) ([][]rive.PathPoint, error) {
	var all [][]rive.PathPoint
	for i := 0; ; i++ {
		fp, err := a.FlattenPath(i, toParent)
		if errors.Is(err, rive.ErrOutOfRange) {
			return all, nil
		}
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		pts, err := fp.Points()
		fp.Destroy()
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		all = append(all, pts)
	}
}

func writeSVG(w io.Writer, a *rive.Artboard, paths [][]rive.PathPoint) {
	canvas := svg.New(w)
	canvas.Start(int(a.Width()), int(a.Height()))
	canvas.Title(a.Name())
	canvas.Gstyle("fill:none;stroke:black;stroke-width:1")
	for i, pts := range paths {
		canvas.Gid("path-" + strconv.Itoa(i))
		if d := pathData(pts); d != "" {
			canvas.Path(d)
		}
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()
}

// pathData converts flattened points to SVG path commands. A cubic point
// is reached from the previous point's out handle through its own in
// handle.
func pathData(pts []rive.PathPoint) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s", num(pts[0].X), num(pts[0].Y))
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		if !cur.Cubic {
			fmt.Fprintf(&b, " L%s %s", num(cur.X), num(cur.Y))
			continue
		}
		outX, outY := prev.X, prev.Y
		if prev.Cubic {
			outX, outY = prev.OutX, prev.OutY
		}
		fmt.Fprintf(&b, " C%s %s %s %s %s %s",
			num(outX), num(outY), num(cur.InX), num(cur.InY), num(cur.X), num(cur.Y))
	}
	return b.String()
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
