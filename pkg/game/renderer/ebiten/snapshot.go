package ebiten

import (
	"fmt"
	"os"
	"time"

	"mazegen/pkg/game/renderer/svg"
)

// saveSnapshot writes the current maze, with its solution if shown, to a
// timestamped SVG file in the working directory and returns the file name.
func (v *Viewer) saveSnapshot() (string, error) {
	filename := fmt.Sprintf("maze-%s-%d.svg", time.Now().Format("20060102-150405"), v.session.Maze.Seed)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	maze := v.session.Maze
	if !v.session.ShowSolution && maze.Solved() {
		maze.Topology.ClearSolution()
		defer func() {
			for _, c := range maze.Path {
				maze.Topology.MarkSolution(c)
			}
		}()
	}

	r := svg.New()
	r.Geometry = v.geometry
	if err := r.Render(f, maze.Topology); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
