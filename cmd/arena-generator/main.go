package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/dungeon-crawler/maze"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// Preview cell size in arena units, rows are doubled to keep the aspect close to square
const (
	cellWidth  = 20.0
	cellHeight = 40.0
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== DUNGEON CRAWLER ARENA GENERATOR ===")

		cfg := maze.DefaultConfig()
		cfg.Seed = int64(getInt(reader, "Seed [0 = random] (default 0): ", 0))
		cfg.Obstacles = getInt(reader, fmt.Sprintf("Obstacles (default %d): ", cfg.Obstacles), cfg.Obstacles)
		cfg.Treasures = getInt(reader, fmt.Sprintf("Treasures (default %d): ", cfg.Treasures), cfg.Treasures)
		cfg.Monsters = getInt(reader, fmt.Sprintf("Monsters (default %d): ", cfg.Monsters), cfg.Monsters)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(cfg)
		dur := time.Since(startT)

		if err != nil {
			fmt.Printf("Failed after %v: %v\n", dur, err)
		} else {
			fmt.Printf("Done in %v\n", dur)
			fmt.Printf("Obstacles: %d  Treasures: %d  Monsters: %d\n",
				len(res.Arena.Obstacles), len(res.Treasures), len(res.Monsters))
			draw(res, cfg.SpawnHalf)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw prints the arena top-down, north up, one character per preview cell
func draw(res maze.Result, spawnHalf float64) {
	half := res.Arena.HalfExtent
	cols := int(math.Ceil(2 * half / cellWidth))
	rows := int(math.Ceil(2 * half / cellHeight))

	grid := make([][]rune, rows+2)
	for y := range grid {
		grid[y] = make([]rune, cols+2)
		for x := range grid[y] {
			switch {
			case y == 0 || y == rows+1 || x == 0 || x == cols+1:
				grid[y][x] = '█'
			default:
				wx, wy := cellCenter(x, y, half)
				grid[y][x] = ' '
				if vmath.InSpawnZone(wx, wy, spawnHalf) {
					grid[y][x] = '·'
				}
				for _, o := range res.Arena.Obstacles {
					if vmath.PointInRect(wx, wy, o.X, o.Y, o.Width, o.Height) {
						grid[y][x] = '▓'
						break
					}
				}
			}
		}
	}

	plot := func(wx, wy float64, r rune) {
		x := 1 + int((wx+half)/cellWidth)
		y := 1 + int((half-wy)/cellHeight)
		if y >= 1 && y <= rows && x >= 1 && x <= cols {
			grid[y][x] = r
		}
	}
	for _, t := range res.Treasures {
		plot(t.X, t.Y, '$')
	}
	for _, m := range res.Monsters {
		plot(m.X, m.Y, 'M')
	}
	plot(0, 0, '@')

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// cellCenter maps a preview cell to the arena point at its center
func cellCenter(x, y int, half float64) (float64, float64) {
	wx := -half + (float64(x)-0.5)*cellWidth
	wy := half - (float64(y)-0.5)*cellHeight
	return wx, wy
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}
