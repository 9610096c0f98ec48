// bench-scan measures media scan throughput over a target directory at
// different worker counts, with optional heap and CPU profiles.
//
// Usage:
//
//	go run ./scripts/bench-scan --dir ~/media --workers 1,4,16 \
//	  --profile-dir docs/profiles/scan
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/rodrigo1392/misc-tools/pkg/mediacheck"
)

func main() {
	dir := flag.String("dir", "", "Directory tree to scan")
	workersSpec := flag.String("workers", "0", "Comma-separated worker counts to benchmark (0 = one per CPU)")
	extsSpec := flag.String("ext", "avi,mkv,mp4,ts", "Comma-separated extensions to check")
	repeat := flag.Int("repeat", 3, "Runs per worker count")
	profileDir := flag.String("profile-dir", "", "Directory to write heap profiles (optional)")
	cpuProfile := flag.Bool("cpu-profile", false, "Write CPU profile to profile-dir/cpu.prof")

	flag.Parse()

	if *dir == "" {
		log.Fatal("--dir is required")
	}

	workerCounts, err := parseWorkers(*workersSpec)
	if err != nil {
		log.Fatalf("parse --workers: %v", err)
	}

	exts := strings.Split(*extsSpec, ",")

	if *profileDir != "" {
		if mkErr := os.MkdirAll(*profileDir, 0o755); mkErr != nil {
			log.Fatalf("mkdir profile-dir: %v", mkErr)
		}
	}

	if *cpuProfile {
		if *profileDir == "" {
			log.Fatal("--cpu-profile requires --profile-dir")
		}

		cpuPath := filepath.Join(*profileDir, "cpu.prof")

		cpuFile, cpuErr := os.Create(cpuPath)
		if cpuErr != nil {
			log.Fatalf("create cpu profile: %v", cpuErr)
		}
		defer cpuFile.Close()

		if startErr := pprof.StartCPUProfile(cpuFile); startErr != nil {
			log.Fatalf("start cpu profile: %v", startErr)
		}

		defer pprof.StopCPUProfile()

		log.Printf("CPU profiling enabled -> %s", cpuPath)
	}

	ctx := context.Background()

	for _, workers := range workerCounts {
		benchWorkers(ctx, *dir, exts, workers, *repeat, *profileDir)
	}
}

// benchWorkers runs the scan repeat times at one worker count and
// reports the best throughput, plus heap usage after the final run.
func benchWorkers(ctx context.Context, dir string, exts []string, workers, repeat int, profileDir string) {
	label := strconv.Itoa(workers)
	if workers == 0 {
		label = fmt.Sprintf("auto(%d)", runtime.NumCPU())
	}

	var (
		best    time.Duration
		total   int
		lastBad int
	)

	for run := range repeat {
		start := time.Now()

		summary, err := mediacheck.Scan(ctx, dir, exts, workers, nil)
		if err != nil {
			log.Fatalf("scan: %v", err)
		}

		elapsed := time.Since(start)
		if run == 0 || elapsed < best {
			best = elapsed
		}

		total = summary.Total()
		lastBad = summary.Bad
	}

	rate := 0.0
	if best > 0 {
		rate = float64(total) / best.Seconds()
	}

	var stats runtime.MemStats

	runtime.ReadMemStats(&stats)
	log.Printf("workers=%s files=%d bad=%d best=%s rate=%.0f files/s heap=%.1f MiB",
		label, total, lastBad, best.Round(time.Millisecond), rate,
		float64(stats.HeapAlloc)/(1<<20))

	if profileDir != "" {
		writeHeapProfile(filepath.Join(profileDir, "heap-"+label+".prof"))
	}
}

func writeHeapProfile(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("create heap profile: %v", err)
	}
	defer file.Close()

	runtime.GC()

	if err := pprof.WriteHeapProfile(file); err != nil {
		log.Fatalf("write heap profile: %v", err)
	}

	log.Printf("heap profile -> %s", path)
}

func parseWorkers(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	counts := make([]int, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("worker count %q: %w", part, err)
		}

		counts = append(counts, n)
	}

	return counts, nil
}
