package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/mrahhal/japanese/pkg/charset"
	"github.com/mrahhal/japanese/pkg/converter"
)

var log = logrus.New()

type record struct {
	ID      int      `json:"id"`
	Input   string   `json:"input"`
	Output  string   `json:"output,omitempty"`
	Scripts []string `json:"scripts,omitempty"`
}

func main() {
	mode := flag.String("mode", "hira2kata", "Mode: hira2kata, kata2hira or classify")
	inputPath := flag.String("input", "", "Input text file (required)")
	outputPath := flag.String("output", "", "Output JSON lines file (default stdout)")
	limit := flag.Int("limit", 0, "Limit number of lines (0 = unlimited)")
	threads := flag.Int("threads", 0, "Number of worker goroutines (0 = use all CPUs)")
	sjis := flag.Bool("sjis", false, "Decode input from Shift-JIS")

	flag.StringVar(mode, "m", *mode, "Mode (short)")
	flag.StringVar(inputPath, "i", "", "Input text file (short)")
	flag.StringVar(outputPath, "o", "", "Output file (short)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: japanese --input <file> [--output <file>] [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*mode, *inputPath, *outputPath, *limit, *threads, *sjis); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(mode, inputPath, outputPath string, limit, threads int, sjis bool) error {
	process, err := lineFunc(mode)
	if err != nil {
		return err
	}

	lines, err := readLines(inputPath, limit, sjis)
	if err != nil {
		return err
	}

	numWorkers := threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	log.WithFields(logrus.Fields{
		"mode":    mode,
		"lines":   len(lines),
		"workers": numWorkers,
	}).Info("processing")

	start := time.Now()
	results := make([]record, len(lines))

	var wg sync.WaitGroup
	jobs := make(chan int, len(lines))
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = process(i, lines[i])
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := writeResults(outputPath, results); err != nil {
		return err
	}

	elapsed := time.Since(start).Seconds()
	log.WithFields(logrus.Fields{
		"seconds":   fmt.Sprintf("%.2f", elapsed),
		"lines/sec": fmt.Sprintf("%.0f", float64(len(lines))/elapsed),
	}).Info("done")
	return nil
}

func lineFunc(mode string) (func(int, string) record, error) {
	switch mode {
	case "hira2kata":
		return func(i int, line string) record {
			return record{ID: i, Input: line, Output: converter.HiraganaToKatakana(line)}
		}, nil
	case "kata2hira":
		return func(i int, line string) record {
			return record{ID: i, Input: line, Output: converter.KatakanaToHiragana(line)}
		}, nil
	case "classify":
		return func(i int, line string) record {
			return record{ID: i, Input: line, Scripts: scriptsIn(line)}
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

// scriptsIn names the Japanese script categories that occur in s.
func scriptsIn(s string) []string {
	checks := []struct {
		name string
		pred func(rune) bool
	}{
		{"hiragana", charset.IsHiragana},
		{"katakana", charset.IsKatakana},
		{"kanji", charset.IsKanji},
		{"punctuation", charset.IsJapanesePunctuation},
		{"fullwidth", charset.IsFullWidthRomanHalfWidthKatakana},
	}
	var names []string
	for _, c := range checks {
		if strings.ContainsFunc(s, c.pred) {
			names = append(names, c.name)
		}
	}
	return names
}

func readLines(path string, limit int, sjis bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if sjis {
		reader = transform.NewReader(file, japanese.ShiftJIS.NewDecoder())
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeResults(path string, results []record) error {
	out := os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	writer := bufio.NewWriterSize(out, 256*1024)
	enc := json.NewEncoder(writer)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return err
		}
	}
	return writer.Flush()
}
