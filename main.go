package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/loader"
	"github.com/dpeeke/lambda-spectral/pkg/pixmap"
	"github.com/dpeeke/lambda-spectral/pkg/renderer"
)

// Config holds the resolved command-line configuration: a scene file to
// render, where to write the result, and how many worker threads to use.
type Config struct {
	SceneFile  string
	RenderFile string
	Threads    int
}

func main() {
	config, err := parseConfig(os.Args[1:], os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[!] %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	logger := log.New(os.Stdout, "[+] ", 0)

	startTime := time.Now()

	s, err := loader.Load(config.SceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[!] Could not load scene file %q: %v\n", config.SceneFile, err)
		os.Exit(1)
	}

	logger.Printf("Raytracing...")
	pixels := renderer.Render(s, config.Threads, logger)

	elapsed := time.Since(startTime)
	logger.Printf("Raytracing complete, time taken: %s.", elapsed.Round(time.Second))

	fmt.Println()
	fmt.Printf("[+] Saving final render in <%s>.\n", config.RenderFile)
	if err := pixmap.Save(pixels, s.Params.Width, s.Params.Height, elapsed, config.RenderFile); err != nil {
		fmt.Fprintf(os.Stderr, "[!] Could not save render: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[+] Render finished!")
}

// parseConfig resolves the scene file, output file and thread count either
// from positional command-line arguments or, if fewer than three are
// given, by prompting interactively on stdin - matching the original
// command-line tool's argc-driven fallback.
func parseConfig(args []string, stdin *os.File) (Config, error) {
	if len(args) >= 3 {
		threads, err := strconv.Atoi(args[2])
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing thread count %q", args[2])
		}
		return Config{SceneFile: args[0], RenderFile: args[1], Threads: threads}, nil
	}

	reader := bufio.NewReader(stdin)

	fmt.Print("[+] Scene file to render: ")
	sceneFile, err := readLine(reader)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading scene file path")
	}

	fmt.Print("[+] Output file: ")
	renderFile, err := readLine(reader)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading output file path")
	}

	fmt.Print("[+] Thread count: ")
	threadLine, err := readLine(reader)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading thread count")
	}
	threads, err := strconv.Atoi(strings.TrimSpace(threadLine))
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing thread count %q", threadLine)
	}

	return Config{SceneFile: sceneFile, RenderFile: renderFile, Threads: threads}, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
