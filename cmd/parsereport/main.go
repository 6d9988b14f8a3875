// parsereport is a debugging CLI: it runs the extraction pipeline over an
// already recognized text file and prints the resulting report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/medparse/bloodlab/internal/extract"
	"github.com/medparse/bloodlab/internal/llm/openai"
	"github.com/medparse/bloodlab/internal/sii"
)

func main() {
	_ = godotenv.Load()

	var (
		textPath   = flag.String("text", "", "path to a recognized report text file")
		cancerType = flag.String("cancer", "", "optional ICD-10 code to compute the inflammation index for")
		timeout    = flag.Duration("timeout", 90*time.Second, "model extraction timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if *textPath == "" {
		fmt.Fprintln(os.Stderr, "usage: parsereport -text report.txt [-cancer C34]")
		os.Exit(2)
	}
	raw, err := os.ReadFile(*textPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read text file:", err)
		os.Exit(1)
	}

	completer := openai.NewClient(openai.Config{Timeout: *timeout}, logger)
	orch := extract.NewOrchestrator(completer, *timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rep, err := orch.Extract(ctx, []string{string(raw)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}

	if *cancerType == "" {
		if code, ok := extract.DetectDiagnosis(string(raw)); ok {
			*cancerType = code
			fmt.Fprintln(os.Stderr, "diagnosis detected in document:", code)
		}
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal report:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if *cancerType != "" {
		res, err := sii.FromReport(rep, *cancerType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sii:", err)
			os.Exit(1)
		}
		siiOut, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(siiOut))
	}
}
