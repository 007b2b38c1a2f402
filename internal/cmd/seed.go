package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the dupehash CLI.
// It generates a tree of test files with deliberately duplicated content.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		poolSize   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with duplicated content",
		Long: `Generate a tree of test files for exercising dupehash.

Files are spread across a randomized directory hierarchy up to three levels
deep. Each file contains a single UUID line drawn from a fixed pool, so any
run with more files than pool entries is guaranteed to contain duplicate
groups.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, poolSize, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().IntVar(&poolSize, "pool", 16, "Number of distinct file contents")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount, poolSize int, verbose bool) {
	if poolSize < 1 {
		log.Fatalf("Pool size must be positive, got %d", poolSize)
	}
	if verbose {
		fmt.Printf("Generating %d test files in %s (%d distinct contents)\n", fileCount, outputPath, poolSize)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Content pool; duplicates arise from reuse across files.
	contentPool := make([]string, poolSize)
	for i := range contentPool {
		contentPool[i] = uuid.New().String() + "\n"
	}

	filesCreated := 0
	dirsSeen := make(map[string]struct{})

	for filesCreated < fileCount {
		// Random directory depth 0-3, each level an 8-bit hex name.
		depth, _ := rand.Int(rand.Reader, big.NewInt(4))
		dirPath := outputPath
		for range depth.Int64() {
			level, _ := rand.Int(rand.Reader, big.NewInt(0x100))
			dirPath = filepath.Join(dirPath, fmt.Sprintf("%02x", level.Int64()))
		}

		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}
		dirsSeen[dirPath] = struct{}{}

		filenameNum, _ := rand.Int(rand.Reader, big.NewInt(0xFFFFFFFF))
		filePath := filepath.Join(dirPath, fmt.Sprintf("%08x.txt", filenameNum.Int64()))
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		poolIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(poolSize)))
		if err := os.WriteFile(filePath, []byte(contentPool[poolIndex.Int64()]), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		filesCreated++
		if verbose && filesCreated%1000 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files across %d directories\n", filesCreated, len(dirsSeen))
	}
}
