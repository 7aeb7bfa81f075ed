// Package main is an interactive calculator over sparse matrix files:
// pick an operation, name two input files, and the result is written to
// result.txt under the output directory.
//
// Usage:
//
//	spmat [-inputs DIR] [-out DIR]
//
// Relative matrix paths are resolved against -inputs; absolute paths pass
// through unchanged. Every failure is reported and the menu loops; only
// choice 4 or end of stdin terminates the program.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spmat/matfile"
	"github.com/katalvlaran/spmat/sparse"
)

const (
	resultFile = "result.txt"
	choiceExit = "4"
)

// errQuit signals that stdin was closed mid-prompt.
var errQuit = errors.New("stdin closed")

// op binds a menu choice to its display name and implementation.
type op struct {
	name string
	run  func(a, b *sparse.Matrix) (*sparse.Matrix, error)
}

var ops = map[string]op{
	"1": {name: "Addition", run: (*sparse.Matrix).Add},
	"2": {name: "Subtraction", run: (*sparse.Matrix).Sub},
	"3": {name: "Multiplication", run: (*sparse.Matrix).Mul},
}

func main() {
	inputsDir := flag.String("inputs", ".", "directory against which relative matrix paths are resolved")
	outDir := flag.String("out", ".", "directory receiving "+resultFile)
	flag.Parse()

	log := logrus.New()

	fmt.Println("Sparse Matrix Operations")
	fmt.Println("------------------------")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("Select an operation:")
		fmt.Println("1. Addition (+)")
		fmt.Println("2. Subtraction (-)")
		fmt.Println("3. Multiplication (*)")
		fmt.Println("4. Exit")

		choice, err := prompt(in, "Enter your choice (1-4): ")
		if err != nil {
			return
		}
		if choice == choiceExit {
			fmt.Println("Exiting program.")

			return
		}
		chosen, valid := ops[choice]
		if !valid {
			fmt.Println("Invalid choice. Please enter a number between 1 and 3, or 4 to exit.")

			continue
		}

		if err = runOnce(in, log, chosen, *inputsDir, *outDir); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			// Failures never terminate the loop; the user just tries again.
			log.WithError(err).Error("operation failed")
		}
	}
}

// runOnce collects two matrix paths, applies the chosen operation, and
// saves the result.
func runOnce(in *bufio.Scanner, log *logrus.Logger, chosen op, inputsDir, outDir string) error {
	path1, err := prompt(in, "Enter the file path for the first matrix: ")
	if err != nil {
		return err
	}
	a, err := loadMatrix(log, path1, inputsDir)
	if err != nil {
		return err
	}

	path2, err := prompt(in, "Enter the file path for the second matrix: ")
	if err != nil {
		return err
	}
	b, err := loadMatrix(log, path2, inputsDir)
	if err != nil {
		return err
	}

	fmt.Printf("\nPerforming %s...\n", chosen.name)
	result, err := chosen.run(a, b)
	if err != nil {
		return errors.Wrap(err, strings.ToLower(chosen.name))
	}

	outPath := filepath.Join(outDir, resultFile)
	if err = matfile.Save(outPath, result); err != nil {
		return errors.Wrapf(err, "save result to %s", outPath)
	}
	log.WithFields(logrus.Fields{
		"op":   chosen.name,
		"rows": result.Rows(),
		"cols": result.Cols(),
		"nnz":  result.NNZ(),
		"path": outPath,
	}).Info("result saved")
	fmt.Printf("%s successful. Result saved to %s\n", chosen.name, outPath)

	return nil
}

// prompt asks until a non-empty line arrives; errQuit on end of input.
func prompt(in *bufio.Scanner, label string) (string, error) {
	for {
		fmt.Print(label)
		if !in.Scan() {
			return "", errQuit
		}
		text := strings.TrimSpace(in.Text())
		if text != "" {
			return text, nil
		}
		fmt.Println("Input cannot be empty. Please try again.")
	}
}

// loadMatrix resolves userPath against dir and parses the file.
func loadMatrix(log *logrus.Logger, userPath, dir string) (*sparse.Matrix, error) {
	path := userPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	fmt.Printf("Attempting to load matrix from: %s\n", path)

	m, err := matfile.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load matrix from %s", path)
	}
	log.WithFields(logrus.Fields{
		"path": path,
		"rows": m.Rows(),
		"cols": m.Cols(),
		"nnz":  m.NNZ(),
	}).Info("matrix loaded")

	return m, nil
}
