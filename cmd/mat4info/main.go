// Copyright 2025 go-mat4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// mat4info prints which kernel family mat4 selected and the CPU features
// behind that choice, and can run a numeric self-test of the selected
// kernels against library invariants.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-mat4/mat4"
)

func main() {
	root := &cobra.Command{
		Use:           "mat4info",
		Short:         "Inspect and self-test the mat4 kernel dispatch",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(infoCmd(), selftestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mat4info:", err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the selected kernel family and detected CPU features",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("GOOS: %s\n", runtime.GOOS)
			fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
			fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
			fmt.Println()

			fmt.Printf("Highway dispatch level: %s\n", hwy.CurrentName())
			fmt.Printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
			fmt.Printf("mat4 kernel family: %s\n", mat4.KernelName())
			fmt.Println()

			switch runtime.GOARCH {
			case "arm64":
				printARM64Features()
			case "amd64":
				printAMD64Features()
			}
		},
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
}

func selftestCmd() *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Verify the selected kernels against library invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runSelftest(rounds); err != nil {
				return err
			}
			fmt.Printf("selftest: ok (%d rounds, kernels=%s)\n", rounds, mat4.KernelName())
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "number of random matrices to test")
	return cmd
}
