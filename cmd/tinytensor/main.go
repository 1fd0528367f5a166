// Package main provides the tinytensor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/tinytensor/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tinytensor",
		Short:         "Minimal 2-D tensors with float32, float16 and int8 storage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tinytensor %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	var scale float32

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Quantize a small float32 tensor to int8 and back",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, scale)
		},
	}
	cmd.Flags().Float32Var(&scale, "scale", 0.1, "quantization step size")
	return cmd
}

func runDemo(cmd *cobra.Command, scale float32) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Dynamic Tensor Demo ===")
	fmt.Fprintln(out)

	input, err := tensor.FromFloat32s(2, 2, []float32{0.5, -1.2, 3.4, 2.1})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Original float32 tensor:")
	input.Render(out)

	quantized, err := input.Quantize(scale)
	if err != nil {
		return fmt.Errorf("quantize with scale %v: %w", scale, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Quantized int8 tensor:")
	quantized.Render(out)

	dequantized, err := quantized.Dequantize(scale)
	if err != nil {
		return fmt.Errorf("dequantize with scale %v: %w", scale, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Dequantized back to float32:")
	dequantized.Render(out)

	fmt.Fprintln(out)
	fmt.Fprint(out, tensor.MemoryComparison(input.NumElements()))
	return nil
}
