package main

import (
	"fmt"

	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example return file",
		Long:  `Write a 2024 example return covering every form to file, or to stdout when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleReturn()
			if len(args) == 0 {
				data, err := yaml.Marshal(example)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := output.SaveReturn(example, args[0]); err != nil {
				return fmt.Errorf("failed to write example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
