package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcadelab/perphix/dataset"
)

func fixSequencesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fix-sequences <annotations.json>",
		Short: "Rebuild sequence records from image file names",
		Long: `Rebuild the sequence records of a COCO-style annotation file from the
labels encoded in its image file names, replacing any stored sequences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ann, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			fixed, err := dataset.FixSequences(ann, dataset.Default())
			if err != nil {
				return fmt.Errorf("fix sequences: %w", err)
			}

			out := output
			if out == "" {
				out = args[0]
			}
			if err := fixed.Save(out); err != nil {
				return err
			}

			slog.Info("sequences rebuilt",
				"images", len(fixed.Images),
				"sequences", len(fixed.Sequences),
				"output", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: overwrite input)")
	return cmd
}

func stripKeypointsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "strip-keypoints <annotations.json>",
		Short: "Remove keypoints from every object annotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ann, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			stripped := dataset.RemoveKeypoints(ann)

			out := output
			if out == "" {
				out = args[0]
			}
			if err := stripped.Save(out); err != nil {
				return err
			}

			slog.Info("keypoints removed", "annotations", len(stripped.Annotations), "output", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: overwrite input)")
	return cmd
}

func initCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init <annotations.json>",
		Short: "Write a fresh base annotation file",
		Long: `Write a base annotation file carrying the perphix category tables and an
info block taken from the configuration, with empty image and annotation
lists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			ann := dataset.BaseAnnotation()
			ann.Info.Description = cfg.Dataset.Description
			ann.Info.URL = cfg.Dataset.URL
			ann.Info.Version = cfg.Dataset.Version
			ann.Info.Year = cfg.Dataset.Year
			ann.Info.Contributor = cfg.Dataset.Contributor

			if err := ann.Save(args[0]); err != nil {
				return err
			}

			slog.Info("base annotation written", "output", args[0])
			return nil
		},
	}
}
