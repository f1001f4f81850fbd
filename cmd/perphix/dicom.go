package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcadelab/perphix/deidentify"
	"github.com/arcadelab/perphix/dicomdir"
)

func deidentifyCmd(configPath *string) *cobra.Command {
	var caseID string

	cmd := &cobra.Command{
		Use:   "deidentify <input-dir> <output-dir>",
		Short: "Strip patient-identifying tags from DICOM files",
		Long: `Recursively de-identify all DICOM files under the input directory into
the output directory, mirroring the layout. All files are assumed to belong
to the same patient and share one case id. Files that are not valid DICOM
are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			opts := deidentify.Options{
				CaseID:      caseID,
				PatientName: cfg.Deidentify.PatientName,
			}
			if opts.CaseID == "" {
				opts.CaseID = cfg.Deidentify.CaseID
			}

			if err := deidentify.Directory(args[0], args[1], opts); err != nil {
				return fmt.Errorf("deidentify: %w", err)
			}

			slog.Info("de-identification complete", "input", args[0], "output", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&caseID, "case-id", "", "Case identifier used as the new PatientID")
	return cmd
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "List DICOM files in a capture directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := dicomdir.Scan(args[0])
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			for _, f := range files {
				fmt.Printf("%s\t%s\t%dx%d\t%d-bit\t%s\n",
					f.Path, f.Modality, f.Columns, f.Rows, f.BitsStored, f.TransferSyntaxUID)
			}
			slog.Info("scan complete", "dir", args[0], "dicom_files", len(files))
			return nil
		},
	}
}
